package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"webwhisper/internal/chat"
)

const (
	rule   = "============================================================"
	banner = `
╔══════════════════════════════════════════════════════════╗
║                                                          ║
║              W E B W H I S P E R   A I                   ║
║                                                          ║
║           Whispers insights from any website             ║
║                                                          ║
╚══════════════════════════════════════════════════════════╝
`
)

var exampleQuestions = []string{
	"What is this website about?",
	"What services does this website offer?",
	"What are the main features?",
	"Tell me about the company",
	"What problems does it solve?",
}

var errStartup = errors.New("startup failed")

// console is the interactive question loop over one analyzed website.
type console struct {
	in    io.Reader
	out   io.Writer
	uc    chat.UseCase
	model string
	ready func() error
}

func (c console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// run analyzes url, then answers questions until "exit", end of input or ctx is done.
func (c console) run(ctx context.Context, url string) error {
	c.printf("%s\n%s\nStarting WebWhisper AI initialization...\n%s\n\n", banner, rule, rule)

	session, err := c.uc.CreateSession(ctx, chat.CreateSessionInput{})
	if err != nil {
		c.printf("Failed to start a session: %v\n", err)
		return err
	}
	id := session.Session.ID

	c.printf("WebWhisper is analyzing %s...\n", url)
	analyzed, err := c.uc.Analyze(ctx, chat.AnalyzeInput{SessionID: id, URL: url})
	if err != nil {
		if errors.Is(err, chat.ErrEmptyContent) {
			c.printf("No content extracted from website. Exiting.\n")
		} else {
			c.printf("Error fetching website: %v\nFailed to scrape website. Exiting.\n", err)
		}
		return errStartup
	}
	if page := analyzed.Session.Page; page.Truncated {
		c.printf("Text truncated to %d characters for optimal processing.\n", len([]rune(analyzed.Session.Context)))
	}
	c.printf("Successfully extracted %d characters of content.\n\n", len([]rune(analyzed.Session.Context)))

	c.printf("Loading AI model...\n   Model: %s\n\n", c.model)
	if c.ready != nil {
		if err := c.ready(); err != nil {
			c.printf("Error loading model: %v\n", err)
			return errStartup
		}
	}
	c.printf("Model loaded successfully!\n")

	c.printf("\n%s\nWebWhisper AI is ready!\n%s\n", rule, rule)
	c.printf("\nTips:\n   • Ask questions about the website content\n   • Type 'exit' to quit\n   • Type 'help' for example questions\n\n%s\n\n", rule)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		c.printf("You: ")

		var line string
		select {
		case <-ctx.Done():
			c.goodbye()
			return nil
		case l, ok := <-lines:
			if !ok {
				c.goodbye()
				return nil
			}
			line = strings.TrimSpace(l)
		}

		switch strings.ToLower(line) {
		case "exit":
			c.goodbye()
			return nil
		case "help":
			c.printf("\nExample questions you can ask:\n")
			for _, q := range exampleQuestions {
				c.printf("   • %s\n", q)
			}
			c.printf("\n")
			continue
		case "":
			c.printf("Please enter a question.\n\n")
			continue
		}

		c.printf("\nWebWhisper: ")
		out, err := c.uc.Ask(ctx, chat.AskInput{SessionID: id, Question: line})
		if err != nil {
			c.printf("%v\n\n", err)
			continue
		}
		c.printf("%s\n\n", out.Turn.Answer)
	}
}

func (c console) goodbye() {
	c.printf("\n%s\nThank you for using WebWhisper AI. Goodbye!\n%s\n", rule, rule)
}
