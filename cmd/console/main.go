package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"webwhisper/config"
	"webwhisper/internal/chat/repository/memory"
	"webwhisper/internal/chat/usecase"
	"webwhisper/pkg/extractor"
	"webwhisper/pkg/llmprovider"
	"webwhisper/pkg/log"
	"webwhisper/pkg/scraper"
)

func main() {
	flags := pflag.NewFlagSet("webwhisper-console", pflag.ExitOnError)
	flags.String("url", "https://botpenguin.com/", "website to analyze")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.Int("max-length", 2000, "maximum characters of website content kept as context")
	_ = flags.Parse(os.Args[1:])

	for key, name := range map[string]string{
		"chat.default_url":     "url",
		"logger.level":         "log-level",
		"extractor.max_length": "max-length",
	} {
		if err := config.BindFlag(key, flags.Lookup(name)); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to bind flag:", err)
			os.Exit(1)
		}
	}

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Components
	webScraper, err := scraper.New(scraper.Config{
		Timeout:      cfg.Scraper.Timeout,
		UserAgent:    cfg.Scraper.UserAgent,
		MaxBodyBytes: cfg.Scraper.MaxBodyBytes,
		MaxRedirects: cfg.Scraper.MaxRedirects,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize scraper:", err)
		os.Exit(1)
	}

	llm := llmprovider.NewLazy(func() (*llmprovider.Manager, error) {
		return llmprovider.NewManagerFromConfig(&cfg.LLM, logger)
	})

	uc := usecase.New(
		logger,
		memory.New(logger, memory.Config{MaxSessions: 1}),
		webScraper,
		extractor.New(cfg.Extractor.MaxLength),
		llm,
		usecase.Options{
			MaxNewTokens: cfg.Chat.MaxNewTokens,
			MinNewTokens: cfg.Chat.MinNewTokens,
			Temperature:  cfg.Chat.Temperature,
		},
	)

	c := console{
		in:    os.Stdin,
		out:   os.Stdout,
		uc:    uc,
		model: cfg.LLM.PrimaryModel(),
		ready: func() error {
			_, err := llm.Manager()
			return err
		},
	}
	if err := c.run(ctx, cfg.Chat.DefaultURL); err != nil {
		os.Exit(1)
	}
}
