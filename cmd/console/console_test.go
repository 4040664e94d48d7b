package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"webwhisper/internal/chat/repository/memory"
	"webwhisper/internal/chat/usecase"
	"webwhisper/pkg/extractor"
	"webwhisper/pkg/llmprovider"
	"webwhisper/pkg/log"
	"webwhisper/pkg/scraper"
)

type countingGenerator struct {
	calls int
	err   error
}

func (g *countingGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return &llmprovider.Response{Content: llmprovider.TextMessage("assistant", "A domain for illustrative examples.")}, nil
}

func newTestConsole(t *testing.T, input string, gen *countingGenerator, ready func() error) (console, *bytes.Buffer) {
	t.Helper()
	l := log.Init(log.ZapConfig{Level: "fatal", Encoding: log.EncodingConsole})
	s, err := scraper.New(scraper.Config{})
	if err != nil {
		t.Fatalf("scraper.New() error = %v", err)
	}

	out := &bytes.Buffer{}
	return console{
		in:    strings.NewReader(input),
		out:   out,
		uc:    usecase.New(l, memory.New(l, memory.Config{}), s, extractor.New(2000), gen, usecase.Options{}),
		model: "google/flan-t5-base",
		ready: ready,
	}, out
}

func newOrigin(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body><h1>Example Domain</h1><p>This domain is for use in illustrative examples.</p></body></html>`))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestConsole_Session(t *testing.T) {
	origin := newOrigin(t)
	gen := &countingGenerator{}
	c, out := newTestConsole(t, "help\n\n   \nWhat is this website about?\nWhat is this website about?\nexit\nnever asked\n", gen, nil)

	if err := c.run(context.Background(), origin.URL+"/"); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"W E B W H I S P E R",
		"Successfully extracted",
		"WebWhisper AI is ready!",
		"Example questions you can ask:",
		"Tell me about the company",
		"Goodbye!",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in output", want)
		}
	}
	if n := strings.Count(text, "Please enter a question."); n != 2 {
		t.Errorf("expected 2 empty-input warnings, got %d", n)
	}
	if n := strings.Count(text, "A domain for illustrative examples."); n != 2 {
		t.Errorf("expected 2 answers, got %d", n)
	}
	if gen.calls != 2 {
		t.Errorf("expected 2 model calls, got %d", gen.calls)
	}
}

func TestConsole_EndOfInput(t *testing.T) {
	origin := newOrigin(t)
	c, out := newTestConsole(t, "What is this?", &countingGenerator{}, nil)

	if err := c.run(context.Background(), origin.URL+"/"); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Error("expected a goodbye at end of input")
	}
}

func TestConsole_ModelErrorKeepsLooping(t *testing.T) {
	origin := newOrigin(t)
	gen := &countingGenerator{err: llmprovider.ErrAllProvidersFailed}
	c, out := newTestConsole(t, "first\nsecond\nexit\n", gen, nil)

	if err := c.run(context.Background(), origin.URL+"/"); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if n := strings.Count(out.String(), "error generating response"); n != 2 {
		t.Errorf("expected 2 model errors, got %d:\n%s", n, out.String())
	}
}

func TestConsole_StartupFailures(t *testing.T) {
	origin := newOrigin(t)

	tests := []struct {
		name  string
		url   string
		ready func() error
		want  string
	}{
		{name: "unreachable page", url: origin.URL + "/missing", want: "Failed to scrape website"},
		{name: "invalid url", url: "not a url", want: "Error fetching website"},
		{name: "model unavailable", url: origin.URL + "/", ready: func() error { return errors.New("no providers") }, want: "Error loading model: no providers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newTestConsole(t, "exit\n", &countingGenerator{}, tt.ready)
			if err := c.run(context.Background(), tt.url); !errors.Is(err, errStartup) {
				t.Fatalf("expected errStartup, got %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("expected %q in output:\n%s", tt.want, out.String())
			}
		})
	}
}
