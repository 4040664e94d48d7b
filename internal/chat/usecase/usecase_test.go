package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"webwhisper/internal/chat"
	"webwhisper/internal/chat/repository/memory"
	"webwhisper/pkg/extractor"
	"webwhisper/pkg/llmprovider"
	"webwhisper/pkg/scraper"
)

const exampleDomainHTML = `<!doctype html><html><head><title>Example Domain</title>
<style>body { background-color: #f0f0f2; }</style></head>
<body><div><h1>Example Domain</h1>
<p>This domain is for use in illustrative examples in documents.</p>
<p><a href="https://www.iana.org/domains/example">More information...</a></p></div></body></html>`

// mockScraper serves fixed pages by URL
type mockScraper struct {
	pages map[string]*scraper.Page
	calls int
}

func (m *mockScraper) Fetch(ctx context.Context, rawURL string) (*scraper.Page, error) {
	m.calls++
	if _, err := scraper.ValidateURL(rawURL); err != nil {
		return nil, &scraper.FetchError{URL: rawURL, Err: err}
	}
	page, ok := m.pages[rawURL]
	if !ok {
		return nil, &scraper.FetchError{URL: rawURL, Err: errors.New("dial tcp: lookup failed")}
	}
	return page, nil
}

// mockGenerator records requests and returns a fixed answer
type mockGenerator struct {
	mu       sync.Mutex
	answer   string
	err      error
	requests []*llmprovider.Request
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.TextMessage("assistant", m.answer),
		ProviderName: "mock",
		ModelName:    "mock-model",
	}, nil
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func newPage(url, contentType, body string) *scraper.Page {
	return &scraper.Page{
		URL:         url,
		FinalURL:    url,
		StatusCode:  200,
		ContentType: contentType,
		Body:        body,
		FetchedAt:   time.Now(),
	}
}

func newTestUseCase(gen *mockGenerator, maxLength int) (*implUseCase, *mockScraper) {
	l := &mockLogger{}
	sc := &mockScraper{pages: map[string]*scraper.Page{
		"https://example.com":        newPage("https://example.com", "text/html", exampleDomainHTML),
		"https://example.com/empty":  newPage("https://example.com/empty", "text/html", "<html><script>x()</script></html>"),
		"https://example.com/long":   newPage("https://example.com/long", "text/html", "<p>"+strings.Repeat("Lorem ipsum dolor sit amet. ", 400)+"</p>"),
		"https://example.com/robots": newPage("https://example.com/robots", "text/plain", "User-agent: *\n\nDisallow: /private"),
	}}
	uc := New(l, memory.New(l, memory.Config{}), sc, extractor.New(maxLength), gen, Options{
		MaxNewTokens: 150,
		MinNewTokens: 20,
	})
	return uc, sc
}

func newSession(t *testing.T, uc *implUseCase) string {
	t.Helper()
	out, err := uc.CreateSession(context.Background(), chat.CreateSessionInput{})
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	return out.Session.ID
}

func TestAnalyzeAndAsk_ExampleDomain(t *testing.T) {
	ctx := context.Background()
	gen := &mockGenerator{answer: "  It is a domain for illustrative examples.  "}
	uc, _ := newTestUseCase(gen, 2000)
	id := newSession(t, uc)

	analyzed, err := uc.Analyze(ctx, chat.AnalyzeInput{SessionID: id, URL: "https://example.com"})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if !strings.Contains(analyzed.Session.Context, "Example Domain") {
		t.Errorf("context missing page text: %q", analyzed.Session.Context)
	}
	if analyzed.Session.Page.Title != "Example Domain" {
		t.Errorf("expected title, got %q", analyzed.Session.Page.Title)
	}
	if analyzed.Preview != analyzed.Session.Context {
		t.Errorf("short context should be its own preview, got %q", analyzed.Preview)
	}

	asked, err := uc.Ask(ctx, chat.AskInput{SessionID: id, Question: "What is this website about?"})
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if asked.Turn.Answer != "It is a domain for illustrative examples." {
		t.Errorf("expected trimmed answer, got %q", asked.Turn.Answer)
	}
	if asked.Turn.Provider != "mock" || asked.Turn.Model != "mock-model" {
		t.Errorf("unexpected provider info: %+v", asked.Turn)
	}
	if len(asked.Session.History) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(asked.Session.History))
	}

	req := gen.requests[0]
	if req.MaxTokens != 150 || req.MinTokens != 20 || req.Temperature != 0 {
		t.Errorf("unexpected generation bounds: %+v", req)
	}
	want := BuildPrompt(analyzed.Session.Context, "What is this website about?")
	if got := req.Messages[0].Text(); got != want {
		t.Errorf("unexpected prompt:\n%s\nwant:\n%s", got, want)
	}
	if !strings.HasPrefix(want, "Based on the following website content, answer the question.\n\nWebsite Content:\n") ||
		!strings.HasSuffix(want, "\n\nQuestion: What is this website about?\n\nAnswer:") {
		t.Errorf("prompt does not follow the template: %q", want)
	}
}

func TestAsk_SameQuestionTwiceAppendsTwice(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(&mockGenerator{answer: "answer"}, 2000)
	id := newSession(t, uc)
	if _, err := uc.Analyze(ctx, chat.AnalyzeInput{SessionID: id, URL: "https://example.com"}); err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	for _, q := range []string{"first?", "same?", "same?"} {
		if _, err := uc.Ask(ctx, chat.AskInput{SessionID: id, Question: q}); err != nil {
			t.Fatalf("Ask(%q) error = %v", q, err)
		}
	}

	out, _ := uc.GetSession(ctx, id)
	got := out.Session.History
	if len(got) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(got))
	}
	if got[0].Question != "first?" || got[1].Question != "same?" || got[2].Question != "same?" {
		t.Errorf("history out of order: %+v", got)
	}

	stats, _ := uc.Stats(ctx, id)
	if stats.Stats.Messages != 6 {
		t.Errorf("expected 6 messages, got %d", stats.Stats.Messages)
	}
	if stats.Stats.ContextChars != utf8.RuneCountInString(out.Session.Context) {
		t.Errorf("unexpected context chars: %d", stats.Stats.ContextChars)
	}
}

// blockingGenerator holds every request until release is closed
type blockingGenerator struct {
	started chan struct{}
	release chan struct{}
}

func (g *blockingGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	g.started <- struct{}{}
	<-g.release
	return &llmprovider.Response{
		Content:      llmprovider.TextMessage("assistant", "late answer"),
		ProviderName: "mock",
		ModelName:    "mock-model",
	}, nil
}

func TestAsk_ResetDuringGenerationDropsAnswer(t *testing.T) {
	tests := []struct {
		name        string
		reset       func(uc *implUseCase, id string) error
		wantContext bool
	}{
		{
			name: "new website",
			reset: func(uc *implUseCase, id string) error {
				_, err := uc.NewWebsite(context.Background(), id)
				return err
			},
		},
		{
			name: "clear chat",
			reset: func(uc *implUseCase, id string) error {
				_, err := uc.ClearChat(context.Background(), id)
				return err
			},
			wantContext: true,
		},
		{
			name: "analyze again",
			reset: func(uc *implUseCase, id string) error {
				_, err := uc.Analyze(context.Background(), chat.AnalyzeInput{SessionID: id, URL: "https://example.com/robots"})
				return err
			},
			wantContext: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			gen := &blockingGenerator{started: make(chan struct{}), release: make(chan struct{})}
			uc, _ := newTestUseCase(&mockGenerator{}, 2000)
			uc.llm = gen
			id := newSession(t, uc)
			if _, err := uc.Analyze(ctx, chat.AnalyzeInput{SessionID: id, URL: "https://example.com"}); err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}

			errc := make(chan error, 1)
			go func() {
				_, err := uc.Ask(ctx, chat.AskInput{SessionID: id, Question: "What is this?"})
				errc <- err
			}()

			<-gen.started
			if err := tt.reset(uc, id); err != nil {
				t.Fatalf("reset error = %v", err)
			}
			close(gen.release)

			if err := <-errc; !errors.Is(err, chat.ErrContextChanged) {
				t.Errorf("expected ErrContextChanged, got %v", err)
			}

			out, _ := uc.GetSession(ctx, id)
			if len(out.Session.History) != 0 {
				t.Errorf("expected empty history after reset, got %+v", out.Session.History)
			}
			if out.Session.HasContext() != tt.wantContext {
				t.Errorf("HasContext() = %v, want %v", out.Session.HasContext(), tt.wantContext)
			}
		})
	}
}

func TestAsk_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty question", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockGenerator{answer: "x"}, 2000)
		id := newSession(t, uc)
		if _, err := uc.Ask(ctx, chat.AskInput{SessionID: id, Question: "   "}); !errors.Is(err, chat.ErrEmptyQuestion) {
			t.Errorf("expected ErrEmptyQuestion, got %v", err)
		}
	})

	t.Run("No context", func(t *testing.T) {
		gen := &mockGenerator{answer: "x"}
		uc, _ := newTestUseCase(gen, 2000)
		id := newSession(t, uc)
		if _, err := uc.Ask(ctx, chat.AskInput{SessionID: id, Question: "hi"}); !errors.Is(err, chat.ErrNoContext) {
			t.Errorf("expected ErrNoContext, got %v", err)
		}
		if len(gen.requests) != 0 {
			t.Errorf("model must not be called without context")
		}
	})

	t.Run("Unknown session", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockGenerator{answer: "x"}, 2000)
		if _, err := uc.Ask(ctx, chat.AskInput{SessionID: "nope", Question: "hi"}); !errors.Is(err, chat.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("Model failure", func(t *testing.T) {
		gen := &mockGenerator{err: llmprovider.ErrAllProvidersFailed}
		uc, _ := newTestUseCase(gen, 2000)
		id := newSession(t, uc)
		_, _ = uc.Analyze(ctx, chat.AnalyzeInput{SessionID: id, URL: "https://example.com"})

		_, err := uc.Ask(ctx, chat.AskInput{SessionID: id, Question: "hi"})
		var modelErr *chat.ModelError
		if !errors.As(err, &modelErr) {
			t.Fatalf("expected *ModelError, got %v", err)
		}
		if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
			t.Errorf("expected wrapped provider error, got %v", err)
		}
		out, _ := uc.GetSession(ctx, id)
		if len(out.Session.History) != 0 {
			t.Errorf("failed answers must not be recorded")
		}
	})

	t.Run("Blank answer uses fallback", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockGenerator{answer: " \n "}, 2000)
		id := newSession(t, uc)
		_, _ = uc.Analyze(ctx, chat.AnalyzeInput{SessionID: id, URL: "https://example.com"})

		out, err := uc.Ask(ctx, chat.AskInput{SessionID: id, Question: "hi"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Turn.Answer != FallbackAnswer {
			t.Errorf("expected fallback answer, got %q", out.Turn.Answer)
		}
	})
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("Unresolvable URL yields FetchError and no context", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockGenerator{answer: "x"}, 2000)
		id := newSession(t, uc)
		_, _ = uc.Analyze(ctx, chat.AnalyzeInput{SessionID: id, URL: "https://example.com"})

		_, err := uc.Analyze(ctx, chat.AnalyzeInput{SessionID: id, URL: "https://nonexistent.invalid"})
		var fetchErr *scraper.FetchError
		if !errors.As(err, &fetchErr) {
			t.Fatalf("expected *FetchError, got %v", err)
		}
		out, _ := uc.GetSession(ctx, id)
		if out.Session.HasContext() {
			t.Errorf("context must be absent after a failed analyze, got %q", out.Session.Context)
		}
	})

	t.Run("Invalid URL", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockGenerator{answer: "x"}, 2000)
		id := newSession(t, uc)
		_, err := uc.Analyze(ctx, chat.AnalyzeInput{SessionID: id, URL: "example.com"})
		if !errors.Is(err, scraper.ErrInvalidURL) {
			t.Errorf("expected ErrInvalidURL, got %v", err)
		}
	})

	t.Run("Empty URL", func(t *testing.T) {
		uc, sc := newTestUseCase(&mockGenerator{answer: "x"}, 2000)
		id := newSession(t, uc)
		if _, err := uc.Analyze(ctx, chat.AnalyzeInput{SessionID: id, URL: " "}); !errors.Is(err, chat.ErrEmptyURL) {
			t.Errorf("expected ErrEmptyURL, got %v", err)
		}
		if sc.calls != 0 {
			t.Errorf("scraper must not be called for an empty URL")
		}
	})

	t.Run("Empty content", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockGenerator{answer: "x"}, 2000)
		id := newSession(t, uc)
		_, err := uc.Analyze(ctx, chat.AnalyzeInput{SessionID: id, URL: "https://example.com/empty"})
		if !errors.Is(err, chat.ErrEmptyContent) {
			t.Errorf("expected ErrEmptyContent, got %v", err)
		}
	})

	t.Run("Long page is truncated and previewed", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockGenerator{answer: "x"}, 1000)
		id := newSession(t, uc)
		out, err := uc.Analyze(ctx, chat.AnalyzeInput{SessionID: id, URL: "https://example.com/long"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n := utf8.RuneCountInString(out.Session.Context); n > 1000 {
			t.Errorf("context longer than max: %d", n)
		}
		if !out.Session.Page.Truncated {
			t.Error("expected truncation flag")
		}
		if !strings.HasSuffix(out.Preview, "...") || utf8.RuneCountInString(out.Preview) > 503 {
			t.Errorf("unexpected preview: %q", out.Preview)
		}
	})

	t.Run("Plain text", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockGenerator{answer: "x"}, 2000)
		id := newSession(t, uc)
		out, err := uc.Analyze(ctx, chat.AnalyzeInput{SessionID: id, URL: "https://example.com/robots"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Session.Context != "User-agent: * Disallow: /private" {
			t.Errorf("unexpected context: %q", out.Session.Context)
		}
	})

	t.Run("Re-analyze clears history", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockGenerator{answer: "x"}, 2000)
		id := newSession(t, uc)
		_, _ = uc.Analyze(ctx, chat.AnalyzeInput{SessionID: id, URL: "https://example.com"})
		_, _ = uc.Ask(ctx, chat.AskInput{SessionID: id, Question: "q"})

		out, err := uc.Analyze(ctx, chat.AnalyzeInput{SessionID: id, URL: "https://example.com/robots"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Session.History) != 0 {
			t.Errorf("expected history to be cleared, got %d turns", len(out.Session.History))
		}
	})
}

func TestClearChatAndNewWebsite(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(&mockGenerator{answer: "x"}, 2000)
	id := newSession(t, uc)
	_, _ = uc.Analyze(ctx, chat.AnalyzeInput{SessionID: id, URL: "https://example.com"})
	_, _ = uc.Ask(ctx, chat.AskInput{SessionID: id, Question: "q"})

	cleared, err := uc.ClearChat(ctx, id)
	if err != nil {
		t.Fatalf("ClearChat() error = %v", err)
	}
	if len(cleared.Session.History) != 0 || !cleared.Session.HasContext() {
		t.Errorf("ClearChat should keep context and drop history: %+v", cleared.Session)
	}

	_, _ = uc.Ask(ctx, chat.AskInput{SessionID: id, Question: "q"})
	fresh, err := uc.NewWebsite(ctx, id)
	if err != nil {
		t.Fatalf("NewWebsite() error = %v", err)
	}
	if len(fresh.Session.History) != 0 || fresh.Session.HasContext() || fresh.Session.URL != "" {
		t.Errorf("NewWebsite should drop everything: %+v", fresh.Session)
	}

	if _, err := uc.ClearChat(ctx, "missing"); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestEnsureSession(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(&mockGenerator{answer: "x"}, 2000)

	first, err := uc.EnsureSession(ctx, "cookie-id")
	if err != nil {
		t.Fatalf("EnsureSession() error = %v", err)
	}
	if first.Session.ID != "cookie-id" {
		t.Errorf("expected id cookie-id, got %s", first.Session.ID)
	}

	again, err := uc.EnsureSession(ctx, "cookie-id")
	if err != nil {
		t.Fatalf("EnsureSession() error = %v", err)
	}
	if !again.Session.CreatedAt.Equal(first.Session.CreatedAt) {
		t.Errorf("expected the existing session to be reused")
	}

	generated, err := uc.EnsureSession(ctx, "")
	if err != nil || generated.Session.ID == "" {
		t.Errorf("expected a generated session, got %+v (%v)", generated, err)
	}
}

func TestDeleteSession(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(&mockGenerator{answer: "answer"}, 2000)
	id := newSession(t, uc)
	newSession(t, uc)

	if n := uc.CountSessions(ctx); n != 2 {
		t.Fatalf("expected 2 sessions, got %d", n)
	}
	if err := uc.DeleteSession(ctx, id); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}
	if n := uc.CountSessions(ctx); n != 1 {
		t.Errorf("expected 1 session, got %d", n)
	}
	if _, err := uc.GetSession(ctx, id); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}
	if err := uc.DeleteSession(ctx, id); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound on second delete, got %v", err)
	}
	if err := uc.DeleteSession(ctx, " "); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound for blank id, got %v", err)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(&mockGenerator{answer: "x"}, 2000)
	a := newSession(t, uc)
	b := newSession(t, uc)

	_, _ = uc.Analyze(ctx, chat.AnalyzeInput{SessionID: a, URL: "https://example.com"})

	out, _ := uc.GetSession(ctx, b)
	if out.Session.HasContext() {
		t.Error("analyzing one session must not affect another")
	}
}
