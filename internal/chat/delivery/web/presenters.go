package web

import (
	"strings"

	"webwhisper/internal/chat"
)

// ExampleQuestions are suggested on the welcome screen.
var ExampleQuestions = []string{
	"What is this website about?",
	"What services are offered?",
	"What are the main features?",
	"Who is the target audience?",
	"What problems does it solve?",
}

type flashKind string

const (
	flashSuccess flashKind = "success"
	flashError   flashKind = "error"
	flashWarning flashKind = "warning"
)

type flash struct {
	Kind    flashKind
	Message string
}

func (f flash) encode() string {
	return string(f.Kind) + ":" + f.Message
}

func decodeFlash(value string) *flash {
	kind, msg, ok := strings.Cut(value, ":")
	if !ok || msg == "" {
		return nil
	}
	switch flashKind(kind) {
	case flashSuccess, flashError, flashWarning:
		return &flash{Kind: flashKind(kind), Message: msg}
	}
	return nil
}

type turnView struct {
	Question string
	Answer   string
}

type pageView struct {
	DefaultURL       string
	URL              string
	HasContext       bool
	Title            string
	Description      string
	FinalURL         string
	Characters       int
	RawLength        int
	Truncated        bool
	Messages         int
	Preview          string
	History          []turnView
	Flash            *flash
	ExampleQuestions []string
	ModelName        string
}

func (h *handler) newPageView(s chat.Session, f *flash) pageView {
	v := pageView{
		DefaultURL:       h.cfg.DefaultURL,
		URL:              s.URL,
		HasContext:       s.HasContext(),
		Flash:            f,
		ExampleQuestions: ExampleQuestions,
		ModelName:        h.cfg.ModelName,
		Messages:         2 * len(s.History),
	}
	if v.URL != "" {
		v.DefaultURL = v.URL
	}
	if !v.HasContext {
		return v
	}

	v.Title = s.Page.Title
	v.Description = s.Page.Description
	v.FinalURL = s.Page.FinalURL
	v.Characters = len([]rune(s.Context))
	v.RawLength = s.Page.RawLength
	v.Truncated = s.Page.Truncated
	v.Preview = s.Preview(h.cfg.PreviewLength)

	v.History = make([]turnView, len(s.History))
	for i, t := range s.History {
		v.History[i] = turnView{Question: t.Question, Answer: t.Answer}
	}
	return v
}
