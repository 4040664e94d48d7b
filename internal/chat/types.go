package chat

import (
	"strings"
	"time"
	"unicode/utf8"
)

// --- Domain Model ---

// Session is one visitor's conversation about one website.
// Context is empty until a website has been analyzed.
type Session struct {
	ID      string
	URL     string
	Context string
	Page    PageMeta
	History []Turn
	// Revision increases whenever the context or the history is reset.
	Revision  uint64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasContext reports whether a website is loaded.
func (s Session) HasContext() bool {
	return s.Context != ""
}

// Clone returns a copy that shares no slices with s.
func (s Session) Clone() Session {
	if s.History != nil {
		h := make([]Turn, len(s.History))
		copy(h, s.History)
		s.History = h
	}
	return s
}

// Preview returns the first n characters of the context, with "..." when it is longer.
func (s Session) Preview(n int) string {
	if utf8.RuneCountInString(s.Context) <= n {
		return s.Context
	}
	runes := []rune(s.Context)
	return strings.TrimRight(string(runes[:n]), " ") + "..."
}

// PageMeta describes the analyzed page.
type PageMeta struct {
	Title       string
	Description string
	SiteName    string
	FinalURL    string
	RawLength   int  // characters of extracted text before truncation
	Truncated   bool // context was cut to the configured maximum
	FetchedAt   time.Time
}

// Turn is one question and its answer.
type Turn struct {
	Question string
	Answer   string
	Provider string
	Model    string
	AskedAt  time.Time
}

// Stats is the sidebar summary of a session.
type Stats struct {
	URL          string
	HasContext   bool
	ContextChars int
	Messages     int // user and assistant messages, two per turn
}

// --- UseCase Inputs ---

type CreateSessionInput struct {
	ID string // optional; generated when empty
}

type AnalyzeInput struct {
	SessionID string
	URL       string
}

type AskInput struct {
	SessionID string
	Question  string
}

// --- UseCase Outputs ---

type SessionOutput struct {
	Session Session
}

type AnalyzeOutput struct {
	Session Session
	Preview string
}

type AskOutput struct {
	Session Session
	Turn    Turn
}

type StatsOutput struct {
	Stats Stats
}
