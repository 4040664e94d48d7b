package web

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"

	"webwhisper/internal/chat"
	"webwhisper/pkg/log"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	indexTemplate   = "index.html"
	flashCookieName = "webwhisper_flash"

	defaultPreviewLength = 500
)

// Handler serves the server-rendered chat page.
type Handler interface {
	Index(c *gin.Context)
	Analyze(c *gin.Context)
	Ask(c *gin.Context)
	ClearChat(c *gin.Context)
	NewWebsite(c *gin.Context)
}

// Config holds page settings.
type Config struct {
	DefaultURL    string // prefilled in the URL input
	ModelName     string // shown in the footer
	PreviewLength int
	SecureCookie  bool
}

type handler struct {
	l    log.Logger
	uc   chat.UseCase
	tmpl *template.Template
	cfg  Config
}

// New parses the embedded templates and returns the page handler.
func New(l log.Logger, uc chat.UseCase, cfg Config) (*handler, error) {
	if cfg.PreviewLength <= 0 {
		cfg.PreviewLength = defaultPreviewLength
	}

	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse templates: %w", err)
	}

	return &handler{
		l:    l,
		uc:   uc,
		tmpl: tmpl,
		cfg:  cfg,
	}, nil
}

var templateFuncs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}
