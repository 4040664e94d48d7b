package telegram

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"webwhisper/internal/chat"
	pkgLog "webwhisper/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Bot is the part of the Telegram client the handler needs.
type Bot interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendTyping(ctx context.Context, chatID int64) error
}

// Config holds the webhook settings.
type Config struct {
	// Secret must match the secret token header on every update. Empty disables the check.
	Secret string
	// ProcessTimeout bounds the background work for one update.
	ProcessTimeout time.Duration
}

const defaultProcessTimeout = 3 * time.Minute

type handler struct {
	l   pkgLog.Logger
	uc  chat.UseCase
	bot Bot
	cfg Config

	// process runs the work for one update; tests replace it to run synchronously.
	process func(func())
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase, bot Bot, cfg Config) Handler {
	if cfg.ProcessTimeout <= 0 {
		cfg.ProcessTimeout = defaultProcessTimeout
	}
	return &handler{
		l:       l,
		uc:      uc,
		bot:     bot,
		cfg:     cfg,
		process: func(f func()) { go f() },
	}
}
