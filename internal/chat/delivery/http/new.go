package http

import (
	"github.com/gin-gonic/gin"

	"webwhisper/internal/chat"
	"webwhisper/pkg/log"
)

// Handler is the public interface for the chat JSON API.
type Handler interface {
	CreateSession(c *gin.Context)
	GetSession(c *gin.Context)
	Stats(c *gin.Context)
	DeleteSession(c *gin.Context)
	Analyze(c *gin.Context)
	Ask(c *gin.Context)
	ClearChat(c *gin.Context)
	NewWebsite(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
