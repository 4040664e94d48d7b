package http

import (
	"webwhisper/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every POST is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("", mw.RateLimit(), h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.DELETE("/:id", h.DeleteSession)
		sessions.GET("/:id/stats", h.Stats)
		sessions.POST("/:id/analyze", mw.RateLimit(), h.Analyze)
		sessions.POST("/:id/ask", mw.RateLimit(), h.Ask)
		sessions.POST("/:id/clear", mw.RateLimit(), h.ClearChat)
		sessions.POST("/:id/new-website", mw.RateLimit(), h.NewWebsite)
	}
}
