package web

import (
	"github.com/gin-gonic/gin"

	"webwhisper/internal/middleware"
)

// RegisterRoutes mounts the chat page. Every route carries the session cookie
// and every form post is rate limited.
func RegisterRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	page := r.Group("", mw.SessionCookie())
	{
		page.GET("/", h.Index)
		page.POST("/analyze", mw.RateLimit(), h.Analyze)
		page.POST("/ask", mw.RateLimit(), h.Ask)
		page.POST("/clear", mw.RateLimit(), h.ClearChat)
		page.POST("/new-website", mw.RateLimit(), h.NewWebsite)
	}
}
