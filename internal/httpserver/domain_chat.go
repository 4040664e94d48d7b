package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	chatHTTP "webwhisper/internal/chat/delivery/http"
	chatWeb "webwhisper/internal/chat/delivery/web"
	"webwhisper/internal/middleware"
)

// setupChatDomain registers the JSON API under /api/v1/sessions and the chat page at /.
func (srv HTTPServer) setupChatDomain(ctx context.Context, root *gin.Engine, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. JSON API
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, h, mw)

	// 2. HTML page
	page, err := chatWeb.New(srv.l, srv.chatUC, srv.web)
	if err != nil {
		return fmt.Errorf("chat web: %w", err)
	}
	chatWeb.RegisterRoutes(root, page, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
