package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"webwhisper/internal/chat"
	chatTelegram "webwhisper/internal/chat/delivery/telegram"
	chatWeb "webwhisper/internal/chat/delivery/web"
	"webwhisper/internal/middleware"
	"webwhisper/pkg/log"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin          *gin.Engine
	l            log.Logger
	port         int
	mode         string
	environment  string
	writeTimeout time.Duration

	// Chat domain
	chatUC     chat.UseCase
	middleware middleware.Config
	web        chatWeb.Config

	// Telegram channel
	telegramHandler chatTelegram.Handler

	// Readiness
	ready func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// WriteTimeout bounds a whole request. It must cover a page fetch plus model generation.
	WriteTimeout time.Duration

	// Chat domain
	ChatUseCase chat.UseCase
	Middleware  middleware.Config
	Web         chatWeb.Config

	// TelegramHandler serves POST /webhook/telegram. Optional.
	TelegramHandler chatTelegram.Handler

	// Ready reports whether the service can answer questions. Optional.
	Ready func(ctx context.Context) error
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		writeTimeout: cfg.WriteTimeout,
		chatUC:       cfg.ChatUseCase,
		middleware:   cfg.Middleware,
		web:          cfg.Web,

		telegramHandler: cfg.TelegramHandler,
		ready:           cfg.Ready,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	return nil
}
