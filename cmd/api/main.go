package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webwhisper/config"
	_ "webwhisper/docs" // Swagger docs
	chatTelegram "webwhisper/internal/chat/delivery/telegram"
	chatWeb "webwhisper/internal/chat/delivery/web"
	"webwhisper/internal/chat/repository/memory"
	"webwhisper/internal/chat/usecase"
	"webwhisper/internal/httpserver"
	"webwhisper/internal/middleware"
	"webwhisper/pkg/extractor"
	"webwhisper/pkg/llmprovider"
	"webwhisper/pkg/log"
	"webwhisper/pkg/scraper"
	"webwhisper/pkg/telegram"
)

// @title       WebWhisper API
// @description Chat with any website: analyze a URL, then ask questions answered from its content.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting WebWhisper...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Primary model: %s", cfg.LLM.PrimaryModel())

	// 3. Scraper and extractor
	webScraper, err := scraper.New(scraper.Config{
		Timeout:      cfg.Scraper.Timeout,
		UserAgent:    cfg.Scraper.UserAgent,
		MaxBodyBytes: cfg.Scraper.MaxBodyBytes,
		MaxRedirects: cfg.Scraper.MaxRedirects,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize scraper: ", err)
		os.Exit(1)
	}
	textExtractor := extractor.New(cfg.Extractor.MaxLength)

	// 4. LLM providers, built on first question
	llm := llmprovider.NewLazy(func() (*llmprovider.Manager, error) {
		return llmprovider.NewManagerFromConfig(&cfg.LLM, logger)
	})

	// 5. Chat domain
	sessionRepo := memory.New(logger, memory.Config{
		MaxSessions: cfg.Session.MaxSessions,
		TTL:         cfg.Session.TTL,
	})
	chatUC := usecase.New(logger, sessionRepo, webScraper, textExtractor, llm, usecase.Options{
		MaxNewTokens:  cfg.Chat.MaxNewTokens,
		MinNewTokens:  cfg.Chat.MinNewTokens,
		Temperature:   cfg.Chat.Temperature,
		PreviewLength: cfg.Chat.PreviewLength,
	})

	// 6. Telegram channel (optional)
	var telegramHandler chatTelegram.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = chatTelegram.New(logger, chatUC, bot, chatTelegram.Config{
			Secret:         cfg.Telegram.WebhookSecret,
			ProcessTimeout: requestBudget(cfg),
		})

		if cfg.Telegram.WebhookURL != "" {
			if err := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL, cfg.Telegram.WebhookSecret); err != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram channel skipped: TELEGRAM_BOT_TOKEN is not set")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		WriteTimeout: requestBudget(cfg),
		ChatUseCase:  chatUC,
		Middleware: middleware.Config{
			RateLimitPerMin: cfg.RateLimit.PerMin,
			CookieName:      cfg.Session.CookieName,
			CookieTTL:       cfg.Session.TTL,
			SecureCookie:    cfg.Session.SecureCookie,
		},
		Web: chatWeb.Config{
			DefaultURL:    cfg.Chat.DefaultURL,
			ModelName:     cfg.LLM.PrimaryModel(),
			PreviewLength: cfg.Chat.PreviewLength,
			SecureCookie:  cfg.Session.SecureCookie,
		},
		TelegramHandler: telegramHandler,
		Ready: func(ctx context.Context) error {
			_, err := llm.Manager()
			return err
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// requestBudget covers one page fetch plus the whole model call, with some slack.
func requestBudget(cfg *config.Config) time.Duration {
	llmTimeout, err := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	if err != nil || llmTimeout <= 0 {
		llmTimeout = 2 * time.Minute
	}
	return cfg.Scraper.Timeout + llmTimeout + 10*time.Second
}
