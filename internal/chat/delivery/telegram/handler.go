package telegram

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"webwhisper/internal/chat"
	pkgResponse "webwhisper/pkg/response"
	pkgTelegram "webwhisper/pkg/telegram"
)

const (
	welcomeText = "Welcome to WebWhisper AI!\n\n" +
		"Send /analyze <url> and then ask anything about that website.\n\n" + helpText

	helpText = "Commands:\n" +
		"/analyze <url> - load a website (a bare link works too)\n" +
		"/clear - forget the conversation, keep the website\n" +
		"/new - forget the website\n" +
		"/stats - show what is loaded\n\n" +
		"Example questions:\n" +
		"• What is this website about?\n" +
		"• What services are offered?\n" +
		"• What are the main features?"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and works in the background, since fetching a
// page and generating an answer can outlast Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cfg.Secret != "" {
		got := c.GetHeader(pkgTelegram.SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.cfg.Secret)) != 1 {
			h.l.Warnf(ctx, "telegram handler: %v", errBadSecret)
			pkgResponse.Error(c, pkgResponse.NewHTTPError(http.StatusUnauthorized, "unauthorized"), nil)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-text updates
	if update.Message == nil || update.Message.Chat == nil || strings.TrimSpace(update.Message.Text) == "" {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	h.process(func() {
		// Detach from the request context, which ends with the response.
		bgCtx, cancel := context.WithTimeout(context.Background(), h.cfg.ProcessTimeout)
		defer cancel()

		reply := h.processMessage(bgCtx, msg)
		if err := h.bot.SendMessage(bgCtx, msg.Chat.ID, reply); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: send reply to chat %d: %v", msg.Chat.ID, err)
		}
	})

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage runs one command or question and returns the reply text.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) string {
	sessionID := fmt.Sprintf("telegram-%d", msg.Chat.ID)
	if _, err := h.uc.EnsureSession(ctx, sessionID); err != nil {
		h.l.Errorf(ctx, "telegram handler: EnsureSession: %v", err)
		return errorMessage(err)
	}

	text := strings.TrimSpace(msg.Text)
	command, arg := splitCommand(text)

	switch command {
	case "/start":
		return welcomeText
	case "/help":
		return helpText
	case "/analyze":
		return h.analyze(ctx, msg.Chat.ID, sessionID, arg)
	case "/clear":
		if _, err := h.uc.ClearChat(ctx, sessionID); err != nil {
			return errorMessage(err)
		}
		return "Chat history cleared. The website is still loaded."
	case "/new":
		if _, err := h.uc.NewWebsite(ctx, sessionID); err != nil {
			return errorMessage(err)
		}
		return "Website forgotten. Send /analyze <url> to load another one."
	case "/stats":
		out, err := h.uc.Stats(ctx, sessionID)
		if err != nil {
			return errorMessage(err)
		}
		if !out.Stats.HasContext {
			return "No website loaded yet."
		}
		return fmt.Sprintf("Website: %s\nCharacters: %d\nMessages: %d", out.Stats.URL, out.Stats.ContextChars, out.Stats.Messages)
	case "":
		// plain text
	default:
		return "Unknown command.\n\n" + helpText
	}

	if looksLikeURL(text) {
		return h.analyze(ctx, msg.Chat.ID, sessionID, text)
	}

	if err := h.bot.SendTyping(ctx, msg.Chat.ID); err != nil {
		h.l.Warnf(ctx, "telegram handler: send typing: %v", err)
	}

	out, err := h.uc.Ask(ctx, chat.AskInput{SessionID: sessionID, Question: text})
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: Ask: %v", err)
		return errorMessage(err)
	}
	return out.Turn.Answer
}

func (h *handler) analyze(ctx context.Context, chatID int64, sessionID, rawURL string) string {
	if err := h.bot.SendTyping(ctx, chatID); err != nil {
		h.l.Warnf(ctx, "telegram handler: send typing: %v", err)
	}

	out, err := h.uc.Analyze(ctx, chat.AnalyzeInput{SessionID: sessionID, URL: rawURL})
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: Analyze: %v", err)
		return errorMessage(err)
	}

	title := out.Session.Page.Title
	if title == "" {
		title = out.Session.URL
	}
	return fmt.Sprintf("Successfully analyzed %d characters from %s.\nAsk me anything about it!",
		len([]rune(out.Session.Context)), title)
}

// splitCommand returns the lowercased command (without a @botname suffix) and its argument.
// Text that is not a command yields an empty command.
func splitCommand(text string) (string, string) {
	if !strings.HasPrefix(text, "/") {
		return "", ""
	}
	command, arg, _ := strings.Cut(text, " ")
	command, _, _ = strings.Cut(command, "@")
	return strings.ToLower(command), strings.TrimSpace(arg)
}

func looksLikeURL(text string) bool {
	if strings.ContainsAny(text, " \n\t") {
		return false
	}
	lower := strings.ToLower(text)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
