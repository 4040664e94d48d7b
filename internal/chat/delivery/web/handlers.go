package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"webwhisper/internal/chat"
	"webwhisper/internal/middleware"
)

// Index renders the chat page for the visitor's session.
func (h *handler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.EnsureSession(ctx, middleware.SessionID(c))
	if err != nil {
		h.l.Errorf(ctx, "web.Index.EnsureSession: %v", err)
		c.String(http.StatusInternalServerError, "Something went wrong. Please reload the page.")
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Render(http.StatusOK, render.HTML{
		Template: h.tmpl,
		Name:     indexTemplate,
		Data:     h.newPageView(out.Session, h.popFlash(c)),
	})
}

// Analyze loads the submitted URL into the session.
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := h.session(c)
	if !ok {
		return
	}

	out, err := h.uc.Analyze(ctx, chat.AnalyzeInput{SessionID: id, URL: c.PostForm("url")})
	if err != nil {
		h.l.Warnf(ctx, "web.Analyze: %v", err)
		h.redirect(c, flashForError(err))
		return
	}

	h.redirect(c, flash{
		Kind:    flashSuccess,
		Message: fmt.Sprintf("Successfully analyzed %d characters from the website!", len([]rune(out.Session.Context))),
	})
}

// Ask answers the submitted question.
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := h.session(c)
	if !ok {
		return
	}

	if _, err := h.uc.Ask(ctx, chat.AskInput{SessionID: id, Question: c.PostForm("question")}); err != nil {
		h.l.Warnf(ctx, "web.Ask: %v", err)
		h.redirect(c, flashForError(err))
		return
	}

	h.redirect(c, flash{})
}

// ClearChat drops the conversation and keeps the website.
func (h *handler) ClearChat(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := h.session(c)
	if !ok {
		return
	}

	if _, err := h.uc.ClearChat(ctx, id); err != nil {
		h.l.Warnf(ctx, "web.ClearChat: %v", err)
		h.redirect(c, flashForError(err))
		return
	}

	h.redirect(c, flash{})
}

// NewWebsite forgets the website and the conversation.
func (h *handler) NewWebsite(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := h.session(c)
	if !ok {
		return
	}

	if _, err := h.uc.NewWebsite(ctx, id); err != nil {
		h.l.Warnf(ctx, "web.NewWebsite: %v", err)
		h.redirect(c, flashForError(err))
		return
	}

	h.redirect(c, flash{})
}

// session makes sure the cookie's session exists, recreating it after expiry.
func (h *handler) session(c *gin.Context) (string, bool) {
	ctx := c.Request.Context()

	out, err := h.uc.EnsureSession(ctx, middleware.SessionID(c))
	if err != nil {
		h.l.Errorf(ctx, "web.EnsureSession: %v", err)
		h.redirect(c, flashForError(err))
		return "", false
	}
	return out.Session.ID, true
}

func (h *handler) redirect(c *gin.Context, f flash) {
	if f.Message != "" {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(flashCookieName, f.encode(), 60, "/", "", h.cfg.SecureCookie, true)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *handler) popFlash(c *gin.Context) *flash {
	value, err := c.Cookie(flashCookieName)
	if err != nil {
		return nil
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", h.cfg.SecureCookie, true)
	return decodeFlash(value)
}
