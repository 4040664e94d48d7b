package http

import (
	"github.com/gin-gonic/gin"

	"webwhisper/internal/chat"
	"webwhisper/pkg/response"
)

// CreateSession godoc
// @Summary     Create a chat session
// @Description Starts an empty session. No website is loaded until analyze is called.
// @Tags        Sessions
// @Produce     json
// @Success     200 {object} sessionResp
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.CreateSession(ctx, chat.CreateSessionInput{})
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(output.Session))
}

// GetSession godoc
// @Summary     Get a chat session
// @Description Returns the analyzed URL, page metadata, conversation history and statistics.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetSession(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.GetSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(output.Session))
}

// Stats godoc
// @Summary     Get session statistics
// @Description Returns the analyzed URL, the context size in characters and the message count.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} statsDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Stats(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newStatsDetailResp(output.Stats))
}

// Analyze godoc
// @Summary     Analyze a website
// @Description Fetches the URL, extracts its visible text and stores it as the session context.
// @Description Any previous context and history are cleared first, even if the fetch fails.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Session ID"
// @Param       body body analyzeReq true "Website to analyze"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "No extractable content"
// @Failure     502 {object} response.Resp "Website could not be fetched"
// @Failure     504 {object} response.Resp "Website timed out"
// @Router      /api/v1/sessions/{id}/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, h.mapBindError(err), nil)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// Ask godoc
// @Summary     Ask a question
// @Description Answers the question from the analyzed website content and records the turn.
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       id   path string true "Session ID"
// @Param       body body askReq true "Question"
// @Success     200 {object} askResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Session reset while answering"
// @Failure     503 {object} response.Resp "Model unavailable"
// @Router      /api/v1/sessions/{id}/ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, h.mapBindError(err), nil)
		return
	}

	output, err := h.uc.Ask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Ask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAskResp(output))
}

// DeleteSession godoc
// @Summary     Delete a session
// @Description Drops the session with its website content and history.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id} [DELETE]
func (h *handler) DeleteSession(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.DeleteSession(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.DeleteSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// ClearChat godoc
// @Summary     Clear conversation history
// @Description Drops the history but keeps the analyzed website.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/clear [POST]
func (h *handler) ClearChat(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ClearChat(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.ClearChat: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(output.Session))
}

// NewWebsite godoc
// @Summary     Forget the analyzed website
// @Description Clears the URL, the extracted context and the history.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/new-website [POST]
func (h *handler) NewWebsite(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.NewWebsite(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.NewWebsite: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(output.Session))
}
