package http

import (
	"github.com/gin-gonic/gin"
)

// processAnalyzeReq binds and validates the analyze request body + URI param.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, errSessionIDRequired
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processAskReq binds and validates the ask request body + URI param.
func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, errSessionIDRequired
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSessionID reads the session id URI param.
func (h *handler) processSessionID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errSessionIDRequired
	}
	return id, nil
}
