package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"webwhisper/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "WebWhisper whispers insights from any website"
	HealthVersion = "1.0.0"
	ServiceName   = "webwhisper"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":   "healthy",
		"message":  HealthMessage,
		"version":  HealthVersion,
		"service":  ServiceName,
		"sessions": srv.chatUC.CountSessions(c.Request.Context()),
	})
}

// readyCheck handles readiness check. It fails while no LLM provider can be built.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "No model available"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.ready != nil {
		if err := srv.ready(c.Request.Context()); err != nil {
			srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: %v", err)
			response.Error(c, response.NewHTTPError(http.StatusServiceUnavailable, "not ready: "+err.Error()), nil)
			return
		}
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
