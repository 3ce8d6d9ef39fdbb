package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sales-task-tracker/internal/model"
	"sales-task-tracker/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "sales-task-tracker"
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
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once the initial task load has settled.
// @Summary Readiness Check
// @Description Ready after the initial task load finishes, successfully or not
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "Initial load still running"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	state := model.LoadStateReady
	if srv.taskUC != nil {
		out, err := srv.taskUC.State(c.Request.Context())
		if err != nil {
			response.InternalError(c, err)
			return
		}
		state = out.State
	}

	body := gin.H{
		"status":     "ready",
		"load_state": state,
		"version":    HealthVersion,
		"service":    ServiceName,
	}
	if !state.Settled() {
		body["status"] = "loading"
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "initial load in progress",
			Data:      body,
		})
		return
	}
	response.OK(c, body)
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
		"version": HealthVersion,
		"service": ServiceName,
	})
}
