package httpserver

import (
	"github.com/gin-gonic/gin"

	"todo-assistant/pkg/response"
)

const (
	ServiceName    = "todo-assistant"
	ServiceVersion = "1.0.0"
)

// probe builds the body shared by the health endpoints.
func (srv HTTPServer) probe(status string) gin.H {
	return gin.H{
		"status":      status,
		"service":     ServiceName,
		"version":     ServiceVersion,
		"environment": srv.environment,
	}
}

// healthCheck reports the service identity.
// @Summary Health Check
// @Tags    System
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.probe("healthy"))
}

// readyCheck also reports which domains are mounted.
// @Summary Readiness Check
// @Tags    System
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	body := srv.probe("ready")
	body["tasks"] = srv.taskHandler != nil
	body["assistant"] = srv.assistantHandler != nil
	response.OK(c, body)
}

// @Summary Liveness Check
// @Tags    System
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.probe("alive"))
}
