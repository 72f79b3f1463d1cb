package http

import (
	"github.com/gin-gonic/gin"

	"todo-assistant/internal/assistant"
	"todo-assistant/internal/model"
	"todo-assistant/pkg/datemath"
	"todo-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	GetBatch(c *gin.Context)
	UpdateItem(c *gin.Context)
	Commit(c *gin.Context)
	Cancel(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       assistant.UseCase
	dateMath *datemath.Parser
	defaults model.Session
}

// New creates a new HTTP handler for the assistant domain. defaults supplies the API key
// and generation settings when a request does not carry its own.
func New(l log.Logger, uc assistant.UseCase, dateMath *datemath.Parser, defaults model.Session) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		dateMath: dateMath,
		defaults: defaults,
	}
}
