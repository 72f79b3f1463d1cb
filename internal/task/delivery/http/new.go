package http

import (
	"github.com/gin-gonic/gin"

	"todo-assistant/internal/task"
	"todo-assistant/pkg/datemath"
	"todo-assistant/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Toggle(c *gin.Context)
	Board(c *gin.Context)
	Calendar(c *gin.Context)
	Dashboard(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       task.UseCase
	dateMath *datemath.Parser
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase, dateMath *datemath.Parser) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		dateMath: dateMath,
	}
}
