package http

import (
	"github.com/gin-gonic/gin"

	"todo-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Only parse reaches the model, so only parse is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	a := rg.Group("/assistant")
	{
		a.POST("/parse", mw.RateLimit(), h.Parse)
		a.GET("/batches/:id", h.GetBatch)
		a.PATCH("/batches/:id/items/:index", h.UpdateItem)
		a.POST("/batches/:id/commit", h.Commit)
		a.DELETE("/batches/:id", h.Cancel)
	}
}
