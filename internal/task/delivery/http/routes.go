package http

import (
	"github.com/gin-gonic/gin"

	"sales-task-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Mutations are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.State)
		tasks.GET("/ranked", h.Ranked)
		tasks.GET("/metrics", h.Metrics)
		tasks.POST("", mw.RateLimit(), h.Create)
		tasks.POST("/undo", mw.RateLimit(), h.Undo)
		tasks.DELETE("/undo", mw.RateLimit(), h.DismissUndo)
		tasks.PATCH("/:id", mw.RateLimit(), h.Update)
		tasks.DELETE("/:id", mw.RateLimit(), h.Delete)
	}
}
