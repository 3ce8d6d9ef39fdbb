package http

import (
	"github.com/gin-gonic/gin"

	"sales-task-tracker/internal/task"
	"sales-task-tracker/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	State(c *gin.Context)
	Ranked(c *gin.Context)
	Metrics(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Undo(c *gin.Context)
	DismissUndo(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
