package memory

import (
	"fmt"
	"sync"

	"sales-task-tracker/internal/model"
	"sales-task-tracker/internal/task/repository"
	"sales-task-tracker/pkg/log"
)

type implRepository struct {
	mu          sync.RWMutex
	tasks       []model.Task
	index       map[string]int
	lastDeleted *model.Task
	revision    uint64
	l           log.Logger
}

// New creates an empty in-memory Repository for the task domain.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		index: make(map[string]int),
		l:     l,
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/memory.%s", method)
}
