package repository

import (
	"context"

	"sales-task-tracker/internal/model"
)

// Repository is the composed interface for the task store's backing state.
type Repository interface {
	TaskRepository
	UndoRepository
}

// TaskRepository holds the ordered task collection. Every method that changes
// the collection bumps Revision.
type TaskRepository interface {
	// Replace swaps the whole collection.
	Replace(ctx context.Context, tasks []model.Task)
	// Append adds t at the end.
	Append(ctx context.Context, t model.Task)
	// Get returns the task with id. ok is false when it does not exist.
	Get(ctx context.Context, id string) (t model.Task, ok bool)
	// Save overwrites the task with t.ID in place. Returns false when absent.
	Save(ctx context.Context, t model.Task) bool
	// Remove deletes the task with id and returns it.
	Remove(ctx context.Context, id string) (t model.Task, ok bool)
	// List returns a copy of the collection in insertion order.
	List(ctx context.Context) []model.Task
	// Revision identifies the current contents of the collection.
	Revision() uint64
}

// UndoRepository is the single-slot buffer of the last deleted task.
type UndoRepository interface {
	SetLastDeleted(ctx context.Context, t model.Task)
	LastDeleted(ctx context.Context) (t model.Task, ok bool)
	ClearLastDeleted(ctx context.Context)
}
