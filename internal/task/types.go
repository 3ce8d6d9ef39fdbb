package task

import (
	"time"

	"sales-task-tracker/internal/model"
)

// AddInput is a single task to append. Blank fields fall back to defaults.
type AddInput struct {
	ID        string
	Title     string
	Revenue   float64
	TimeTaken float64
	Priority  model.Priority
	Status    model.Status
	Notes     string
}

type AddOutput struct {
	Task model.Task
}

// TaskPatch is a partial update. Nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Revenue     *float64
	TimeTaken   *float64
	Priority    *model.Priority
	Status      *model.Status
	Notes       *string
	CompletedAt *time.Time
}

type UpdateInput struct {
	ID    string
	Patch TaskPatch
}

type UpdateOutput struct {
	Task  model.Task
	Found bool
}

type DeleteOutput struct {
	Deleted bool
}

type UndoOutput struct {
	Task     model.Task
	Restored bool
}

// StateOutput is a snapshot of the store for consumers.
type StateOutput struct {
	State       model.LoadState
	Loading     bool
	Error       string
	Tasks       []model.Task
	LastDeleted *model.Task
}

type RankedInput struct {
	Status   model.Status
	Priority model.Priority
	Query    string
}

type RankedOutput struct {
	Tasks []model.DerivedTask
	Count int
}
