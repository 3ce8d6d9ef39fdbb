package task

import (
	"context"

	"sales-task-tracker/internal/model"
)

// UseCase is the task store: the authoritative task collection, its
// mutation rules, and the derived views computed from it.
type UseCase interface {
	// Load runs the initial bulk load. Only the first call does anything.
	Load(ctx context.Context) error

	// Mutations. None of them fail on bad values or unknown ids.
	Add(ctx context.Context, input AddInput) (AddOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id string) (DeleteOutput, error)
	UndoDelete(ctx context.Context) (UndoOutput, error)
	ClearLastDeleted(ctx context.Context) error

	// Views.
	State(ctx context.Context) (StateOutput, error)
	Ranked(ctx context.Context, input RankedInput) (RankedOutput, error)
	Metrics(ctx context.Context) (model.Metrics, error)
}

// Source fetches the raw seed payload: decoded JSON, expected to be an array.
type Source interface {
	LoadTasks(ctx context.Context) (any, error)
}

// Generator produces synthetic tasks when the real seed yields none.
type Generator interface {
	Generate(n int) []model.Task
}
