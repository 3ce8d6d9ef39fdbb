package memory

import (
	"context"

	"sales-task-tracker/internal/model"
)

// Replace swaps the collection. Tasks are deep-copied in.
func (r *implRepository) Replace(ctx context.Context, tasks []model.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = make([]model.Task, 0, len(tasks))
	r.index = make(map[string]int, len(tasks))
	for _, t := range tasks {
		r.index[t.ID] = len(r.tasks)
		r.tasks = append(r.tasks, t.Clone())
	}
	r.revision++
	r.l.Debugf(ctx, "%s: %d tasks, revision %d", r.dsn("Replace"), len(r.tasks), r.revision)
}

// Append adds t at the end of the collection.
func (r *implRepository) Append(ctx context.Context, t model.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.index[t.ID] = len(r.tasks)
	r.tasks = append(r.tasks, t.Clone())
	r.revision++
}

// Get returns a copy of the task with id.
func (r *implRepository) Get(ctx context.Context, id string) (model.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return model.Task{}, false
	}
	return r.tasks[i].Clone(), true
}

// Save overwrites the stored task with the same id, keeping its position.
func (r *implRepository) Save(ctx context.Context, t model.Task) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[t.ID]
	if !ok {
		return false
	}
	r.tasks[i] = t.Clone()
	r.revision++
	return true
}

// Remove deletes the task with id and returns it.
func (r *implRepository) Remove(ctx context.Context, id string) (model.Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return model.Task{}, false
	}
	removed := r.tasks[i]

	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.tasks); j++ {
		r.index[r.tasks[j].ID] = j
	}
	r.revision++
	return removed, true
}

// List returns a deep copy of the collection in insertion order.
func (r *implRepository) List(ctx context.Context) []model.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, len(r.tasks))
	for i, t := range r.tasks {
		out[i] = t.Clone()
	}
	return out
}

func (r *implRepository) Revision() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.revision
}
