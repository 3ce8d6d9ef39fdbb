package memory

import (
	"context"

	"sales-task-tracker/internal/model"
)

// SetLastDeleted overwrites the undo slot with a copy of t.
func (r *implRepository) SetLastDeleted(ctx context.Context, t model.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastDeleted != nil {
		r.l.Debugf(ctx, "%s: discarding pending undo of %s", r.dsn("SetLastDeleted"), r.lastDeleted.ID)
	}
	cp := t.Clone()
	r.lastDeleted = &cp
}

func (r *implRepository) LastDeleted(ctx context.Context) (model.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.lastDeleted == nil {
		return model.Task{}, false
	}
	return r.lastDeleted.Clone(), true
}

func (r *implRepository) ClearLastDeleted(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastDeleted = nil
}
