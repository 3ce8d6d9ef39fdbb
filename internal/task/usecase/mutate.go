package usecase

import (
	"context"
	"strings"

	"sales-task-tracker/internal/model"
	"sales-task-tracker/internal/task"
)

// Add appends a new task. createdAt is now; completedAt is now only when the
// task starts out Done.
func (uc *implUseCase) Add(ctx context.Context, input task.AddInput) (task.AddOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.clock.Now()
	t := model.Task{
		ID:        uc.freeID(ctx, input.ID),
		Title:     model.CoerceTitle(input.Title),
		Revenue:   model.CoerceRevenue(input.Revenue),
		TimeTaken: model.CoerceTimeTaken(input.TimeTaken),
		Priority:  model.CoercePriority(input.Priority),
		Status:    model.CoerceStatus(input.Status),
		Notes:     input.Notes,
		CreatedAt: now,
	}
	if t.Status == model.StatusDone {
		t.CompletedAt = &now
	}

	uc.repo.Append(ctx, t)
	uc.l.Debugf(ctx, "uc.Add: %s %q", t.ID, t.Title)
	return task.AddOutput{Task: t}, nil
}

// Update applies a patch. Entering Done from any other status stamps
// completedAt with the current time, overriding a completedAt in the patch.
// Leaving Done keeps completedAt. Unknown ids are a no-op.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.UpdateOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	existing, ok := uc.repo.Get(ctx, input.ID)
	if !ok {
		uc.l.Debugf(ctx, "uc.Update: %s not found", input.ID)
		return task.UpdateOutput{}, nil
	}

	updated := applyPatch(existing, input.Patch)
	if existing.Status != model.StatusDone && updated.Status == model.StatusDone {
		now := uc.clock.Now()
		updated.CompletedAt = &now
	}

	uc.repo.Save(ctx, updated)
	return task.UpdateOutput{Task: updated, Found: true}, nil
}

// Delete removes the task and parks it in the undo slot, replacing whatever
// was there. Unknown ids are a no-op and leave the slot untouched.
func (uc *implUseCase) Delete(ctx context.Context, id string) (task.DeleteOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	removed, ok := uc.repo.Remove(ctx, id)
	if !ok {
		uc.l.Debugf(ctx, "uc.Delete: %s not found", id)
		return task.DeleteOutput{}, nil
	}
	uc.repo.SetLastDeleted(ctx, removed)
	return task.DeleteOutput{Deleted: true}, nil
}

// UndoDelete re-appends the last deleted task at the end of the collection
// and empties the slot.
func (uc *implUseCase) UndoDelete(ctx context.Context) (task.UndoOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	t, ok := uc.repo.LastDeleted(ctx)
	if !ok {
		return task.UndoOutput{}, nil
	}
	if _, taken := uc.repo.Get(ctx, t.ID); taken {
		old := t.ID
		t.ID = uc.ids.NewID()
		uc.l.Warnf(ctx, "uc.UndoDelete: id %s reused since delete, restoring as %s", old, t.ID)
	}

	uc.repo.Append(ctx, t)
	uc.repo.ClearLastDeleted(ctx)
	return task.UndoOutput{Task: t, Restored: true}, nil
}

// ClearLastDeleted drops the pending undo without restoring it.
func (uc *implUseCase) ClearLastDeleted(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.repo.ClearLastDeleted(ctx)
	return nil
}

// freeID returns id when it is non-blank and unused, otherwise a new one.
func (uc *implUseCase) freeID(ctx context.Context, id string) string {
	if strings.TrimSpace(id) == "" {
		return uc.ids.NewID()
	}
	if _, taken := uc.repo.Get(ctx, id); taken {
		uc.l.Warnf(ctx, "uc.Add: id %s already in use, generating a new one", id)
		return uc.ids.NewID()
	}
	return id
}

// applyPatch overlays p on t and re-applies the field coercions.
func applyPatch(t model.Task, p task.TaskPatch) model.Task {
	if p.Title != nil {
		t.Title = model.CoerceTitle(*p.Title)
	}
	if p.Revenue != nil {
		t.Revenue = model.CoerceRevenue(*p.Revenue)
	}
	if p.TimeTaken != nil {
		t.TimeTaken = *p.TimeTaken
	}
	if p.Priority != nil {
		t.Priority = model.CoercePriority(*p.Priority)
	}
	if p.Status != nil {
		t.Status = model.CoerceStatus(*p.Status)
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.CompletedAt != nil {
		at := *p.CompletedAt
		t.CompletedAt = &at
	}
	t.TimeTaken = model.CoerceTimeTaken(t.TimeTaken)
	return t
}
