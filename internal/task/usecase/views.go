package usecase

import (
	"context"
	"maps"

	"sales-task-tracker/internal/metrics"
	"sales-task-tracker/internal/model"
	"sales-task-tracker/internal/ranking"
	"sales-task-tracker/internal/task"
)

// State returns a snapshot of the store for consumers.
func (uc *implUseCase) State(ctx context.Context) (task.StateOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := task.StateOutput{
		State:   uc.state,
		Loading: !uc.state.Settled(),
		Error:   uc.loadErr,
		Tasks:   uc.repo.List(ctx),
	}
	if t, ok := uc.repo.LastDeleted(ctx); ok {
		out.LastDeleted = &t
	}
	return out, nil
}

// Ranked returns the derived tasks in rank order, optionally filtered.
// Until the initial load settles it returns an empty list.
func (uc *implUseCase) Ranked(ctx context.Context, input task.RankedInput) (task.RankedOutput, error) {
	v, ok := uc.currentViews(ctx)
	if !ok {
		return task.RankedOutput{Tasks: []model.DerivedTask{}}, nil
	}

	filtered := ranking.Filter{
		Status:   input.Status,
		Priority: input.Priority,
		Query:    input.Query,
	}.Apply(v.ranked)
	// v.ranked is cached; callers get their own copies.
	for i := range filtered {
		filtered[i] = filtered[i].Clone()
	}

	return task.RankedOutput{Tasks: filtered, Count: len(filtered)}, nil
}

// Metrics returns the aggregate metrics, or the neutral default until the
// initial load settles.
func (uc *implUseCase) Metrics(ctx context.Context) (model.Metrics, error) {
	v, ok := uc.currentViews(ctx)
	if !ok {
		return metrics.Neutral(), nil
	}
	m := v.metrics
	m.StatusBreakdown = maps.Clone(m.StatusBreakdown)
	return m, nil
}

// currentViews returns the derived views for the current revision, computing
// them on the first read after a change.
func (uc *implUseCase) currentViews(ctx context.Context) (views, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.state.Settled() {
		return views{}, false
	}

	rev := uc.repo.Revision()
	if v, ok := uc.viewByRv.Get(rev); ok {
		return v, true
	}

	tasks := uc.repo.List(ctx)
	v := views{
		ranked:  ranking.Rank(metrics.DeriveAll(tasks)),
		metrics: metrics.Compute(tasks),
	}
	uc.viewByRv.Add(rev, v)
	uc.l.Debugf(ctx, "uc.views: recomputed %d tasks at revision %d", len(tasks), rev)
	return v, true
}
