package usecase

import (
	"context"

	"sales-task-tracker/internal/model"
)

// Load fetches the seed, normalizes it and replaces the collection. Only the
// first call does anything; later calls return nil immediately. The fetch
// runs without holding the mutation lock.
func (uc *implUseCase) Load(ctx context.Context) error {
	uc.mu.Lock()
	if uc.state != model.LoadStateUninitialized {
		uc.mu.Unlock()
		uc.l.Debugf(ctx, "uc.Load: already %s, skipping", uc.state)
		return nil
	}
	uc.state = model.LoadStateLoading
	uc.mu.Unlock()

	tasks, err := uc.fetch(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err != nil {
		uc.l.Errorf(ctx, "uc.Load: %v", err)
		uc.state = model.LoadStateFailed
		uc.loadErr = err.Error()

		tasks = nil
		if uc.cfg.FallbackOnError {
			tasks = uc.generate(ctx)
		}
		uc.repo.Replace(ctx, tasks)
		return err
	}

	if len(tasks) == 0 {
		tasks = uc.generate(ctx)
	}
	uc.repo.Replace(ctx, tasks)
	uc.state = model.LoadStateReady
	uc.l.Infof(ctx, "uc.Load: loaded %d tasks", len(tasks))
	return nil
}

func (uc *implUseCase) fetch(ctx context.Context) ([]model.Task, error) {
	if uc.source == nil {
		uc.l.Infof(ctx, "uc.Load: no task source configured")
		return nil, nil
	}
	raw, err := uc.source.LoadTasks(ctx)
	if err != nil {
		return nil, err
	}
	return uc.normalizer.Normalize(raw), nil
}

func (uc *implUseCase) generate(ctx context.Context) []model.Task {
	if uc.generator == nil || uc.cfg.FallbackCount <= 0 {
		return nil
	}
	uc.l.Infof(ctx, "uc.Load: seeding %d generated tasks", uc.cfg.FallbackCount)
	return uc.generator.Generate(uc.cfg.FallbackCount)
}
