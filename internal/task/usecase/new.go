package usecase

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"sales-task-tracker/internal/model"
	"sales-task-tracker/internal/normalizer"
	"sales-task-tracker/internal/task"
	"sales-task-tracker/internal/task/repository"
	"sales-task-tracker/pkg/clock"
	"sales-task-tracker/pkg/idgen"
	pkgLog "sales-task-tracker/pkg/log"
)

const defaultViewCacheSize = 8

// Config holds the store's tunables.
type Config struct {
	FallbackCount   int  // tasks generated when the seed normalizes to nothing
	FallbackOnError bool // also generate tasks after a failed load
	ViewCacheSize   int
}

// views is the derived state for one repository revision.
type views struct {
	ranked  []model.DerivedTask
	metrics model.Metrics
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	source     task.Source
	generator  task.Generator
	normalizer *normalizer.Normalizer
	clock      clock.Clock
	ids        idgen.Generator
	cfg        Config

	// mu serializes mutations so each one runs to completion before the next.
	mu       sync.Mutex
	state    model.LoadState
	loadErr  string
	viewByRv *lru.Cache[uint64, views]
}

// New creates the task store. source and generator may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	source task.Source,
	generator task.Generator,
	c clock.Clock,
	ids idgen.Generator,
	cfg Config,
) *implUseCase {
	if cfg.ViewCacheSize <= 0 {
		cfg.ViewCacheSize = defaultViewCacheSize
	}
	cache, err := lru.New[uint64, views](cfg.ViewCacheSize)
	if err != nil {
		panic("task/usecase: " + err.Error())
	}

	return &implUseCase{
		l:          l,
		repo:       repo,
		source:     source,
		generator:  generator,
		normalizer: normalizer.New(c, ids),
		clock:      c,
		ids:        ids,
		cfg:        cfg,
		state:      model.LoadStateUninitialized,
		viewByRv:   cache,
	}
}

var _ task.UseCase = (*implUseCase)(nil)
