package usecase_test

import (
	"context"
	"sync"
	"time"

	"sales-task-tracker/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// stepClock returns t and then moves it forward by step.
type stepClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}

type mockSource struct {
	payload any
	err     error
	calls   int
	// block, when set, holds LoadTasks until it is closed.
	block chan struct{}
	mu    sync.Mutex
}

func (m *mockSource) LoadTasks(ctx context.Context) (any, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.block != nil {
		<-m.block
	}
	return m.payload, m.err
}

func (m *mockSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockGenerator struct {
	asked int
}

func (m *mockGenerator) Generate(n int) []model.Task {
	m.asked = n
	out := make([]model.Task, n)
	for i := range out {
		out[i] = model.Task{
			ID:        "gen-" + string(rune('a'+i)),
			Title:     "Generated",
			Revenue:   100,
			TimeTaken: 1,
			Priority:  model.PriorityMedium,
			Status:    model.StatusTodo,
		}
	}
	return out
}
