package seed

import (
	"math"
	"math/rand/v2"
	"time"

	"sales-task-tracker/internal/model"
	"sales-task-tracker/pkg/clock"
	"sales-task-tracker/pkg/idgen"
)

var (
	activities = []string{"Follow up with", "Demo for", "Proposal to", "Renewal call with", "Discovery call with", "Contract review for", "Upsell pitch to", "Onboarding for"}
	accounts   = []string{"Acme Corp", "Globex", "Initech", "Umbrella", "Stark Industries", "Wayne Enterprises", "Hooli", "Soylent", "Vandelay", "Wonka Foods"}
	priorities = []model.Priority{model.PriorityLow, model.PriorityMedium, model.PriorityHigh}
	statuses   = []model.Status{model.StatusTodo, model.StatusInProgress, model.StatusDone}
)

// Generator produces plausible synthetic sales tasks.
type Generator struct {
	clock clock.Clock
	ids   idgen.Generator
	rnd   *rand.Rand
}

// NewGenerator creates a Generator. The same seed and clock give the same
// tasks apart from ids.
func NewGenerator(c clock.Clock, ids idgen.Generator, seed uint64) *Generator {
	return &Generator{
		clock: c,
		ids:   ids,
		rnd:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Generate returns n tasks, newest first. n <= 0 yields none.
func (g *Generator) Generate(n int) []model.Task {
	if n <= 0 {
		return []model.Task{}
	}
	now := g.clock.Now()
	tasks := make([]model.Task, 0, n)

	for i := 0; i < n; i++ {
		createdAt := now.Add(-time.Duration(i+1)*24*time.Hour - time.Duration(g.rnd.IntN(12))*time.Hour)
		t := model.Task{
			ID:        g.ids.NewID(),
			Title:     activities[g.rnd.IntN(len(activities))] + " " + accounts[g.rnd.IntN(len(accounts))],
			Revenue:   math.Round(g.rnd.Float64()*5000*100) / 100,
			TimeTaken: float64(1+g.rnd.IntN(40)) / 2,
			Priority:  priorities[g.rnd.IntN(len(priorities))],
			Status:    statuses[g.rnd.IntN(len(statuses))],
			CreatedAt: createdAt,
		}
		if t.Status == model.StatusDone {
			at := createdAt.Add(time.Duration(1+g.rnd.IntN(48)) * time.Hour)
			t.CompletedAt = &at
		}
		tasks = append(tasks, t)
	}
	return tasks
}
