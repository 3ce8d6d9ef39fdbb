package ranking

import (
	"slices"
	"strings"

	"sales-task-tracker/internal/model"
)

// Rank returns a new slice sorted highest-value first. The order is total:
// ROI descending, then priority weight descending, then newest createdAt,
// then id ascending. Ranking an already ranked slice leaves it unchanged.
func Rank(tasks []model.DerivedTask) []model.DerivedTask {
	ranked := slices.Clone(tasks)
	slices.SortStableFunc(ranked, Compare)
	return ranked
}

// Compare orders a before b when a ranks higher.
func Compare(a, b model.DerivedTask) int {
	if a.ROI != b.ROI {
		if a.ROI > b.ROI {
			return -1
		}
		return 1
	}
	if a.PriorityWeight != b.PriorityWeight {
		return b.PriorityWeight - a.PriorityWeight
	}
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// Filter narrows a ranked list without reordering it.
type Filter struct {
	Status   model.Status
	Priority model.Priority
	Query    string // case-insensitive title substring
}

// Apply keeps the tasks matching every non-empty field of f.
func (f Filter) Apply(tasks []model.DerivedTask) []model.DerivedTask {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]model.DerivedTask, 0, len(tasks))
	for _, t := range tasks {
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(t.Title), query) {
			continue
		}
		out = append(out, t)
	}
	return out
}
