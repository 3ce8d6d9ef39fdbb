package model_test

import (
	"math"
	"testing"
	"time"

	"sales-task-tracker/internal/model"
)

func TestParseStatus(t *testing.T) {
	cases := map[string]model.Status{
		"Todo":        model.StatusTodo,
		"in progress": model.StatusInProgress,
		"InProgress":  model.StatusInProgress,
		"in_progress": model.StatusInProgress,
		" DONE ":      model.StatusDone,
	}
	for in, want := range cases {
		got, ok := model.ParseStatus(in)
		if !ok || got != want {
			t.Errorf("ParseStatus(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	if _, ok := model.ParseStatus("blocked"); ok {
		t.Errorf("expected unknown status to fail")
	}
}

func TestCoercions(t *testing.T) {
	if got := model.CoerceTitle("   "); got != model.DefaultTitle {
		t.Errorf("expected default title, got %q", got)
	}
	if got := model.CoerceRevenue(math.Inf(1)); got != 0 {
		t.Errorf("expected 0 for +Inf revenue, got %v", got)
	}
	if got := model.CoerceRevenue(-25); got != -25 {
		t.Errorf("expected negative finite revenue to pass through, got %v", got)
	}
	for _, v := range []float64{0, -3, math.NaN()} {
		if got := model.CoerceTimeTaken(v); got != 1 {
			t.Errorf("CoerceTimeTaken(%v) = %v, want 1", v, got)
		}
	}
	if got := model.CoercePriority("urgent"); got != model.PriorityMedium {
		t.Errorf("expected Medium, got %q", got)
	}
	if got := model.CoerceStatus(""); got != model.StatusTodo {
		t.Errorf("expected Todo, got %q", got)
	}
}

func TestClone(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	orig := model.Task{ID: "a", CompletedAt: &at}
	cp := orig.Clone()
	*cp.CompletedAt = cp.CompletedAt.Add(time.Hour)
	if !orig.CompletedAt.Equal(at) {
		t.Errorf("clone shares CompletedAt with original")
	}
}
