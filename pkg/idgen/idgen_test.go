package idgen_test

import (
	"testing"

	"github.com/google/uuid"

	"sales-task-tracker/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	g := idgen.NewUUID()
	a, b := g.NewID(), g.NewID()
	if a == b {
		t.Errorf("expected distinct ids, got %s twice", a)
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("expected a valid uuid, got %q: %v", a, err)
	}
}

func TestSequence(t *testing.T) {
	s := &idgen.Sequence{Prefix: "task"}
	if got := s.NewID(); got != "task-1" {
		t.Errorf("expected task-1, got %s", got)
	}
	if got := s.NewID(); got != "task-2" {
		t.Errorf("expected task-2, got %s", got)
	}
}
