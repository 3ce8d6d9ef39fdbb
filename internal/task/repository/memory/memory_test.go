package memory_test

import (
	"context"
	"testing"
	"time"

	"sales-task-tracker/internal/model"
	"sales-task-tracker/internal/task/repository/memory"
	"sales-task-tracker/pkg/log"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Replace and List keep order", func(t *testing.T) {
		repo := memory.New(log.NewNop())
		repo.Replace(ctx, []model.Task{{ID: "a"}, {ID: "b"}, {ID: "c"}})

		got := repo.List(ctx)
		if len(got) != 3 || got[0].ID != "a" || got[2].ID != "c" {
			t.Errorf("unexpected list %+v", got)
		}
		if repo.Revision() != 1 {
			t.Errorf("expected revision 1, got %d", repo.Revision())
		}
	})

	t.Run("Remove reindexes", func(t *testing.T) {
		repo := memory.New(log.NewNop())
		repo.Replace(ctx, []model.Task{{ID: "a"}, {ID: "b"}, {ID: "c"}})

		removed, ok := repo.Remove(ctx, "a")
		if !ok || removed.ID != "a" {
			t.Fatalf("expected to remove a, got %+v %v", removed, ok)
		}
		if _, ok := repo.Remove(ctx, "missing"); ok {
			t.Errorf("expected missing id to report false")
		}
		got, ok := repo.Get(ctx, "c")
		if !ok || got.ID != "c" {
			t.Errorf("expected to find c after reindex, got %+v", got)
		}
		if !repo.Save(ctx, model.Task{ID: "c", Title: "renamed"}) {
			t.Errorf("expected save to succeed")
		}
		list := repo.List(ctx)
		if len(list) != 2 || list[1].Title != "renamed" {
			t.Errorf("unexpected list after save %+v", list)
		}
	})

	t.Run("Save unknown id", func(t *testing.T) {
		repo := memory.New(log.NewNop())
		before := repo.Revision()
		if repo.Save(ctx, model.Task{ID: "ghost"}) {
			t.Errorf("expected save of unknown id to fail")
		}
		if repo.Revision() != before {
			t.Errorf("revision changed on no-op save")
		}
	})

	t.Run("Stored tasks are isolated from callers", func(t *testing.T) {
		repo := memory.New(log.NewNop())
		task := model.Task{ID: "a", CompletedAt: &at}
		repo.Append(ctx, task)

		*task.CompletedAt = at.Add(time.Hour)
		got, _ := repo.Get(ctx, "a")
		if !got.CompletedAt.Equal(at) {
			t.Errorf("repository shares memory with caller")
		}

		list := repo.List(ctx)
		list[0].Title = "mutated"
		got, _ = repo.Get(ctx, "a")
		if got.Title == "mutated" {
			t.Errorf("List returned shared memory")
		}
	})

	t.Run("Undo slot holds one task", func(t *testing.T) {
		repo := memory.New(log.NewNop())
		if _, ok := repo.LastDeleted(ctx); ok {
			t.Errorf("expected empty slot")
		}
		repo.SetLastDeleted(ctx, model.Task{ID: "a"})
		repo.SetLastDeleted(ctx, model.Task{ID: "b"})
		got, ok := repo.LastDeleted(ctx)
		if !ok || got.ID != "b" {
			t.Errorf("expected b in slot, got %+v", got)
		}
		repo.ClearLastDeleted(ctx)
		if _, ok := repo.LastDeleted(ctx); ok {
			t.Errorf("expected slot cleared")
		}
	})
}
