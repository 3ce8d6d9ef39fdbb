package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"sales-task-tracker/internal/middleware"
	"sales-task-tracker/internal/model"
	"sales-task-tracker/internal/task"
	taskhttp "sales-task-tracker/internal/task/delivery/http"
	"sales-task-tracker/internal/task/repository/memory"
	"sales-task-tracker/internal/task/usecase"
	"sales-task-tracker/pkg/clock"
	"sales-task-tracker/pkg/idgen"
	"sales-task-tracker/pkg/log"
)

type staticSource struct{ payload any }

func (s staticSource) LoadTasks(ctx context.Context) (any, error) { return s.payload, nil }

// failingUseCase fails every read it overrides.
type failingUseCase struct {
	task.UseCase
}

func (failingUseCase) State(ctx context.Context) (task.StateOutput, error) {
	return task.StateOutput{}, errors.New("boom")
}

var seed = []any{
	map[string]any{"id": "a", "title": "Alpha", "revenue": 1000.0, "timeTaken": 2.0, "priority": "High", "status": "Todo"},
	map[string]any{"id": "b", "title": "Beta", "revenue": 300.0, "timeTaken": 3.0, "priority": "Low", "status": "Done"},
}

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	uc := usecase.New(l, memory.New(l), staticSource{payload: seed}, nil,
		clock.Fixed{T: now}, &idgen.Sequence{Prefix: "t"}, usecase.Config{})
	if err := uc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	return newEngine(taskhttp.New(l, uc))
}

func newEngine(h taskhttp.Handler) *gin.Engine {
	r := gin.New()
	taskhttp.RegisterRoutes(r.Group("/api/v1"), h, middleware.New(log.NewNop(), middleware.Config{}))
	return r
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope[T any] struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      T      `json:"data"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var out envelope[T]
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

type taskBody struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Revenue     float64    `json:"revenue"`
	TimeTaken   float64    `json:"timeTaken"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt"`
	ROI         float64    `json:"roi"`
}

type taskEnv struct {
	Task taskBody `json:"task"`
}

func TestState(t *testing.T) {
	r := setup(t)

	w := do(r, http.MethodGet, "/api/v1/tasks", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	out := decode[struct {
		State   string     `json:"state"`
		Loading bool       `json:"loading"`
		Tasks   []taskBody `json:"tasks"`
	}](t, w)

	if out.Data.State != string(model.LoadStateReady) || out.Data.Loading {
		t.Errorf("unexpected state %q loading=%v", out.Data.State, out.Data.Loading)
	}
	if len(out.Data.Tasks) != 2 || out.Data.Tasks[0].ID != "a" {
		t.Errorf("unexpected tasks: %+v", out.Data.Tasks)
	}
}

func TestRanked(t *testing.T) {
	r := setup(t)

	t.Run("Orders by ROI", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/tasks/ranked", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		out := decode[struct {
			Tasks []taskBody `json:"tasks"`
			Count int        `json:"count"`
		}](t, w)
		if out.Data.Count != 2 || out.Data.Tasks[0].ID != "a" || out.Data.Tasks[0].ROI != 500 {
			t.Errorf("unexpected ranking: %+v", out.Data)
		}
	})

	t.Run("Filters by status", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/tasks/ranked?status=done", nil)
		out := decode[struct {
			Tasks []taskBody `json:"tasks"`
		}](t, w)
		if len(out.Data.Tasks) != 1 || out.Data.Tasks[0].ID != "b" {
			t.Errorf("unexpected filter result: %+v", out.Data.Tasks)
		}
	})

	t.Run("Rejects unknown priority", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/tasks/ranked?priority=urgent", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestMetrics(t *testing.T) {
	r := setup(t)

	w := do(r, http.MethodGet, "/api/v1/tasks/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	out := decode[struct {
		TotalRevenue     float64        `json:"totalRevenue"`
		DoneCount        int            `json:"doneCount"`
		PerformanceGrade string         `json:"performanceGrade"`
		StatusBreakdown  map[string]int `json:"statusBreakdown"`
	}](t, w)

	if out.Data.TotalRevenue != 1300 || out.Data.DoneCount != 1 {
		t.Errorf("unexpected metrics: %+v", out.Data)
	}
	// ROIs 500 and 100 average to 300.
	if out.Data.PerformanceGrade != string(model.GradeGood) {
		t.Errorf("expected Good, got %q", out.Data.PerformanceGrade)
	}
	if out.Data.StatusBreakdown["Done"] != 1 || out.Data.StatusBreakdown["Todo"] != 1 {
		t.Errorf("unexpected breakdown: %v", out.Data.StatusBreakdown)
	}
}

func TestCreate(t *testing.T) {
	r := setup(t)

	t.Run("Coerces invalid fields", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/tasks", map[string]any{
			"title":     "  ",
			"revenue":   -5,
			"timeTaken": 0,
			"priority":  "urgent",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		got := decode[taskEnv](t, w).Data.Task
		if got.Title != model.DefaultTitle || got.Revenue != -5 || got.TimeTaken != model.DefaultTimeTaken {
			t.Errorf("expected defaults, got %+v", got)
		}
		if got.Priority != string(model.PriorityMedium) || got.Status != string(model.StatusTodo) {
			t.Errorf("expected Medium/Todo, got %s/%s", got.Priority, got.Status)
		}
		if got.ID == "" {
			t.Error("expected a generated id")
		}
	})

	t.Run("Wrong-typed fields take defaults", func(t *testing.T) {
		longTitle := strings.Repeat("x", 300)
		w := do(r, http.MethodPost, "/api/v1/tasks", map[string]any{
			"title":     longTitle,
			"revenue":   "100",
			"timeTaken": "2",
			"status":    5,
			"priority":  true,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		got := decode[taskEnv](t, w).Data.Task
		if got.Revenue != 0 || got.TimeTaken != model.DefaultTimeTaken {
			t.Errorf("expected numeric defaults, got revenue=%v timeTaken=%v", got.Revenue, got.TimeTaken)
		}
		if got.Status != string(model.StatusTodo) || got.Priority != string(model.PriorityMedium) {
			t.Errorf("expected Todo/Medium, got %s/%s", got.Status, got.Priority)
		}
		if got.Title != longTitle {
			t.Errorf("expected the full title to be kept, got %d chars", len(got.Title))
		}
	})

	t.Run("Non-object body is an empty record", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/tasks", []int{1, 2})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if got := decode[taskEnv](t, w).Data.Task; got.Title != model.DefaultTitle {
			t.Errorf("expected default title, got %q", got.Title)
		}
	})

	t.Run("Malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestUpdate(t *testing.T) {
	r := setup(t)

	t.Run("Moving to Done stamps completedAt", func(t *testing.T) {
		w := do(r, http.MethodPatch, "/api/v1/tasks/a", map[string]any{"status": "Done"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		got := decode[taskEnv](t, w).Data.Task
		if got.Status != string(model.StatusDone) || got.CompletedAt == nil {
			t.Errorf("expected Done with completedAt, got %+v", got)
		}
	})

	t.Run("Wrong-typed status resets to Todo", func(t *testing.T) {
		w := do(r, http.MethodPatch, "/api/v1/tasks/b", map[string]any{"status": 5})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		got := decode[taskEnv](t, w).Data.Task
		if got.Status != string(model.StatusTodo) {
			t.Errorf("expected Todo, got %s", got.Status)
		}
		if got.CompletedAt == nil {
			t.Errorf("leaving Done must keep completedAt")
		}
	})

	t.Run("Null fields are left unchanged", func(t *testing.T) {
		w := do(r, http.MethodPatch, "/api/v1/tasks/a", map[string]any{"title": nil, "revenue": "lots"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		got := decode[taskEnv](t, w).Data.Task
		if got.Title != "Alpha" || got.Revenue != 0 {
			t.Errorf("expected title kept and revenue reset, got %q/%v", got.Title, got.Revenue)
		}
	})

	t.Run("Unknown id", func(t *testing.T) {
		w := do(r, http.MethodPatch, "/api/v1/tasks/missing", map[string]any{"title": "x"})
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestDeleteAndUndo(t *testing.T) {
	r := setup(t)

	if w := do(r, http.MethodPost, "/api/v1/tasks/undo", nil); w.Code != http.StatusNotFound {
		t.Fatalf("undo with nothing deleted: expected 404, got %d", w.Code)
	}

	if w := do(r, http.MethodDelete, "/api/v1/tasks/a", nil); w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}
	if w := do(r, http.MethodDelete, "/api/v1/tasks/a", nil); w.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", w.Code)
	}

	w := do(r, http.MethodPost, "/api/v1/tasks/undo", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("undo: expected 200, got %d", w.Code)
	}
	if got := decode[taskEnv](t, w).Data.Task; got.ID != "a" {
		t.Errorf("expected a restored, got %q", got.ID)
	}

	// Restored task goes to the end.
	state := decode[struct {
		Tasks []taskBody `json:"tasks"`
	}](t, do(r, http.MethodGet, "/api/v1/tasks", nil))
	if n := len(state.Data.Tasks); n != 2 || state.Data.Tasks[n-1].ID != "a" {
		t.Errorf("unexpected order after undo: %+v", state.Data.Tasks)
	}

	t.Run("Dismiss", func(t *testing.T) {
		do(r, http.MethodDelete, "/api/v1/tasks/b", nil)
		if w := do(r, http.MethodDelete, "/api/v1/tasks/undo", nil); w.Code != http.StatusOK {
			t.Fatalf("dismiss: expected 200, got %d", w.Code)
		}
		if w := do(r, http.MethodPost, "/api/v1/tasks/undo", nil); w.Code != http.StatusNotFound {
			t.Errorf("undo after dismiss: expected 404, got %d", w.Code)
		}
	})
}

func TestUnexpectedError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newEngine(taskhttp.New(log.NewNop(), failingUseCase{}))

	w := do(r, http.MethodGet, "/api/v1/tasks", nil)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

func TestExtremeValuesStillRender(t *testing.T) {
	r := setup(t)

	for i := 0; i < 2; i++ {
		if w := do(r, http.MethodPost, "/api/v1/tasks", map[string]any{"revenue": 1e308, "timeTaken": 0.5}); w.Code != http.StatusOK {
			t.Fatalf("create: expected 200, got %d", w.Code)
		}
	}

	for _, path := range []string{"/api/v1/tasks/ranked", "/api/v1/tasks/metrics"} {
		w := do(r, http.MethodGet, path, nil)
		if w.Code != http.StatusOK || w.Body.Len() == 0 {
			t.Errorf("%s: expected a 200 body, got %d with %d bytes", path, w.Code, w.Body.Len())
		}
	}
}
