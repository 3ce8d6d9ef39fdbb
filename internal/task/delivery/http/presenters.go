package http

import (
	"time"

	"sales-task-tracker/internal/model"
	"sales-task-tracker/internal/normalizer"
	"sales-task-tracker/internal/task"
)

// --- Request DTOs ---

// createReq is the raw create body. Fields are read loosely: a value of the
// wrong type takes its default instead of failing the request.
type createReq struct {
	fields map[string]any
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.AddInput {
	f := r.fields
	return task.AddInput{
		ID:        normalizer.ID(f["id"]),
		Title:     normalizer.Title(f["title"]),
		Revenue:   normalizer.Revenue(f["revenue"]),
		TimeTaken: normalizer.TimeTaken(f["timeTaken"]),
		Priority:  normalizer.Priority(f["priority"]),
		Status:    normalizer.Status(f["status"]),
		Notes:     normalizer.Notes(f["notes"]),
	}
}

// ---

// updateReq is the raw patch body. Absent or null fields are left unchanged;
// present fields of the wrong type reset to their default.
type updateReq struct {
	ID     string // populated from URI param
	fields map[string]any
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() task.UpdateInput {
	var p task.TaskPatch
	if v, ok := r.field("title"); ok {
		p.Title = ptr(normalizer.Title(v))
	}
	if v, ok := r.field("revenue"); ok {
		p.Revenue = ptr(normalizer.Revenue(v))
	}
	if v, ok := r.field("timeTaken"); ok {
		p.TimeTaken = ptr(normalizer.TimeTaken(v))
	}
	if v, ok := r.field("priority"); ok {
		p.Priority = ptr(normalizer.Priority(v))
	}
	if v, ok := r.field("status"); ok {
		p.Status = ptr(normalizer.Status(v))
	}
	if v, ok := r.field("notes"); ok {
		p.Notes = ptr(normalizer.Notes(v))
	}
	if v, ok := r.field("completedAt"); ok {
		if at, ok := normalizer.Time(v); ok {
			p.CompletedAt = &at
		}
	}
	return task.UpdateInput{ID: r.ID, Patch: p}
}

func (r updateReq) field(key string) (any, bool) {
	v, ok := r.fields[key]
	return v, ok && v != nil
}

func ptr[T any](v T) *T { return &v }

// ---

type rankedReq struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Query    string `form:"q"`
}

func (r rankedReq) validate() error {
	if r.Status != "" {
		if _, ok := model.ParseStatus(r.Status); !ok {
			return errInvalidStatus
		}
	}
	if r.Priority != "" {
		if _, ok := model.ParsePriority(r.Priority); !ok {
			return errInvalidPriority
		}
	}
	return nil
}

func (r rankedReq) toInput() task.RankedInput {
	in := task.RankedInput{Query: r.Query}
	if s, ok := model.ParseStatus(r.Status); ok {
		in.Status = s
	}
	if p, ok := model.ParsePriority(r.Priority); ok {
		in.Priority = p
	}
	return in
}

// --- Response DTOs ---

type taskResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Revenue     float64    `json:"revenue"`
	TimeTaken   float64    `json:"timeTaken"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Revenue:     t.Revenue,
		TimeTaken:   t.TimeTaken,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
	}
}

type derivedTaskResp struct {
	taskResp
	ROI            float64 `json:"roi"`
	RevenuePerHour float64 `json:"revenuePerHour"`
	PriorityWeight int     `json:"priorityWeight"`
	IsHighValue    bool    `json:"isHighValue"`
}

type stateResp struct {
	State       string     `json:"state"`
	Loading     bool       `json:"loading"`
	Error       string     `json:"error,omitempty"`
	Tasks       []taskResp `json:"tasks"`
	LastDeleted *taskResp  `json:"lastDeleted"`
}

func (h *handler) newStateResp(out task.StateOutput) stateResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	resp := stateResp{
		State:   string(out.State),
		Loading: out.Loading,
		Error:   out.Error,
		Tasks:   tasks,
	}
	if out.LastDeleted != nil {
		last := newTaskResp(*out.LastDeleted)
		resp.LastDeleted = &last
	}
	return resp
}

type rankedResp struct {
	Tasks []derivedTaskResp `json:"tasks"`
	Count int               `json:"count"`
}

func (h *handler) newRankedResp(out task.RankedOutput) rankedResp {
	tasks := make([]derivedTaskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = derivedTaskResp{
			taskResp:       newTaskResp(t.Task),
			ROI:            t.ROI,
			RevenuePerHour: t.RevenuePerHour,
			PriorityWeight: t.PriorityWeight,
			IsHighValue:    t.IsHighValue,
		}
	}
	return rankedResp{Tasks: tasks, Count: out.Count}
}

type metricsResp struct {
	TaskCount         int            `json:"taskCount"`
	DoneCount         int            `json:"doneCount"`
	TotalRevenue      float64        `json:"totalRevenue"`
	TotalTimeTaken    float64        `json:"totalTimeTaken"`
	TimeEfficiencyPct float64        `json:"timeEfficiencyPct"`
	RevenuePerHour    float64        `json:"revenuePerHour"`
	AverageROI        float64        `json:"averageROI"`
	PerformanceGrade  string         `json:"performanceGrade"`
	StatusBreakdown   map[string]int `json:"statusBreakdown"`
}

func (h *handler) newMetricsResp(m model.Metrics) metricsResp {
	breakdown := make(map[string]int, len(m.StatusBreakdown))
	for s, n := range m.StatusBreakdown {
		breakdown[string(s)] = n
	}
	return metricsResp{
		TaskCount:         m.TaskCount,
		DoneCount:         m.DoneCount,
		TotalRevenue:      m.TotalRevenue,
		TotalTimeTaken:    m.TotalTimeTaken,
		TimeEfficiencyPct: m.TimeEfficiencyPct,
		RevenuePerHour:    m.RevenuePerHour,
		AverageROI:        m.AverageROI,
		PerformanceGrade:  string(m.PerformanceGrade),
		StatusBreakdown:   breakdown,
	}
}

type taskEnvelope struct {
	Task taskResp `json:"task"`
}

func (h *handler) newTaskEnvelope(t model.Task) taskEnvelope {
	return taskEnvelope{Task: newTaskResp(t)}
}
