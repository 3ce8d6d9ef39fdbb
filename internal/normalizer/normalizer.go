// Package normalizer reconciles loosely-typed task records into valid model.Task values.
//
// The normalizer never rejects a record. Every field that is missing, of the
// wrong type, or out of range is replaced with its documented default:
//
//	id          generated when absent, blank, or already used earlier in the batch
//	title       "Untitled Task" when absent or blank
//	revenue     0 when not a finite number
//	timeTaken   1 when not a positive finite number
//	priority    Medium when absent or unknown
//	status      Todo when absent or unknown
//	createdAt   now - (idx+1) days when absent or unparseable
//	completedAt explicit value, else createdAt + 1 day for Done tasks
package normalizer

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"sales-task-tracker/internal/model"
	"sales-task-tracker/pkg/clock"
	"sales-task-tracker/pkg/idgen"
)

const day = 24 * time.Hour

// Normalizer converts raw decoded JSON into tasks.
type Normalizer struct {
	clock clock.Clock
	ids   idgen.Generator
}

// New creates a Normalizer.
func New(c clock.Clock, ids idgen.Generator) *Normalizer {
	return &Normalizer{clock: c, ids: ids}
}

// Normalize reads the clock once and normalizes raw against that instant.
func (n *Normalizer) Normalize(raw any) []model.Task {
	return n.NormalizeAt(raw, n.clock.Now())
}

// NormalizeAt normalizes raw as if the current time were now. Any input that
// is not a list yields an empty, non-nil slice. raw is never modified.
func (n *Normalizer) NormalizeAt(raw any, now time.Time) []model.Task {
	records := asList(raw)
	tasks := make([]model.Task, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for idx, rec := range records {
		t := n.normalizeRecord(Record(rec), idx, now)
		if _, dup := seen[t.ID]; dup {
			t.ID = n.ids.NewID()
		}
		seen[t.ID] = struct{}{}

		if t.Title == "" {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks
}

func (n *Normalizer) normalizeRecord(rec map[string]any, idx int, now time.Time) model.Task {
	t := model.Task{
		ID:        n.resolveID(rec["id"]),
		Title:     Title(rec["title"]),
		Revenue:   Revenue(rec["revenue"]),
		TimeTaken: TimeTaken(rec["timeTaken"]),
		Priority:  Priority(rec["priority"]),
		Status:    Status(rec["status"]),
		Notes:     Notes(rec["notes"]),
	}

	if at, ok := Time(rec["createdAt"]); ok {
		t.CreatedAt = at
	} else {
		// Strictly decreasing across the batch so default ordering is reproducible.
		t.CreatedAt = now.Add(-time.Duration(idx+1) * day)
	}

	if at, ok := Time(rec["completedAt"]); ok {
		t.CompletedAt = &at
	} else if t.Status == model.StatusDone {
		at := t.CreatedAt.Add(day)
		t.CompletedAt = &at
	}

	return t
}

func (n *Normalizer) resolveID(v any) string {
	if id := ID(v); id != "" {
		return id
	}
	return n.ids.NewID()
}

// Record returns v as a field map. Anything that is not an object yields an
// empty record, so every field takes its default.
func Record(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// ID returns v as an identifier, or "" when it is absent, blank or not a
// string or finite number.
func ID(v any) string {
	switch id := v.(type) {
	case string:
		if strings.TrimSpace(id) != "" {
			return id
		}
	case json.Number:
		return id.String()
	case float64:
		if !math.IsNaN(id) && !math.IsInf(id, 0) {
			return strconv.FormatFloat(id, 'f', -1, 64)
		}
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	}
	return ""
}

// Title returns v when it is a non-blank string, else model.DefaultTitle.
func Title(v any) string {
	s, _ := v.(string)
	return model.CoerceTitle(s)
}

// Revenue returns v when it is a finite number, else 0.
func Revenue(v any) float64 {
	f, _ := toFloat(v)
	return model.CoerceRevenue(f)
}

// TimeTaken returns v when it is a positive finite number, else
// model.DefaultTimeTaken.
func TimeTaken(v any) float64 {
	f, _ := toFloat(v)
	return model.CoerceTimeTaken(f)
}

// Priority parses v, defaulting to Medium.
func Priority(v any) model.Priority {
	s, _ := v.(string)
	return model.CoercePriority(model.Priority(s))
}

// Status parses v, defaulting to Todo.
func Status(v any) model.Status {
	s, _ := v.(string)
	return model.CoerceStatus(model.Status(s))
}

// Notes returns v when it is a string, else "".
func Notes(v any) string {
	s, _ := v.(string)
	return s
}

func asList(raw any) []any {
	switch list := raw.(type) {
	case []any:
		return list
	case []map[string]any:
		out := make([]any, len(list))
		for i, m := range list {
			out[i] = m
		}
		return out
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Time parses v as RFC 3339 or a bare date/datetime, in UTC.
func Time(v any) (time.Time, bool) {
	switch at := v.(type) {
	case time.Time:
		if at.IsZero() {
			return time.Time{}, false
		}
		return at.UTC(), true
	case string:
		s := strings.TrimSpace(at)
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed.UTC(), true
			}
		}
	}
	return time.Time{}, false
}
