// Package metrics computes per-task derived fields and aggregate statistics.
// Every function here is pure: the same task set always yields bit-identical
// results, regardless of the order the tasks are passed in.
package metrics

import (
	"math"
	"slices"
	"strings"

	"sales-task-tracker/internal/model"
)

// HighValueROI is the per-task ROI at or above which a task is high value.
const HighValueROI = 200.0

// Grade thresholds on average ROI. A grade applies from its threshold up to
// the next one.
const (
	FairROI      = 50.0
	GoodROI      = 200.0
	ExcellentROI = 500.0
)

// ROI is revenue per hour spent. timeTaken is always > 0 for stored tasks;
// anything else is treated as the default of one hour. Results that overflow
// saturate at ±math.MaxFloat64.
func ROI(revenue, timeTaken float64) float64 {
	return finite(revenue / model.CoerceTimeTaken(timeTaken))
}

// Derive attaches computed fields to t without modifying it.
func Derive(t model.Task) model.DerivedTask {
	roi := ROI(t.Revenue, t.TimeTaken)
	return model.DerivedTask{
		Task:           t.Clone(),
		ROI:            roi,
		RevenuePerHour: roi,
		PriorityWeight: t.Priority.Weight(),
		IsHighValue:    roi >= HighValueROI,
	}
}

// DeriveAll derives every task, preserving order.
func DeriveAll(tasks []model.Task) []model.DerivedTask {
	out := make([]model.DerivedTask, len(tasks))
	for i, t := range tasks {
		out[i] = Derive(t)
	}
	return out
}

// GradeFor maps an average ROI onto a Grade. It is monotonic non-decreasing.
func GradeFor(averageROI float64) model.Grade {
	switch {
	case averageROI >= ExcellentROI:
		return model.GradeExcellent
	case averageROI >= GoodROI:
		return model.GradeGood
	case averageROI >= FairROI:
		return model.GradeFair
	default:
		return model.GradeNeedsImprovement
	}
}

// Neutral is the aggregate for an empty task set.
func Neutral() model.Metrics {
	return model.Metrics{
		PerformanceGrade: model.GradeNeedsImprovement,
		StatusBreakdown:  emptyBreakdown(),
	}
}

// Compute aggregates tasks.
//
// timeEfficiencyPct is the share of total hours spent on Done tasks, in
// [0, 100]. It only moves up as more time is spent on completed work.
func Compute(tasks []model.Task) model.Metrics {
	if len(tasks) == 0 {
		return Neutral()
	}

	// Float addition is not associative, so sum in a canonical order.
	ordered := slices.Clone(tasks)
	slices.SortFunc(ordered, canonical)

	m := model.Metrics{
		TaskCount:       len(ordered),
		StatusBreakdown: emptyBreakdown(),
	}

	var doneTime, roiSum float64
	for _, t := range ordered {
		hours := model.CoerceTimeTaken(t.TimeTaken)
		m.TotalRevenue = finite(m.TotalRevenue + t.Revenue)
		m.TotalTimeTaken = finite(m.TotalTimeTaken + hours)
		roiSum = finite(roiSum + ROI(t.Revenue, hours))

		status := model.CoerceStatus(t.Status)
		m.StatusBreakdown[status]++
		if status == model.StatusDone {
			m.DoneCount++
			doneTime = finite(doneTime + hours)
		}
	}

	if m.TotalTimeTaken > 0 {
		m.RevenuePerHour = finite(m.TotalRevenue / m.TotalTimeTaken)
		m.TimeEfficiencyPct = clamp(100*(doneTime/m.TotalTimeTaken), 0, 100)
	}
	m.AverageROI = roiSum / float64(m.TaskCount)
	m.PerformanceGrade = GradeFor(m.AverageROI)

	return m
}

func emptyBreakdown() map[model.Status]int {
	return map[model.Status]int{
		model.StatusTodo:       0,
		model.StatusInProgress: 0,
		model.StatusDone:       0,
	}
}

func canonical(a, b model.Task) int {
	if c := strings.Compare(a.ID, b.ID); c != 0 {
		return c
	}
	return a.CreatedAt.Compare(b.CreatedAt)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

// finite saturates ±Inf at ±math.MaxFloat64 and maps NaN to 0, keeping every
// value JSON-encodable.
func finite(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return clamp(v, -math.MaxFloat64, math.MaxFloat64)
}
