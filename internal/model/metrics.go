package model

// DerivedTask is a Task plus read-only computed fields. It is never stored.
type DerivedTask struct {
	Task
	ROI            float64 `json:"roi"`
	RevenuePerHour float64 `json:"revenuePerHour"`
	PriorityWeight int     `json:"priorityWeight"`
	IsHighValue    bool    `json:"isHighValue"`
}

// Clone returns a deep copy of d.
func (d DerivedTask) Clone() DerivedTask {
	d.Task = d.Task.Clone()
	return d
}

// Grade labels the average ROI of a task set.
type Grade string

const (
	GradeNeedsImprovement Grade = "Needs Improvement"
	GradeFair             Grade = "Fair"
	GradeGood             Grade = "Good"
	GradeExcellent        Grade = "Excellent"
)

// Rank orders grades from lowest (0) to highest.
func (g Grade) Rank() int {
	switch g {
	case GradeFair:
		return 1
	case GradeGood:
		return 2
	case GradeExcellent:
		return 3
	}
	return 0
}

// Metrics is the aggregate view over one snapshot of the task set.
type Metrics struct {
	TaskCount         int            `json:"taskCount"`
	DoneCount         int            `json:"doneCount"`
	TotalRevenue      float64        `json:"totalRevenue"`
	TotalTimeTaken    float64        `json:"totalTimeTaken"`
	TimeEfficiencyPct float64        `json:"timeEfficiencyPct"`
	RevenuePerHour    float64        `json:"revenuePerHour"`
	AverageROI        float64        `json:"averageROI"`
	PerformanceGrade  Grade          `json:"performanceGrade"`
	StatusBreakdown   map[Status]int `json:"statusBreakdown"`
}
