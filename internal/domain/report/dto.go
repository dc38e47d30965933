package report

// Named row types per report; each carries only the fields its consumer
// renders.

// UtilizationRow aggregates approved hours per user over a window,
// split into project, non-project and leave buckets.
type UtilizationRow struct {
	UserID          string  `json:"user_id"`
	FullName        string  `json:"full_name"`
	ProjectHours    float64 `json:"project_hours"`
	NonProjectHours float64 `json:"nonproject_hours"`
	LeaveHours      float64 `json:"leave_hours"`
	TotalHours      float64 `json:"total_hours"`
}

// ProjectLoadRow compares planned hours against logged approved hours,
// counting both task-bound and direct project entries.
type ProjectLoadRow struct {
	ProjectID    string  `json:"project_id"`
	Code         string  `json:"code"`
	PlannedHours float64 `json:"planned_hours"`
	ActualHours  float64 `json:"actual_hours"`
}

// DepartmentWorkloadRow sums approved hours per department.
type DepartmentWorkloadRow struct {
	Department string  `json:"department"`
	Hours      float64 `json:"hours"`
}

// CalendarCell is one (user, date) cell on the team calendar: approved
// work hours plus an optional leave mark with its status color label.
type CalendarCell struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
	// Mark is the short leave-type code, empty when no leave overlaps.
	Mark string `json:"mark,omitempty"`
	// Color is the leave status token (pending/approved/rejected) used
	// as a CSS class by the calendar page.
	Color string `json:"color,omitempty"`
}

// CalendarRow is one user's row on the team calendar.
type CalendarRow struct {
	UserID     string         `json:"user_id"`
	FullName   string         `json:"full_name"`
	Department string         `json:"department"`
	Cells      []CalendarCell `json:"cells"`
}

// DayHours is a (date, hours) aggregate used by the calendar queries.
type DayHours struct {
	Date  string
	Hours float64
}
