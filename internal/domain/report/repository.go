package report

import (
	"context"
	"time"
)

// ReportRepository defines the aggregation queries behind the metrics
// and calendar surfaces.
type ReportRepository interface {
	// GetUtilization aggregates approved hours per user over [from, to].
	GetUtilization(ctx context.Context, from, to time.Time) ([]UtilizationRow, error)

	// GetProjectLoad returns planned vs logged hours per active project.
	GetProjectLoad(ctx context.Context) ([]ProjectLoadRow, error)

	// GetDepartmentWorkload sums approved hours per department over
	// [from, to].
	GetDepartmentWorkload(ctx context.Context, from, to time.Time) ([]DepartmentWorkloadRow, error)

	// GetApprovedWorkHoursByDay returns per-day approved work hours for
	// one user over [from, to].
	GetApprovedWorkHoursByDay(ctx context.Context, userID string, from, to time.Time) ([]DayHours, error)
}
