package report

import (
	"context"
	"time"
)

// ReportService builds the manager/admin reporting surfaces.
type ReportService interface {
	Utilization(ctx context.Context, days int) ([]UtilizationRow, error)
	ProjectLoad(ctx context.Context) ([]ProjectLoadRow, error)
	DepartmentWorkload(ctx context.Context, days int) ([]DepartmentWorkloadRow, error)
	// TeamCalendar returns one row per active user for `days` days
	// starting at start.
	TeamCalendar(ctx context.Context, start time.Time, days int) ([]CalendarRow, error)
}
