package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/report"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// GetUtilization implements report.ReportRepository.
// Work hours count as project hours when the entry resolves to a
// billable project, directly or through its task.
func (r *reportRepository) GetUtilization(ctx context.Context, from, to time.Time) ([]report.UtilizationRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			u.id,
			u.full_name,
			COALESCE(SUM(te.hours) FILTER (
				WHERE te.entry_type = 'work' AND COALESCE(tp.is_project, dp.is_project, FALSE)
			), 0) AS project_hours,
			COALESCE(SUM(te.hours) FILTER (
				WHERE te.entry_type = 'work' AND NOT COALESCE(tp.is_project, dp.is_project, FALSE)
			), 0) AS nonproject_hours,
			COALESCE(SUM(te.hours) FILTER (WHERE te.entry_type = 'leave'), 0) AS leave_hours,
			COALESCE(SUM(te.hours), 0) AS total_hours
		FROM time_entries te
		JOIN users u ON u.id = te.user_id
		LEFT JOIN tasks t ON t.id = te.task_id
		LEFT JOIN projects tp ON tp.id = t.project_id
		LEFT JOIN projects dp ON dp.id = te.project_id
		WHERE te.approved AND te.date >= $1 AND te.date <= $2
		GROUP BY u.id, u.full_name
		ORDER BY u.full_name
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query utilization: %w", err)
	}
	defer rows.Close()

	var result []report.UtilizationRow
	for rows.Next() {
		var row report.UtilizationRow
		if err := rows.Scan(&row.UserID, &row.FullName, &row.ProjectHours,
			&row.NonProjectHours, &row.LeaveHours, &row.TotalHours); err != nil {
			return nil, fmt.Errorf("failed to scan utilization row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetProjectLoad implements report.ReportRepository.
func (r *reportRepository) GetProjectLoad(ctx context.Context) ([]report.ProjectLoadRow, error) {
	q := GetQuerier(ctx, r.db)

	// Logged hours include entries bound to the project's tasks plus
	// entries bound to the project directly.
	query := `
		SELECT p.id, p.code, p.planned_hours,
			COALESCE((
				SELECT SUM(te.hours) FROM time_entries te
				JOIN tasks t ON t.id = te.task_id
				WHERE t.project_id = p.id AND te.approved
			), 0) + COALESCE((
				SELECT SUM(te.hours) FROM time_entries te
				WHERE te.project_id = p.id AND te.approved
			), 0) AS actual_hours
		FROM projects p
		WHERE p.status = 'active'
		ORDER BY p.code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query project load: %w", err)
	}
	defer rows.Close()

	var result []report.ProjectLoadRow
	for rows.Next() {
		var row report.ProjectLoadRow
		if err := rows.Scan(&row.ProjectID, &row.Code, &row.PlannedHours, &row.ActualHours); err != nil {
			return nil, fmt.Errorf("failed to scan project load row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetDepartmentWorkload implements report.ReportRepository.
func (r *reportRepository) GetDepartmentWorkload(ctx context.Context, from, to time.Time) ([]report.DepartmentWorkloadRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.department, COALESCE(SUM(te.hours), 0)
		FROM time_entries te
		JOIN users u ON u.id = te.user_id
		WHERE te.approved AND te.date >= $1 AND te.date <= $2
		GROUP BY u.department
		ORDER BY u.department
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query department workload: %w", err)
	}
	defer rows.Close()

	var result []report.DepartmentWorkloadRow
	for rows.Next() {
		var row report.DepartmentWorkloadRow
		if err := rows.Scan(&row.Department, &row.Hours); err != nil {
			return nil, fmt.Errorf("failed to scan department workload row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetApprovedWorkHoursByDay implements report.ReportRepository.
func (r *reportRepository) GetApprovedWorkHoursByDay(ctx context.Context, userID string, from, to time.Time) ([]report.DayHours, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, COALESCE(SUM(hours), 0)
		FROM time_entries
		WHERE user_id = $1 AND approved AND entry_type = 'work' AND date >= $2 AND date <= $3
		GROUP BY date
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily hours: %w", err)
	}
	defer rows.Close()

	var result []report.DayHours
	for rows.Next() {
		var day time.Time
		var dh report.DayHours
		if err := rows.Scan(&day, &dh.Hours); err != nil {
			return nil, fmt.Errorf("failed to scan daily hours: %w", err)
		}
		dh.Date = day.Format("2006-01-02")
		result = append(result, dh)
	}
	return result, rows.Err()
}
