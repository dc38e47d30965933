package report

import (
	"context"
	"time"

	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/leave"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/report"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/user"
)

type ReportServiceImpl struct {
	report.ReportRepository
	user.UserRepository
	leave.LeaveRequestRepository
}

func NewReportService(
	reports report.ReportRepository,
	users user.UserRepository,
	leaves leave.LeaveRequestRepository,
) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository:       reports,
		UserRepository:         users,
		LeaveRequestRepository: leaves,
	}
}

func window(days int) (time.Time, time.Time) {
	to := time.Now().UTC().Truncate(24 * time.Hour)
	from := to.AddDate(0, 0, -days)
	return from, to
}

// Utilization implements report.ReportService.
func (s *ReportServiceImpl) Utilization(ctx context.Context, days int) ([]report.UtilizationRow, error) {
	from, to := window(days)
	return s.ReportRepository.GetUtilization(ctx, from, to)
}

// ProjectLoad implements report.ReportService.
func (s *ReportServiceImpl) ProjectLoad(ctx context.Context) ([]report.ProjectLoadRow, error) {
	return s.ReportRepository.GetProjectLoad(ctx)
}

// DepartmentWorkload implements report.ReportService.
func (s *ReportServiceImpl) DepartmentWorkload(ctx context.Context, days int) ([]report.DepartmentWorkloadRow, error) {
	from, to := window(days)
	return s.ReportRepository.GetDepartmentWorkload(ctx, from, to)
}

// TeamCalendar implements report.ReportService. One row per active user;
// each cell carries the approved work hours for the day plus a leave
// mark when a request overlaps it.
func (s *ReportServiceImpl) TeamCalendar(ctx context.Context, start time.Time, days int) ([]report.CalendarRow, error) {
	users, err := s.UserRepository.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	end := start.AddDate(0, 0, days-1)
	rows := make([]report.CalendarRow, 0, len(users))
	for _, u := range users {
		dayHours, err := s.ReportRepository.GetApprovedWorkHoursByDay(ctx, u.ID, start, end)
		if err != nil {
			return nil, err
		}
		hoursByDate := make(map[string]float64, len(dayHours))
		for _, dh := range dayHours {
			hoursByDate[dh.Date] = dh.Hours
		}

		leaves, err := s.LeaveRequestRepository.ListOverlapping(ctx, u.ID, start, end)
		if err != nil {
			return nil, err
		}

		row := report.CalendarRow{
			UserID:     u.ID,
			FullName:   u.FullName,
			Department: u.Department,
			Cells:      make([]report.CalendarCell, 0, days),
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			key := d.Format("2006-01-02")
			cell := report.CalendarCell{Date: key, Hours: hoursByDate[key]}
			if lr := coveringLeave(leaves, d); lr != nil {
				cell.Mark = leave.TypeMarks[lr.Type]
				cell.Color = string(lr.Status)
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

var calendarStatusRank = map[leave.Status]int{
	leave.StatusRejected: 0,
	leave.StatusPending:  1,
	leave.StatusApproved: 2,
}

// coveringLeave picks the request to mark a cell with. Rejected requests
// still show, colored by their status, but approved beats pending beats
// rejected when several requests cover the same date.
func coveringLeave(leaves []leave.LeaveRequest, date time.Time) *leave.LeaveRequest {
	var picked *leave.LeaveRequest
	for i := range leaves {
		lr := &leaves[i]
		if date.Before(lr.DateFrom) || date.After(lr.DateTo) {
			continue
		}
		if picked == nil || calendarStatusRank[lr.Status] > calendarStatusRank[picked.Status] {
			picked = lr
		}
	}
	return picked
}
