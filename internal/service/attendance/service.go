package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	shiftHours float64
}

func NewAttendanceService(repo attendance.AttendanceRepository, shiftHours float64) attendance.AttendanceService {
	return &AttendanceServiceImpl{AttendanceRepository: repo, shiftHours: shiftHours}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, userID string, day time.Time, now time.Time) (attendance.AttendanceResponse, error) {
	existing, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	if existing == nil {
		created, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
			UserID:  userID,
			Date:    day,
			CheckIn: &now,
		})
		switch {
		case err == nil:
			return attendance.ToResponse(created, a.shiftHours), nil
		case isUniqueViolation(err):
			// A concurrent check-in won the insert; fall through to the
			// update path. The repository update only fills a missing
			// check_in, so the first written time stands.
		default:
			return attendance.AttendanceResponse{}, err
		}

		existing, err = a.AttendanceRepository.GetByUserAndDate(ctx, userID, day)
		if err != nil || existing == nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to reload attendance after insert race: %w", err)
		}
	}

	if existing.CheckIn == nil {
		if err := a.AttendanceRepository.SetCheckIn(ctx, existing.ID, now); err != nil {
			return attendance.AttendanceResponse{}, err
		}
	}

	return a.respond(ctx, userID, day)
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, userID string, day time.Time, now time.Time) (attendance.AttendanceResponse, error) {
	existing, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	if existing == nil {
		// Check-out without a check-in: record both at the same instant.
		created, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
			UserID:   userID,
			Date:     day,
			CheckIn:  &now,
			CheckOut: &now,
		})
		switch {
		case err == nil:
			return attendance.ToResponse(created, a.shiftHours), nil
		case isUniqueViolation(err):
		default:
			return attendance.AttendanceResponse{}, err
		}

		existing, err = a.AttendanceRepository.GetByUserAndDate(ctx, userID, day)
		if err != nil || existing == nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to reload attendance after insert race: %w", err)
		}
	}

	// Last check-out wins.
	if err := a.AttendanceRepository.SetCheckOut(ctx, existing.ID, now); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return a.respond(ctx, userID, day)
}

// GetForDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetForDay(ctx context.Context, userID string, day time.Time) (*attendance.AttendanceResponse, error) {
	record, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}
	if record == nil {
		return nil, nil
	}
	resp := attendance.ToResponse(*record, a.shiftHours)
	return &resp, nil
}

func (a *AttendanceServiceImpl) respond(ctx context.Context, userID string, day time.Time) (attendance.AttendanceResponse, error) {
	record, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to reload attendance: %w", err)
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}
	return attendance.ToResponse(*record, a.shiftHours), nil
}
