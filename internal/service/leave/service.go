package leave

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/leave"
	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/timesheet"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/database"
	"github.com/timeflow-hq/timeflow-backend-go/internal/pkg/policy"
	"github.com/timeflow-hq/timeflow-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRequestRepository
	timesheet.TimeEntryRepository
	shiftHours float64
}

func NewLeaveService(
	db *database.DB,
	requests leave.LeaveRequestRepository,
	entries timesheet.TimeEntryRepository,
	shiftHours float64,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: requests,
		TimeEntryRepository:    entries,
		shiftHours:             shiftHours,
	}
}

// Request implements leave.LeaveService.
func (l *LeaveServiceImpl) Request(ctx context.Context, req leave.RequestLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	from, err := policy.ParseDate(req.DateFrom)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	to, err := policy.ParseDate(req.DateTo)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if from.After(to) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidRange
	}

	created, err := l.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		UserID:   req.UserID,
		Type:     leave.Type(req.Type),
		DateFrom: from,
		DateTo:   to,
		Status:   leave.StatusPending,
		Comment:  req.Comment,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.ToResponse(created), nil
}

// QuickRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) QuickRequest(ctx context.Context, req leave.QuickRequestLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	date, err := policy.ParseDate(req.Date)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	covered, err := l.LeaveRequestRepository.HasCovering(ctx, req.UserID, date)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if covered {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveExists
	}

	created, err := l.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		UserID:   req.UserID,
		Type:     leave.Type(req.Type),
		DateFrom: date,
		DateTo:   date,
		Status:   leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.ToResponse(created), nil
}

// Decide implements leave.LeaveService. The decision and the time entry
// reconciliation commit atomically; a crash between the two cannot leave
// an approved request without its entries.
func (l *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideLeaveRequest) error {
	return postgresql.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		request, err := l.LeaveRequestRepository.GetByID(txCtx, req.LeaveID)
		if err != nil {
			return err
		}

		status := leave.StatusRejected
		if req.Approve {
			status = leave.StatusApproved
		}
		if err := l.LeaveRequestRepository.SetDecision(txCtx, request.ID, status, req.ApproverID); err != nil {
			return err
		}

		if !req.Approve {
			// Rejection removes every generated entry, including ones
			// from an earlier approval.
			return l.TimeEntryRepository.DeleteByLeaveRequest(txCtx, request.ID)
		}
		return l.synchronize(txCtx, request)
	})
}

// synchronize converges the linked entry set to exactly one generated
// entry per date in the request's current range. Re-running it is
// idempotent: surviving dates are refreshed in place, missing dates are
// created, dates outside the range are removed.
func (l *LeaveServiceImpl) synchronize(ctx context.Context, request leave.LeaveRequest) error {
	existing, err := l.TimeEntryRepository.ListByLeaveRequest(ctx, request.ID)
	if err != nil {
		return err
	}

	byDate := make(map[string]timesheet.TimeEntry, len(existing))
	for _, e := range existing {
		byDate[e.Date.Format("2006-01-02")] = e
	}

	notes := leave.TypeLabels[request.Type]
	for _, date := range request.Dates() {
		key := date.Format("2006-01-02")
		if e, ok := byDate[key]; ok {
			if err := l.TimeEntryRepository.Refresh(ctx, e.ID, l.shiftHours, notes, true, true); err != nil {
				return fmt.Errorf("failed to refresh leave entry for %s: %w", key, err)
			}
			delete(byDate, key)
			continue
		}

		requestID := request.ID
		_, err := l.TimeEntryRepository.Create(ctx, timesheet.TimeEntry{
			ID:             uuid.NewString(),
			UserID:         request.UserID,
			Date:           date,
			Hours:          l.shiftHours,
			Notes:          notes,
			Approved:       true,
			Locked:         true,
			EntryType:      timesheet.EntryTypeLeave,
			LeaveRequestID: &requestID,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave entry for %s: %w", key, err)
		}
	}

	// Entries left over from a wider previous range.
	for key, e := range byDate {
		if err := l.TimeEntryRepository.Delete(ctx, e.ID); err != nil {
			return fmt.Errorf("failed to remove stale leave entry for %s: %w", key, err)
		}
	}
	return nil
}

// ListMine implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMine(ctx context.Context, userID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.LeaveRequestRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return leave.ToResponses(requests), nil
}

// ListPending implements leave.LeaveService.
func (l *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.LeaveRequestRepository.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return leave.ToResponses(requests), nil
}
