package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/timeflow-hq/timeflow-backend-go/internal/domain/timesheet"
)

// RegisterPeriodCloseJob schedules the nightly period close: approved
// work entries older than lockDays get locked against owner deletion.
// A lockDays of zero disables the job.
func RegisterPeriodCloseJob(s *Scheduler, entries timesheet.TimeEntryRepository, lockDays int) {
	if lockDays <= 0 {
		slog.Info("Period close disabled", "lock_days", lockDays)
		return
	}

	s.AddJob("period-close", 24*time.Hour, func(ctx context.Context) error {
		cutoff := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -lockDays)
		locked, err := entries.LockOlderThan(ctx, cutoff)
		if err != nil {
			return err
		}
		if locked > 0 {
			slog.Info("Period close locked entries", "count", locked, "cutoff", cutoff.Format("2006-01-02"))
		}
		return nil
	})
}
