// Package policy holds the time-accounting rules that decide whether a
// submitted entry is valid and whether it is auto-approved.
package policy

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidHours = errors.New("hours must be a positive number")
	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

// ValidateHours parses raw into a positive, finite number of hours,
// rounded to 2 decimal places.
func ValidateHours(raw string) (float64, error) {
	hours, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, ErrInvalidHours
	}
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return 0, ErrInvalidHours
	}
	return math.Round(hours*100) / 100, nil
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(raw string) (time.Time, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// IsBackfillApproved reports whether an entry dated entryDate may be
// auto-approved when logged on today. Future-dated entries and entries
// backfilled more than allowBackfillDays into the past are held for
// manager approval instead of being rejected.
func IsBackfillApproved(entryDate, today time.Time, allowBackfillDays int) bool {
	entryDate = truncateToDay(entryDate)
	today = truncateToDay(today)
	if entryDate.After(today) {
		return false
	}
	days := int(today.Sub(entryDate).Hours() / 24)
	return days <= allowBackfillDays
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
