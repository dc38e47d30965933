package policy

import (
	"testing"
	"time"
)

func TestValidateHours(t *testing.T) {
	cases := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"8", 8, false},
		{"7.5", 7.5, false},
		{" 0.25 ", 0.25, false},
		{"1.999", 2, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"NaN", 0, true},
		{"+Inf", 0, true},
	}
	for _, c := range cases {
		got, err := ValidateHours(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("ValidateHours(%q) = %v, want error", c.input, got)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Errorf("ValidateHours(%q) = %v, %v; want %v, nil", c.input, got, err, c.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("ParseDate valid: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.March || d.Day() != 15 {
		t.Errorf("ParseDate = %v", d)
	}
	for _, bad := range []string{"15-03-2024", "2024/03/15", "yesterday", ""} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", bad)
		}
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsBackfillApproved(t *testing.T) {
	today := date(2024, time.March, 15)
	cases := []struct {
		name      string
		entryDate time.Time
		allowDays int
		want      bool
	}{
		{"today", today, 1, true},
		{"yesterday within window", date(2024, time.March, 14), 1, true},
		{"two days back outside window", date(2024, time.March, 13), 1, false},
		{"two days back wider window", date(2024, time.March, 13), 2, true},
		{"future date never auto-approved", date(2024, time.March, 16), 1, false},
		{"far future", date(2024, time.April, 1), 30, false},
		{"zero window same day only", date(2024, time.March, 14), 0, false},
		{"zero window today", today, 0, true},
	}
	for _, c := range cases {
		if got := IsBackfillApproved(c.entryDate, today, c.allowDays); got != c.want {
			t.Errorf("%s: IsBackfillApproved(%v, %v, %d) = %v, want %v",
				c.name, c.entryDate.Format("2006-01-02"), today.Format("2006-01-02"), c.allowDays, got, c.want)
		}
	}
}

func TestIsBackfillApprovedIgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2024, time.March, 15, 23, 50, 0, 0, time.UTC)
	entry := time.Date(2024, time.March, 14, 0, 10, 0, 0, time.UTC)
	if !IsBackfillApproved(entry, today, 1) {
		t.Error("day-granular comparison expected, got time-of-day sensitivity")
	}
}
