// Package valueobject contains domain value objects for the Finance Tracker system.
package valueobject

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar-day format accepted at the API boundary (dd-MM-yyyy).
const DateLayout = "02-01-2006"

// MaxPeriodDays bounds a requested period to roughly ten years.
const MaxPeriodDays = 3660

const secondsPerDay = 24 * 60 * 60

// ErrPeriodTooLong is returned when a requested period spans more than MaxPeriodDays.
var ErrPeriodTooLong = errors.New("period too long")

// Period is an inclusive calendar-day range. Both bounds are kept at UTC midnight.
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod creates a Period, truncating both bounds to their calendar day.
func NewPeriod(start, end time.Time) Period {
	return Period{
		Start: TruncateToDay(start),
		End:   TruncateToDay(end),
	}
}

// TruncateToDay returns UTC midnight of the calendar day t falls on in its own location.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a dd-MM-yyyy string into a calendar day.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected dd-MM-yyyy: %w", value, err)
	}
	return date, nil
}

// FormatDate renders a calendar day as dd-MM-yyyy.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Days returns the number of calendar days covered by the period, or 0 when End is before Start.
func (p Period) Days() int {
	if p.End.Before(p.Start) {
		return 0
	}
	// Unix seconds avoid the ~292 year ceiling of time.Duration.
	return int((p.End.Unix()-p.Start.Unix())/secondsPerDay) + 1
}

// IsEmpty reports whether the period covers no day at all.
func (p Period) IsEmpty() bool {
	return p.Days() == 0
}

// Previous returns the period of equal length that ends the day before p starts.
// An empty period has no predecessor and is returned unchanged.
func (p Period) Previous() Period {
	days := p.Days()
	if days == 0 {
		return p
	}
	return Period{
		Start: p.Start.AddDate(0, 0, -days),
		End:   p.End.AddDate(0, 0, -days),
	}
}

// Contains reports whether the calendar day of t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	day := TruncateToDay(t)
	return !day.Before(p.Start) && !day.After(p.End)
}

// String implements fmt.Stringer.
func (p Period) String() string {
	return FormatDate(p.Start) + ".." + FormatDate(p.End)
}

// ResolvePeriod builds the period requested with optional dd-MM-yyyy bounds.
// A missing bound falls back to a window of windowDays days ending at now.
func ResolvePeriod(from, to string, now time.Time, windowDays int) (Period, error) {
	end := now
	start := now.AddDate(0, 0, -windowDays)

	if from != "" {
		parsed, err := ParseDate(from)
		if err != nil {
			return Period{}, err
		}
		start = parsed
	}
	if to != "" {
		parsed, err := ParseDate(to)
		if err != nil {
			return Period{}, err
		}
		end = parsed
	}

	period := NewPeriod(start, end)
	if period.Days() > MaxPeriodDays {
		return Period{}, fmt.Errorf("%w: %s spans more than %d days", ErrPeriodTooLong, period, MaxPeriodDays)
	}
	return period, nil
}
