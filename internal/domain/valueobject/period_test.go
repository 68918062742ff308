package valueobject

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestPeriod(t *testing.T) {
	t.Run("days counts both bounds", func(t *testing.T) {
		p := NewPeriod(
			time.Date(2024, time.January, 1, 15, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 31, 1, 0, 0, 0, time.UTC),
		)
		if p.Days() != 31 {
			t.Errorf("expected 31 days, got %d", p.Days())
		}
	})

	t.Run("inverted period is empty", func(t *testing.T) {
		p := NewPeriod(time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC), time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
		if !p.IsEmpty() {
			t.Error("expected inverted period to be empty")
		}
		if p.Previous() != p {
			t.Error("expected empty period to have itself as predecessor")
		}
	})

	t.Run("previous period has the same length and ends before start", func(t *testing.T) {
		p := NewPeriod(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
		prev := p.Previous()

		expectedStart := time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC)
		expectedEnd := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
		if !prev.Start.Equal(expectedStart) || !prev.End.Equal(expectedEnd) {
			t.Errorf("expected %s..%s, got %s", expectedStart, expectedEnd, prev)
		}
		if prev.Days() != p.Days() {
			t.Errorf("expected %d days, got %d", p.Days(), prev.Days())
		}
	})

	t.Run("day count holds beyond the duration range", func(t *testing.T) {
		p := NewPeriod(time.Date(1000, time.January, 1, 0, 0, 0, 0, time.UTC), time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC))
		if p.Days() != 365242 {
			t.Errorf("expected 365242 days, got %d", p.Days())
		}

		prev := p.Previous()
		if !prev.End.Equal(p.Start.AddDate(0, 0, -1)) {
			t.Errorf("expected previous period to end the day before %s, got %s", FormatDate(p.Start), prev)
		}
		if prev.Days() != p.Days() {
			t.Errorf("expected %d days, got %d", p.Days(), prev.Days())
		}
	})

	t.Run("contains ignores time of day", func(t *testing.T) {
		p := NewPeriod(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC))
		if !p.Contains(time.Date(2024, time.March, 2, 23, 59, 0, 0, time.UTC)) {
			t.Error("expected end day to be contained")
		}
		if p.Contains(time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)) {
			t.Error("expected day after end not to be contained")
		}
	})
}

func TestResolvePeriod_TooLong(t *testing.T) {
	now := time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC)

	if _, err := ResolvePeriod("01-01-2014", "09-01-2024", now, 30); !errors.Is(err, ErrPeriodTooLong) {
		t.Errorf("expected ErrPeriodTooLong one day past the cap, got %v", err)
	}
	if _, err := ResolvePeriod("01-01-1000", "", now, 30); !errors.Is(err, ErrPeriodTooLong) {
		t.Errorf("expected ErrPeriodTooLong for an open-ended period, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("05-02-2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if date.Year() != 2024 || date.Month() != time.February || date.Day() != 5 {
		t.Errorf("expected 2024-02-05, got %s", date)
	}

	for _, invalid := range []string{"2024-02-05", "31-02-2024", "", "5-2-24"} {
		if _, err := ParseDate(invalid); err == nil {
			t.Errorf("expected error for %q", invalid)
		}
	}

	if FormatDate(date) != "05-02-2024" {
		t.Errorf("expected round trip, got %s", FormatDate(date))
	}
}

func TestMiliunits(t *testing.T) {
	tests := []struct {
		amount   string
		expected int64
	}{
		{amount: "12.34", expected: 12340},
		{amount: "-0.5", expected: -500},
		{amount: "1.0005", expected: 1001},
		{amount: "-1.0005", expected: -1001},
		{amount: "0", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got, err := MiliunitsFromDecimal(decimal.RequireFromString(tt.amount))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}

	for _, amount := range []string{"10000000000000000", "-10000000000000000", "1000000000000.001"} {
		t.Run("rejects "+amount, func(t *testing.T) {
			if _, err := MiliunitsFromDecimal(decimal.RequireFromString(amount)); !errors.Is(err, ErrAmountOutOfRange) {
				t.Errorf("expected ErrAmountOutOfRange, got %v", err)
			}
		})
	}

	limit, err := MiliunitsFromDecimal(decimal.RequireFromString("-1000000000000"))
	if err != nil || limit != -MaxAbsMiliunits {
		t.Errorf("expected %d, got %d (%v)", -MaxAbsMiliunits, limit, err)
	}

	if !MiliunitsToDecimal(-12340).Equal(decimal.RequireFromString("-12.34")) {
		t.Errorf("expected -12.34, got %s", MiliunitsToDecimal(-12340))
	}
}

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2024, time.April, 15, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name          string
		from          string
		to            string
		expectedStart time.Time
		expectedEnd   time.Time
		expectErr     bool
	}{
		{
			name:          "defaults to window ending today",
			expectedStart: time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "explicit bounds",
			from:          "01-04-2024",
			to:            "10-04-2024",
			expectedStart: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "only from given keeps default end",
			from:          "01-04-2024",
			expectedStart: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "malformed from",
			from:      "2024-04-01",
			expectErr: true,
		},
		{
			name:      "malformed to",
			to:        "40-04-2024",
			expectErr: true,
		},
		{
			name:          "longest allowed period",
			from:          "01-01-2014",
			to:            "08-01-2024",
			expectedStart: time.Date(2014, time.January, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "period longer than the cap",
			from:      "01-01-1000",
			to:        "31-12-1999",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := ResolvePeriod(tt.from, tt.to, now, 30)
			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if period.Days() > MaxPeriodDays {
				t.Errorf("expected at most %d days, got %d", MaxPeriodDays, period.Days())
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !period.Start.Equal(tt.expectedStart) || !period.End.Equal(tt.expectedEnd) {
				t.Errorf("expected %s..%s, got %s", tt.expectedStart, tt.expectedEnd, period)
			}
		})
	}
}
