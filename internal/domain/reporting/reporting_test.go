package reporting

import (
	"testing"
	"time"

	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregatePeriod(t *testing.T) {
	tests := []struct {
		name     string
		amounts  []int64
		expected PeriodAggregate
	}{
		{
			name:     "empty set yields zeros",
			amounts:  nil,
			expected: PeriodAggregate{},
		},
		{
			name:     "mixed income and expenses",
			amounts:  []int64{100, -40, -10},
			expected: PeriodAggregate{Income: 100, Expenses: -50, Remaining: 50},
		},
		{
			name:     "zero amount counts as income",
			amounts:  []int64{0, -5},
			expected: PeriodAggregate{Income: 0, Expenses: -5, Remaining: -5},
		},
		{
			name:     "only expenses",
			amounts:  []int64{-1000, -2500},
			expected: PeriodAggregate{Income: 0, Expenses: -3500, Remaining: -3500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregatePeriod(tt.amounts)
			if got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestPercentageChange(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		expected float64
	}{
		{name: "both zero", current: 0, previous: 0, expected: 0},
		{name: "previous zero positive current", current: 42, previous: 0, expected: 100},
		{name: "previous zero negative current", current: -42, previous: 0, expected: 100},
		{name: "fifty percent increase", current: 150, previous: 100, expected: 50},
		{name: "halved", current: 50, previous: 100, expected: -50},
		{name: "unchanged", current: 75, previous: 75, expected: 0},
		{name: "current zero", current: 0, previous: 200, expected: -100},
		{name: "negative values", current: -150, previous: -100, expected: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentageChange(tt.current, tt.previous)
			if got != tt.expected {
				t.Errorf("PercentageChange(%d, %d) = %v, expected %v", tt.current, tt.previous, got, tt.expected)
			}
		})
	}
}

func TestRollupCategories(t *testing.T) {
	t.Run("three or fewer categories are returned sorted without Other", func(t *testing.T) {
		got := RollupCategories([]CategoryExpense{
			{Name: "Rent", Amount: -30},
			{Name: "Food", Amount: -50},
			{Name: "Utilities", Amount: -40},
		}, DefaultTopCategories)

		expected := []CategoryShare{
			{Name: "Food", Value: 50},
			{Name: "Utilities", Value: 40},
			{Name: "Rent", Value: 30},
		}
		assertShares(t, expected, got)
	})

	t.Run("long tail collapses into Other", func(t *testing.T) {
		got := RollupCategories([]CategoryExpense{
			{Name: "E", Amount: -10},
			{Name: "A", Amount: -50},
			{Name: "D", Amount: -20},
			{Name: "B", Amount: -40},
			{Name: "C", Amount: -30},
		}, DefaultTopCategories)

		expected := []CategoryShare{
			{Name: "A", Value: 50},
			{Name: "B", Value: 40},
			{Name: "C", Value: 30},
			{Name: OtherCategoryName, Value: 30},
		}
		assertShares(t, expected, got)
	})

	t.Run("Other is appended last even when larger", func(t *testing.T) {
		got := RollupCategories([]CategoryExpense{
			{Name: "A", Amount: -10},
			{Name: "B", Amount: -9},
			{Name: "C", Amount: -8},
			{Name: "D", Amount: -7},
			{Name: "E", Amount: -6},
		}, DefaultTopCategories)

		if len(got) != 4 {
			t.Fatalf("expected 4 entries, got %d", len(got))
		}
		last := got[3]
		if last.Name != OtherCategoryName || last.Value != 13 {
			t.Errorf("expected trailing Other=13, got %+v", last)
		}
	})

	t.Run("transactions of the same category are summed by absolute value", func(t *testing.T) {
		got := RollupCategories([]CategoryExpense{
			{Name: "Food", Amount: -10},
			{Name: "Rent", Amount: -25},
			{Name: "Food", Amount: -20},
		}, DefaultTopCategories)

		expected := []CategoryShare{
			{Name: "Food", Value: 30},
			{Name: "Rent", Value: 25},
		}
		assertShares(t, expected, got)
	})

	t.Run("ties keep first-seen order", func(t *testing.T) {
		got := RollupCategories([]CategoryExpense{
			{Name: "Second", Amount: -10},
			{Name: "First", Amount: -20},
			{Name: "Third", Amount: -10},
		}, DefaultTopCategories)

		expected := []CategoryShare{
			{Name: "First", Value: 20},
			{Name: "Second", Value: 10},
			{Name: "Third", Value: 10},
		}
		assertShares(t, expected, got)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		got := RollupCategories(nil, DefaultTopCategories)
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", got)
		}
	})
}

func TestFillMissingDays(t *testing.T) {
	t.Run("dense series covers every day of the range", func(t *testing.T) {
		start := day(2024, time.January, 28)
		end := day(2024, time.February, 3)
		sparse := []DailyPoint{
			{Date: day(2024, time.January, 29), Income: 500, Expenses: -100},
			{Date: day(2024, time.February, 2), Income: 0, Expenses: -40},
		}

		got := FillMissingDays(sparse, start, end)

		if len(got) != 7 {
			t.Fatalf("expected 7 points, got %d", len(got))
		}
		for i, point := range got {
			expectedDate := start.AddDate(0, 0, i)
			if !point.Date.Equal(expectedDate) {
				t.Errorf("point %d: expected date %s, got %s", i, expectedDate, point.Date)
			}
		}
		if got[1].Income != 500 || got[1].Expenses != -100 {
			t.Errorf("expected sparse values on Jan 29, got %+v", got[1])
		}
		if got[5].Expenses != -40 {
			t.Errorf("expected sparse values on Feb 2, got %+v", got[5])
		}
		if got[0].Income != 0 || got[0].Expenses != 0 {
			t.Errorf("expected zero-filled Jan 28, got %+v", got[0])
		}
	})

	t.Run("length matches inclusive day count for several ranges", func(t *testing.T) {
		start := day(2023, time.December, 15)
		for span := 0; span < 70; span += 7 {
			end := start.AddDate(0, 0, span)
			got := FillMissingDays(nil, start, end)
			if len(got) != span+1 {
				t.Fatalf("span %d: expected %d points, got %d", span, span+1, len(got))
			}
			for i := 1; i < len(got); i++ {
				if got[i].Date.Sub(got[i-1].Date) != 24*time.Hour {
					t.Fatalf("span %d: gap or duplicate between %s and %s", span, got[i-1].Date, got[i].Date)
				}
			}
		}
	})

	t.Run("single day range", func(t *testing.T) {
		d := day(2024, time.March, 10)
		got := FillMissingDays([]DailyPoint{{Date: d, Income: 1}}, d, d)
		if len(got) != 1 || got[0].Income != 1 {
			t.Errorf("expected one point with income 1, got %+v", got)
		}
	})

	t.Run("inverted range yields empty series", func(t *testing.T) {
		got := FillMissingDays([]DailyPoint{{Date: day(2024, time.March, 10), Income: 1}},
			day(2024, time.March, 11), day(2024, time.March, 10))
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil series, got %#v", got)
		}
	})

	t.Run("time of day is ignored when matching", func(t *testing.T) {
		start := time.Date(2024, time.May, 1, 18, 30, 0, 0, time.UTC)
		end := time.Date(2024, time.May, 2, 7, 0, 0, 0, time.UTC)
		sparse := []DailyPoint{{Date: time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC), Expenses: -9}}

		got := FillMissingDays(sparse, start, end)

		if len(got) != 2 {
			t.Fatalf("expected 2 points, got %d", len(got))
		}
		if got[1].Expenses != -9 {
			t.Errorf("expected May 2 expenses -9, got %+v", got[1])
		}
	})

	t.Run("points outside the range are dropped", func(t *testing.T) {
		start := day(2024, time.May, 1)
		end := day(2024, time.May, 2)
		sparse := []DailyPoint{{Date: day(2024, time.April, 30), Income: 10}}

		got := FillMissingDays(sparse, start, end)

		for _, point := range got {
			if point.Income != 0 {
				t.Errorf("unexpected income on %s", point.Date)
			}
		}
	})
}

func TestBuildSummary(t *testing.T) {
	period := valueobject.NewPeriod(day(2024, time.March, 1), day(2024, time.March, 3))
	current := AggregatePeriod([]int64{100, -40, -10})
	previous := AggregatePeriod([]int64{50, -50})

	summary := BuildSummary(period, current, previous,
		[]CategoryExpense{{Name: "Food", Amount: -40}, {Name: "Fuel", Amount: -10}},
		[]DailyPoint{{Date: day(2024, time.March, 2), Income: 100, Expenses: -50}},
	)

	if summary.RemainingAmount != 50 || summary.IncomeAmount != 100 || summary.ExpensesAmount != -50 {
		t.Errorf("unexpected amounts: %+v", summary)
	}
	if summary.IncomeChange != 100 {
		t.Errorf("expected income change 100, got %v", summary.IncomeChange)
	}
	if summary.ExpensesChange != 0 {
		t.Errorf("expected expenses change 0, got %v", summary.ExpensesChange)
	}
	if summary.RemainingChange != 100 {
		t.Errorf("expected remaining change 100, got %v", summary.RemainingChange)
	}
	if len(summary.Categories) != 2 || summary.Categories[0].Name != "Food" {
		t.Errorf("unexpected categories: %+v", summary.Categories)
	}
	if len(summary.Days) != 3 || summary.Days[1].Income != 100 {
		t.Errorf("unexpected days: %+v", summary.Days)
	}
}

func assertShares(t *testing.T, expected, got []CategoryShare) {
	t.Helper()
	if len(expected) != len(got) {
		t.Fatalf("expected %d shares, got %d: %+v", len(expected), len(got), got)
	}
	for i := range expected {
		if expected[i] != got[i] {
			t.Errorf("share %d: expected %+v, got %+v", i, expected[i], got[i])
		}
	}
}
