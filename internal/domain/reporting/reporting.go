// Package reporting implements the pure computations behind the dashboard summary:
// period aggregation, period-over-period change, category rollup and daily series filling.
package reporting

import (
	"sort"
	"time"

	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

const (
	// DefaultTopCategories is the number of categories kept verbatim by RollupCategories.
	DefaultTopCategories = 3

	// OtherCategoryName labels the bucket that collects the remaining categories.
	OtherCategoryName = "Other"
)

// PeriodAggregate holds income, expense and net totals in miliunits.
// Expenses is the (non-positive) sum of negative amounts.
type PeriodAggregate struct {
	Income    int64
	Expenses  int64
	Remaining int64
}

// CategoryExpense is an expense amount attributed to a named category.
// Amount may be signed; only its absolute value is used.
type CategoryExpense struct {
	Name   string
	Amount int64
}

// CategoryShare is the total absolute expense value for one category.
type CategoryShare struct {
	Name  string
	Value int64
}

// DailyPoint holds income and expense totals for a single calendar day.
type DailyPoint struct {
	Date     time.Time
	Income   int64
	Expenses int64
}

// AggregatePeriod sums signed amounts into income (>= 0), expenses (< 0) and the net remaining.
func AggregatePeriod(amounts []int64) PeriodAggregate {
	var aggregate PeriodAggregate
	for _, amount := range amounts {
		if amount >= 0 {
			aggregate.Income += amount
		} else {
			aggregate.Expenses += amount
		}
		aggregate.Remaining += amount
	}
	return aggregate
}

// PercentageChange returns the change from previous to current in percent.
// A zero previous value yields 0 when current is also zero and 100 otherwise.
func PercentageChange(current, previous int64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return float64(current-previous) / float64(previous) * 100
}

// RollupCategories groups expenses by category name, ranks the groups by absolute value
// and keeps the first top groups. Remaining groups are summed into a trailing
// OtherCategoryName entry, which is appended last regardless of its value.
// Groups with equal value keep the order in which their names were first seen.
func RollupCategories(expenses []CategoryExpense, top int) []CategoryShare {
	if top < 0 {
		top = 0
	}

	index := make(map[string]int)
	groups := make([]CategoryShare, 0)
	for _, expense := range expenses {
		value := abs(expense.Amount)
		if i, ok := index[expense.Name]; ok {
			groups[i].Value += value
			continue
		}
		index[expense.Name] = len(groups)
		groups = append(groups, CategoryShare{Name: expense.Name, Value: value})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Value > groups[j].Value
	})

	if len(groups) <= top {
		return groups
	}

	var other int64
	for _, group := range groups[top:] {
		other += group.Value
	}

	result := make([]CategoryShare, 0, top+1)
	result = append(result, groups[:top]...)
	result = append(result, CategoryShare{Name: OtherCategoryName, Value: other})
	return result
}

// FillMissingDays expands a sparse series into one point per calendar day of
// [start, end], zero-filling days absent from points. Points outside the range are
// ignored and points sharing a day are summed. An inverted range yields an empty series.
func FillMissingDays(points []DailyPoint, start, end time.Time) []DailyPoint {
	period := valueobject.NewPeriod(start, end)
	days := period.Days()
	if days == 0 {
		return []DailyPoint{}
	}

	byDay := make(map[time.Time]DailyPoint, len(points))
	for _, point := range points {
		day := valueobject.TruncateToDay(point.Date)
		existing := byDay[day]
		existing.Income += point.Income
		existing.Expenses += point.Expenses
		byDay[day] = existing
	}

	series := make([]DailyPoint, 0, days)
	for day := period.Start; !day.After(period.End); day = day.AddDate(0, 0, 1) {
		point := byDay[day]
		series = append(series, DailyPoint{
			Date:     day,
			Income:   point.Income,
			Expenses: point.Expenses,
		})
	}
	return series
}

// Summary is the dashboard payload for one period.
type Summary struct {
	Period          valueobject.Period
	RemainingAmount int64
	RemainingChange float64
	IncomeAmount    int64
	IncomeChange    float64
	ExpensesAmount  int64
	ExpensesChange  float64
	Categories      []CategoryShare
	Days            []DailyPoint
}

// BuildSummary combines the reads for a period and its predecessor into a Summary.
func BuildSummary(
	period valueobject.Period,
	current PeriodAggregate,
	previous PeriodAggregate,
	expenses []CategoryExpense,
	days []DailyPoint,
) *Summary {
	return &Summary{
		Period:          period,
		RemainingAmount: current.Remaining,
		RemainingChange: PercentageChange(current.Remaining, previous.Remaining),
		IncomeAmount:    current.Income,
		IncomeChange:    PercentageChange(current.Income, previous.Income),
		ExpensesAmount:  current.Expenses,
		ExpensesChange:  PercentageChange(current.Expenses, previous.Expenses),
		Categories:      RollupCategories(expenses, DefaultTopCategories),
		Days:            FillMissingDays(days, period.Start, period.End),
	}
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
