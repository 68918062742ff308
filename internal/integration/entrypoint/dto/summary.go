package dto

import (
	"github.com/finance-tracker/ledger/internal/domain/reporting"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// SummaryResponse is the dashboard summary payload. Amounts are miliunits and
// changes are percentages. The expansesChange key is kept for existing clients.
type SummaryResponse struct {
	From            string                  `json:"from"`
	To              string                  `json:"to"`
	RemainingAmount int64                   `json:"remainingAmount"`
	RemainingChange float64                 `json:"remainingChange"`
	IncomeAmount    int64                   `json:"incomeAmount"`
	IncomeChange    float64                 `json:"incomeChange"`
	ExpensesAmount  int64                   `json:"expensesAmount"`
	ExpensesChange  float64                 `json:"expansesChange"`
	Categories      []CategoryShareResponse `json:"categories"`
	Days            []DailyPointResponse    `json:"days"`
}

// CategoryShareResponse is one slice of the category chart.
type CategoryShareResponse struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// DailyPointResponse is one day of the activity chart.
type DailyPointResponse struct {
	Date     string `json:"date"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
}

// ToSummaryResponse converts a reporting Summary to its DTO.
func ToSummaryResponse(summary *reporting.Summary) SummaryResponse {
	categories := make([]CategoryShareResponse, len(summary.Categories))
	for i, c := range summary.Categories {
		categories[i] = CategoryShareResponse{Name: c.Name, Value: c.Value}
	}
	days := make([]DailyPointResponse, len(summary.Days))
	for i, d := range summary.Days {
		days[i] = DailyPointResponse{
			Date:     valueobject.FormatDate(d.Date),
			Income:   d.Income,
			Expenses: d.Expenses,
		}
	}
	return SummaryResponse{
		From:            valueobject.FormatDate(summary.Period.Start),
		To:              valueobject.FormatDate(summary.Period.End),
		RemainingAmount: summary.RemainingAmount,
		RemainingChange: summary.RemainingChange,
		IncomeAmount:    summary.IncomeAmount,
		IncomeChange:    summary.IncomeChange,
		ExpensesAmount:  summary.ExpensesAmount,
		ExpensesChange:  summary.ExpensesChange,
		Categories:      categories,
		Days:            days,
	}
}
