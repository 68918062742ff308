package summary

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/reporting"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// Scope selects the transactions a summary read looks at.
// AccountID narrows the user's transactions to one account; it never widens them.
type Scope struct {
	UserID    string
	AccountID *uuid.UUID
	Period    valueobject.Period
}

// SummaryRepository defines the read operations behind the dashboard summary.
type SummaryRepository interface {
	// GetPeriodAggregate returns income, expense and net totals for the scope.
	// An empty scope yields a zero aggregate.
	GetPeriodAggregate(ctx context.Context, scope Scope) (reporting.PeriodAggregate, error)

	// GetCategoryExpenses returns expense totals grouped by category name.
	// Uncategorized expenses are not included.
	GetCategoryExpenses(ctx context.Context, scope Scope) ([]reporting.CategoryExpense, error)

	// GetDailyTotals returns income and expense totals for each day with transactions,
	// in ascending date order.
	GetDailyTotals(ctx context.Context, scope Scope) ([]reporting.DailyPoint, error)
}
