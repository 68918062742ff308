package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/usecase/summary"
	"github.com/finance-tracker/ledger/internal/domain/reporting"
)

// summaryRepository implements the summary.SummaryRepository interface.
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new summary repository instance.
func NewSummaryRepository(db *gorm.DB) summary.SummaryRepository {
	return &summaryRepository{
		db: db,
	}
}

// scopeFilter renders the FROM and WHERE clauses shared by every summary read.
// Transactions are reached only through accounts owned by the user.
func scopeFilter(scope summary.Scope, extraJoins ...string) (string, []interface{}) {
	var b strings.Builder
	b.WriteString(`
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id AND a.deleted_at IS NULL`)
	for _, join := range extraJoins {
		b.WriteString("\n\t\t")
		b.WriteString(join)
	}
	b.WriteString(`
		WHERE a.user_id = ?
			AND t.deleted_at IS NULL
			AND t.date >= ?
			AND t.date <= ?`)

	args := []interface{}{scope.UserID, scope.Period.Start, scope.Period.End}
	if scope.AccountID != nil {
		b.WriteString("\n\t\t\tAND t.account_id = ?")
		args = append(args, *scope.AccountID)
	}
	return b.String(), args
}

// GetPeriodAggregate returns income, expense and net totals for the scope.
func (r *summaryRepository) GetPeriodAggregate(ctx context.Context, scope summary.Scope) (reporting.PeriodAggregate, error) {
	var result struct {
		Income    int64 `gorm:"column:income"`
		Expenses  int64 `gorm:"column:expenses"`
		Remaining int64 `gorm:"column:remaining"`
	}

	from, args := scopeFilter(scope)
	query := `
		SELECT
			CAST(COALESCE(SUM(CASE WHEN t.amount >= 0 THEN t.amount ELSE 0 END), 0) AS BIGINT) as income,
			CAST(COALESCE(SUM(CASE WHEN t.amount < 0 THEN t.amount ELSE 0 END), 0) AS BIGINT) as expenses,
			CAST(COALESCE(SUM(t.amount), 0) AS BIGINT) as remaining` + from

	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&result).Error; err != nil {
		return reporting.PeriodAggregate{}, fmt.Errorf("failed to get period aggregate: %w", err)
	}

	return reporting.PeriodAggregate{
		Income:    result.Income,
		Expenses:  result.Expenses,
		Remaining: result.Remaining,
	}, nil
}

// GetCategoryExpenses returns expense totals grouped by category name.
func (r *summaryRepository) GetCategoryExpenses(ctx context.Context, scope summary.Scope) ([]reporting.CategoryExpense, error) {
	var results []struct {
		Name   string `gorm:"column:name"`
		Amount int64  `gorm:"column:amount"`
	}

	from, args := scopeFilter(scope,
		"JOIN categories c ON c.id = t.category_id AND c.deleted_at IS NULL")
	query := `
		SELECT
			c.name as name,
			CAST(SUM(ABS(t.amount)) AS BIGINT) as amount` + from + `
			AND t.amount < 0
		GROUP BY c.name
		ORDER BY c.name`

	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to get category expenses: %w", err)
	}

	expenses := make([]reporting.CategoryExpense, len(results))
	for i, res := range results {
		expenses[i] = reporting.CategoryExpense{
			Name:   res.Name,
			Amount: res.Amount,
		}
	}
	return expenses, nil
}

// GetDailyTotals returns income and expense totals for each day with transactions.
func (r *summaryRepository) GetDailyTotals(ctx context.Context, scope summary.Scope) ([]reporting.DailyPoint, error) {
	var results []struct {
		Date     time.Time `gorm:"column:date"`
		Income   int64     `gorm:"column:income"`
		Expenses int64     `gorm:"column:expenses"`
	}

	from, args := scopeFilter(scope)
	query := `
		SELECT
			t.date as date,
			CAST(SUM(CASE WHEN t.amount >= 0 THEN t.amount ELSE 0 END) AS BIGINT) as income,
			CAST(SUM(CASE WHEN t.amount < 0 THEN t.amount ELSE 0 END) AS BIGINT) as expenses` + from + `
		GROUP BY t.date
		ORDER BY t.date`

	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to get daily totals: %w", err)
	}

	days := make([]reporting.DailyPoint, len(results))
	for i, res := range results {
		days[i] = reporting.DailyPoint{
			Date:     res.Date.UTC(),
			Income:   res.Income,
			Expenses: res.Expenses,
		}
	}
	return days, nil
}
