// Package summary contains the dashboard summary use case.
package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/reporting"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// DefaultWindowDays is the look-back used when the caller does not bound the period.
const DefaultWindowDays = 30

// Options configures the GetSummaryUseCase.
type Options struct {
	CacheTTL          time.Duration
	DefaultWindowDays int
	Now               func() time.Time
}

// GetSummaryInput represents the input for computing a dashboard summary.
// From and To are optional dd-MM-yyyy dates.
type GetSummaryInput struct {
	UserID    string
	AccountID *uuid.UUID
	From      string
	To        string
}

// GetSummaryOutput represents the output of computing a dashboard summary.
type GetSummaryOutput struct {
	Summary   *reporting.Summary
	FromCache bool
}

// GetSummaryUseCase computes income, expense and net figures for a period, their change
// against the preceding period of equal length, the top expense categories and a daily series.
type GetSummaryUseCase struct {
	summaryRepo SummaryRepository
	accountRepo adapter.AccountRepository
	cache       adapter.SummaryCache
	options     Options
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	summaryRepo SummaryRepository,
	accountRepo adapter.AccountRepository,
	cache adapter.SummaryCache,
	options Options,
) *GetSummaryUseCase {
	if options.DefaultWindowDays <= 0 {
		options.DefaultWindowDays = DefaultWindowDays
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	return &GetSummaryUseCase{
		summaryRepo: summaryRepo,
		accountRepo: accountRepo,
		cache:       cache,
		options:     options,
	}
}

// Execute computes the summary for the requested scope.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	period, err := valueobject.ResolvePeriod(input.From, input.To, uc.options.Now().UTC(), uc.options.DefaultWindowDays)
	if err != nil {
		message := "from and to must be dates in dd-MM-yyyy format"
		if errors.Is(err, valueobject.ErrPeriodTooLong) {
			message = fmt.Sprintf("period must not exceed %d days", valueobject.MaxPeriodDays)
		}
		return nil, domainerror.NewSummaryError(domainerror.ErrCodeInvalidDateFormat, message, domainerror.ErrInvalidDateFormat)
	}

	// A foreign account must look exactly like a missing one.
	if input.AccountID != nil {
		if _, err := uc.accountRepo.FindByIDAndUser(ctx, *input.AccountID, input.UserID); err != nil {
			if errors.Is(err, domainerror.ErrAccountNotFound) {
				return nil, domainerror.NewAccountError(
					domainerror.ErrCodeAccountNotFound,
					"account not found",
					domainerror.ErrAccountNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find account: %w", err)
		}
	}

	key := cacheKey(input.AccountID, period)
	if cached := uc.readCache(ctx, input.UserID, key); cached != nil {
		return &GetSummaryOutput{Summary: cached, FromCache: true}, nil
	}

	current := Scope{UserID: input.UserID, AccountID: input.AccountID, Period: period}
	previous := Scope{UserID: input.UserID, AccountID: input.AccountID, Period: period.Previous()}

	var (
		currentAggregate  reporting.PeriodAggregate
		previousAggregate reporting.PeriodAggregate
		categoryExpenses  []reporting.CategoryExpense
		dailyTotals       []reporting.DailyPoint
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		aggregate, err := uc.summaryRepo.GetPeriodAggregate(gctx, current)
		if err != nil {
			return fmt.Errorf("failed to aggregate current period: %w", err)
		}
		currentAggregate = aggregate
		return nil
	})
	g.Go(func() error {
		aggregate, err := uc.summaryRepo.GetPeriodAggregate(gctx, previous)
		if err != nil {
			return fmt.Errorf("failed to aggregate previous period: %w", err)
		}
		previousAggregate = aggregate
		return nil
	})
	g.Go(func() error {
		expenses, err := uc.summaryRepo.GetCategoryExpenses(gctx, current)
		if err != nil {
			return fmt.Errorf("failed to get category expenses: %w", err)
		}
		categoryExpenses = expenses
		return nil
	})
	g.Go(func() error {
		days, err := uc.summaryRepo.GetDailyTotals(gctx, current)
		if err != nil {
			return fmt.Errorf("failed to get daily totals: %w", err)
		}
		dailyTotals = days
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := reporting.BuildSummary(period, currentAggregate, previousAggregate, categoryExpenses, dailyTotals)
	uc.writeCache(ctx, input.UserID, key, summary)

	return &GetSummaryOutput{Summary: summary}, nil
}

// readCache returns nil on a miss. Cache failures only degrade to a recomputation.
func (uc *GetSummaryUseCase) readCache(ctx context.Context, userID, key string) *reporting.Summary {
	if uc.cache == nil {
		return nil
	}
	summary, err := uc.cache.Get(ctx, userID, key)
	if err != nil {
		slog.Warn("Failed to read summary cache", "user_id", userID, "key", key, "error", err)
		return nil
	}
	return summary
}

func (uc *GetSummaryUseCase) writeCache(ctx context.Context, userID, key string, summary *reporting.Summary) {
	if uc.cache == nil || uc.options.CacheTTL <= 0 {
		return
	}
	if err := uc.cache.Set(ctx, userID, key, summary, uc.options.CacheTTL); err != nil {
		slog.Warn("Failed to write summary cache", "user_id", userID, "key", key, "error", err)
	}
}

func cacheKey(accountID *uuid.UUID, period valueobject.Period) string {
	account := "all"
	if accountID != nil {
		account = accountID.String()
	}
	return fmt.Sprintf("%s:%s:%s", account, period.Start.Format("2006-01-02"), period.End.Format("2006-01-02"))
}
