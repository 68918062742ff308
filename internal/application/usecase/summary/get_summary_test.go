package summary

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/reporting"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

type fakeSummaryRepository struct {
	mu         sync.Mutex
	aggregates map[time.Time]reporting.PeriodAggregate // keyed by period start
	categories []reporting.CategoryExpense
	days       []reporting.DailyPoint
	err        error
	scopes     []Scope
	calls      int
}

func (r *fakeSummaryRepository) record(scope Scope) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scopes = append(r.scopes, scope)
	r.calls++
}

func (r *fakeSummaryRepository) GetPeriodAggregate(_ context.Context, scope Scope) (reporting.PeriodAggregate, error) {
	r.record(scope)
	if r.err != nil {
		return reporting.PeriodAggregate{}, r.err
	}
	return r.aggregates[scope.Period.Start], nil
}

func (r *fakeSummaryRepository) GetCategoryExpenses(_ context.Context, scope Scope) ([]reporting.CategoryExpense, error) {
	r.record(scope)
	return r.categories, r.err
}

func (r *fakeSummaryRepository) GetDailyTotals(_ context.Context, scope Scope) ([]reporting.DailyPoint, error) {
	r.record(scope)
	return r.days, r.err
}

type fakeAccountRepository struct {
	accounts map[uuid.UUID]*entity.Account
}

func (r *fakeAccountRepository) Create(context.Context, *entity.Account) error { return nil }

func (r *fakeAccountRepository) FindByIDAndUser(_ context.Context, id uuid.UUID, userID string) (*entity.Account, error) {
	account, ok := r.accounts[id]
	if !ok || account.UserID != userID {
		return nil, domainerror.ErrAccountNotFound
	}
	return account, nil
}

func (r *fakeAccountRepository) FindByUser(context.Context, string) ([]*entity.Account, error) {
	return nil, nil
}

func (r *fakeAccountRepository) ExistsByNameAndUser(context.Context, string, string) (bool, error) {
	return false, nil
}

func (r *fakeAccountRepository) Update(context.Context, *entity.Account) error { return nil }

func (r *fakeAccountRepository) Delete(context.Context, uuid.UUID, string) error { return nil }

func (r *fakeAccountRepository) BulkDelete(context.Context, []uuid.UUID, string) (int64, error) {
	return 0, nil
}

type fakeSummaryCache struct {
	entries map[string]*reporting.Summary
	getErr  error
	sets    int
}

func (c *fakeSummaryCache) Get(_ context.Context, userID, key string) (*reporting.Summary, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[userID+"|"+key], nil
}

func (c *fakeSummaryCache) Set(_ context.Context, userID, key string, summary *reporting.Summary, _ time.Duration) error {
	if c.entries == nil {
		c.entries = make(map[string]*reporting.Summary)
	}
	c.entries[userID+"|"+key] = summary
	c.sets++
	return nil
}

func (c *fakeSummaryCache) Invalidate(context.Context, string) error {
	c.entries = nil
	return nil
}

func fixedClock() time.Time {
	return time.Date(2024, time.March, 31, 9, 30, 0, 0, time.UTC)
}

func date(month time.Month, day int) time.Time {
	return time.Date(2024, month, day, 0, 0, 0, 0, time.UTC)
}

func newUseCase(repo *fakeSummaryRepository, accounts *fakeAccountRepository, cache *fakeSummaryCache) *GetSummaryUseCase {
	if accounts == nil {
		accounts = &fakeAccountRepository{}
	}
	var summaryCache adapter.SummaryCache
	if cache != nil {
		summaryCache = cache
	}
	return NewGetSummaryUseCase(repo, accounts, summaryCache, Options{
		CacheTTL:          time.Minute,
		DefaultWindowDays: 30,
		Now:               fixedClock,
	})
}

func TestGetSummaryUseCase_Execute(t *testing.T) {
	t.Run("compares against the preceding period of equal length", func(t *testing.T) {
		repo := &fakeSummaryRepository{
			aggregates: map[time.Time]reporting.PeriodAggregate{
				date(time.March, 11): {Income: 150, Expenses: -60, Remaining: 90},
				date(time.March, 1):  {Income: 100, Expenses: -40, Remaining: 60},
			},
		}
		uc := newUseCase(repo, nil, &fakeSummaryCache{})

		output, err := uc.Execute(context.Background(), GetSummaryInput{
			UserID: "user_1",
			From:   "11-03-2024",
			To:     "20-03-2024",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var sawPrevious bool
		for _, scope := range repo.scopes {
			if scope.Period.Start.Equal(date(time.March, 1)) {
				sawPrevious = true
				if !scope.Period.End.Equal(date(time.March, 10)) {
					t.Errorf("expected previous period to end on Mar 10, got %s", scope.Period.End)
				}
			}
		}
		if !sawPrevious {
			t.Fatalf("expected a read for the previous period, scopes: %+v", repo.scopes)
		}

		summary := output.Summary
		if summary.IncomeChange != 50 {
			t.Errorf("expected income change 50, got %v", summary.IncomeChange)
		}
		if summary.ExpensesChange != 50 {
			t.Errorf("expected expenses change 50, got %v", summary.ExpensesChange)
		}
		if summary.RemainingChange != 50 {
			t.Errorf("expected remaining change 50, got %v", summary.RemainingChange)
		}
		if len(summary.Days) != 10 {
			t.Errorf("expected 10 days, got %d", len(summary.Days))
		}
	})

	t.Run("issues four reads for the user scope", func(t *testing.T) {
		repo := &fakeSummaryRepository{}
		uc := newUseCase(repo, nil, nil)

		if _, err := uc.Execute(context.Background(), GetSummaryInput{UserID: "user_1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.calls != 4 {
			t.Errorf("expected 4 repository reads, got %d", repo.calls)
		}
		for _, scope := range repo.scopes {
			if scope.UserID != "user_1" || scope.AccountID != nil {
				t.Errorf("unexpected scope %+v", scope)
			}
		}
	})

	t.Run("defaults to the window ending today", func(t *testing.T) {
		repo := &fakeSummaryRepository{}
		uc := newUseCase(repo, nil, nil)

		output, err := uc.Execute(context.Background(), GetSummaryInput{UserID: "user_1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := valueobject.NewPeriod(date(time.March, 1), date(time.March, 31))
		if output.Summary.Period != expected {
			t.Errorf("expected period %s, got %s", expected, output.Summary.Period)
		}
		if len(output.Summary.Days) != 31 {
			t.Errorf("expected 31 days, got %d", len(output.Summary.Days))
		}
	})

	t.Run("empty ledger yields zeros and empty lists", func(t *testing.T) {
		uc := newUseCase(&fakeSummaryRepository{}, nil, nil)

		output, err := uc.Execute(context.Background(), GetSummaryInput{UserID: "user_1", From: "01-03-2024", To: "02-03-2024"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		summary := output.Summary
		if summary.IncomeAmount != 0 || summary.ExpensesAmount != 0 || summary.RemainingAmount != 0 {
			t.Errorf("expected zero amounts, got %+v", summary)
		}
		if summary.IncomeChange != 0 || summary.ExpensesChange != 0 || summary.RemainingChange != 0 {
			t.Errorf("expected zero changes, got %+v", summary)
		}
		if len(summary.Categories) != 0 {
			t.Errorf("expected no categories, got %+v", summary.Categories)
		}
		for _, day := range summary.Days {
			if day.Income != 0 || day.Expenses != 0 {
				t.Errorf("expected zero day, got %+v", day)
			}
		}
	})

	t.Run("inverted range yields empty days", func(t *testing.T) {
		uc := newUseCase(&fakeSummaryRepository{}, nil, nil)

		output, err := uc.Execute(context.Background(), GetSummaryInput{UserID: "user_1", From: "10-03-2024", To: "01-03-2024"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Summary.Days) != 0 {
			t.Errorf("expected no days, got %d", len(output.Summary.Days))
		}
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		uc := newUseCase(&fakeSummaryRepository{}, nil, nil)

		_, err := uc.Execute(context.Background(), GetSummaryInput{UserID: "user_1", From: "2024-03-01"})

		var summaryErr *domainerror.SummaryError
		if !errors.As(err, &summaryErr) {
			t.Fatalf("expected SummaryError, got %v", err)
		}
		if summaryErr.Code != domainerror.ErrCodeInvalidDateFormat {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidDateFormat, summaryErr.Code)
		}
	})

	t.Run("period longer than the cap is rejected before any read", func(t *testing.T) {
		repo := &fakeSummaryRepository{}
		uc := newUseCase(repo, nil, nil)

		_, err := uc.Execute(context.Background(), GetSummaryInput{UserID: "user_1", From: "01-01-1000", To: "31-12-1999"})

		var summaryErr *domainerror.SummaryError
		if !errors.As(err, &summaryErr) {
			t.Fatalf("expected SummaryError, got %v", err)
		}
		if summaryErr.Code != domainerror.ErrCodeInvalidDateFormat {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidDateFormat, summaryErr.Code)
		}
		if repo.calls != 0 {
			t.Errorf("expected no repository reads, got %d", repo.calls)
		}
	})

	t.Run("foreign account is reported as not found", func(t *testing.T) {
		accountID := uuid.New()
		accounts := &fakeAccountRepository{accounts: map[uuid.UUID]*entity.Account{
			accountID: {ID: accountID, Name: "Checking", UserID: "user_2"},
		}}
		repo := &fakeSummaryRepository{}
		uc := newUseCase(repo, accounts, nil)

		_, err := uc.Execute(context.Background(), GetSummaryInput{UserID: "user_1", AccountID: &accountID})

		var accountErr *domainerror.AccountError
		if !errors.As(err, &accountErr) {
			t.Fatalf("expected AccountError, got %v", err)
		}
		if accountErr.Code != domainerror.ErrCodeAccountNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeAccountNotFound, accountErr.Code)
		}
		if repo.calls != 0 {
			t.Errorf("expected no repository reads, got %d", repo.calls)
		}
	})

	t.Run("owned account narrows every read", func(t *testing.T) {
		accountID := uuid.New()
		accounts := &fakeAccountRepository{accounts: map[uuid.UUID]*entity.Account{
			accountID: {ID: accountID, Name: "Checking", UserID: "user_1"},
		}}
		repo := &fakeSummaryRepository{}
		uc := newUseCase(repo, accounts, nil)

		if _, err := uc.Execute(context.Background(), GetSummaryInput{UserID: "user_1", AccountID: &accountID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, scope := range repo.scopes {
			if scope.AccountID == nil || *scope.AccountID != accountID {
				t.Errorf("expected account %s in scope, got %+v", accountID, scope)
			}
		}
	})

	t.Run("repository failure is returned", func(t *testing.T) {
		repo := &fakeSummaryRepository{err: errors.New("connection reset")}
		uc := newUseCase(repo, nil, nil)

		if _, err := uc.Execute(context.Background(), GetSummaryInput{UserID: "user_1"}); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("second call is served from cache", func(t *testing.T) {
		repo := &fakeSummaryRepository{}
		cache := &fakeSummaryCache{}
		uc := newUseCase(repo, nil, cache)
		input := GetSummaryInput{UserID: "user_1", From: "01-03-2024", To: "07-03-2024"}

		first, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.FromCache {
			t.Error("expected first call to miss the cache")
		}
		callsAfterFirst := repo.calls

		second, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !second.FromCache {
			t.Error("expected second call to hit the cache")
		}
		if repo.calls != callsAfterFirst {
			t.Errorf("expected no new repository reads, got %d", repo.calls-callsAfterFirst)
		}
		if cache.sets != 1 {
			t.Errorf("expected 1 cache write, got %d", cache.sets)
		}
	})

	t.Run("cache failure falls back to the repository", func(t *testing.T) {
		repo := &fakeSummaryRepository{}
		uc := newUseCase(repo, nil, &fakeSummaryCache{getErr: errors.New("redis down")})

		output, err := uc.Execute(context.Background(), GetSummaryInput{UserID: "user_1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.FromCache || repo.calls != 4 {
			t.Errorf("expected recomputation, fromCache=%v calls=%d", output.FromCache, repo.calls)
		}
	})
}
