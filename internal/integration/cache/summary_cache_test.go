package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/reporting"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

func newTestCache(t *testing.T) (adapter.SummaryCache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSummaryCache(client), server
}

func sampleSummary() *reporting.Summary {
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	period := valueobject.NewPeriod(start, start.AddDate(0, 0, 1))
	return &reporting.Summary{
		Period:          period,
		RemainingAmount: 5000,
		RemainingChange: 25,
		IncomeAmount:    10000,
		ExpensesAmount:  -5000,
		ExpensesChange:  -100,
		Categories:      []reporting.CategoryShare{{Name: "Food", Value: 5000}},
		Days: []reporting.DailyPoint{
			{Date: start, Income: 10000, Expenses: -5000},
			{Date: start.AddDate(0, 0, 1)},
		},
	}
}

func TestSummaryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("returns nil on a miss", func(t *testing.T) {
		cache, _ := newTestCache(t)
		got, err := cache.Get(ctx, "user-1", "all:2024-03-01:2024-03-02")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("returns what was stored", func(t *testing.T) {
		cache, _ := newTestCache(t)
		want := sampleSummary()
		if err := cache.Set(ctx, "user-1", "k", want, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := cache.Get(ctx, "user-1", "k")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil {
			t.Fatal("expected a cached summary")
		}
		if got.RemainingAmount != want.RemainingAmount || got.ExpensesChange != want.ExpensesChange {
			t.Errorf("expected %+v, got %+v", want, got)
		}
		if len(got.Days) != 2 || !got.Days[0].Date.Equal(want.Days[0].Date) {
			t.Errorf("expected days to survive encoding, got %+v", got.Days)
		}
		if !got.Period.Start.Equal(want.Period.Start) {
			t.Errorf("expected period start %v, got %v", want.Period.Start, got.Period.Start)
		}
	})

	t.Run("invalidate hides entries of that user only", func(t *testing.T) {
		cache, _ := newTestCache(t)
		_ = cache.Set(ctx, "user-1", "k", sampleSummary(), time.Minute)
		_ = cache.Set(ctx, "user-2", "k", sampleSummary(), time.Minute)

		if err := cache.Invalidate(ctx, "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got, _ := cache.Get(ctx, "user-1", "k"); got != nil {
			t.Error("expected user-1 entry to be invalidated")
		}
		if got, _ := cache.Get(ctx, "user-2", "k"); got == nil {
			t.Error("expected user-2 entry to survive")
		}
	})

	t.Run("entries expire after ttl", func(t *testing.T) {
		cache, server := newTestCache(t)
		_ = cache.Set(ctx, "user-1", "k", sampleSummary(), time.Minute)
		server.FastForward(2 * time.Minute)
		if got, _ := cache.Get(ctx, "user-1", "k"); got != nil {
			t.Error("expected entry to expire")
		}
	})

	t.Run("surfaces connection errors", func(t *testing.T) {
		cache, server := newTestCache(t)
		server.Close()
		if _, err := cache.Get(ctx, "user-1", "k"); err == nil {
			t.Error("expected an error when redis is down")
		}
	})
}
