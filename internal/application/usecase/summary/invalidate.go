package summary

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// InvalidateCache drops the cached summaries of a user after a ledger write.
// Failures are logged; the write itself has already succeeded.
func InvalidateCache(ctx context.Context, cache adapter.SummaryCache, userID string) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate summary cache", "user_id", userID, "error", err)
	}
}
