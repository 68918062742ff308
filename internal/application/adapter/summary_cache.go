// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/finance-tracker/ledger/internal/domain/reporting"
)

// SummaryCache stores computed dashboard summaries per user.
type SummaryCache interface {
	// Get returns the cached summary for key, or nil when absent.
	Get(ctx context.Context, userID, key string) (*reporting.Summary, error)

	// Set stores a summary under key for ttl.
	Set(ctx context.Context, userID, key string, summary *reporting.Summary, ttl time.Duration) error

	// Invalidate drops every cached summary of the user.
	Invalidate(ctx context.Context, userID string) error
}
