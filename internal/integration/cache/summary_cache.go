// Package cache implements the summary cache on top of Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/reporting"
)

const keyPrefix = "summary"

// summaryCache implements the adapter.SummaryCache interface.
//
// Entries are namespaced by a per-user generation counter. Invalidation bumps
// the counter so stale entries become unreachable and expire on their own TTL.
type summaryCache struct {
	client *redis.Client
}

// NewSummaryCache creates a new Redis-backed summary cache.
func NewSummaryCache(client *redis.Client) adapter.SummaryCache {
	return &summaryCache{
		client: client,
	}
}

// Get returns the cached summary, or nil when absent.
func (c *summaryCache) Get(ctx context.Context, userID, key string) (*reporting.Summary, error) {
	entryKey, err := c.entryKey(ctx, userID, key)
	if err != nil {
		return nil, err
	}

	payload, err := c.client.Get(ctx, entryKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read summary: %w", err)
	}

	var summary reporting.Summary
	if err := json.Unmarshal(payload, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode summary: %w", err)
	}
	return &summary, nil
}

// Set stores the summary for ttl.
func (c *summaryCache) Set(ctx context.Context, userID, key string, summary *reporting.Summary, ttl time.Duration) error {
	entryKey, err := c.entryKey(ctx, userID, key)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	if err := c.client.Set(ctx, entryKey, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// Invalidate makes every summary cached for the user unreachable.
func (c *summaryCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Incr(ctx, generationKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to bump summary generation: %w", err)
	}
	return nil
}

func (c *summaryCache) entryKey(ctx context.Context, userID, key string) (string, error) {
	generation, err := c.client.Get(ctx, generationKey(userID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("failed to read summary generation: %w", err)
	}
	return fmt.Sprintf("%s:%s:%d:%s", keyPrefix, userID, generation, key), nil
}

func generationKey(userID string) string {
	return fmt.Sprintf("%s:%s:generation", keyPrefix, userID)
}
