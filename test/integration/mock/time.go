package mock

import (
	"sync"
	"time"
)

// Time is a controllable clock. Once set it keeps advancing from the chosen instant.
type Time struct {
	mu        sync.RWMutex
	current   time.Time
	updatedAt time.Time
}

func NewTime() *Time {
	now := time.Now().UTC()
	return &Time{current: now, updatedAt: now}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = currentTime
	t.updatedAt = time.Now()
}

func (t *Time) Now() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current.Add(time.Since(t.updatedAt))
}
