package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/seniorconnect-sg/community-api/internal/clock"
)

// MemoryLimiter is the single-process fallback. Windows are tracked per
// key and reset lazily on the first hit after expiry.
type MemoryLimiter struct {
	clock clock.Clock

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count   int
	resetAt time.Time
}

func NewMemory(clk clock.Clock) *MemoryLimiter {
	return &MemoryLimiter{
		clock:   clk,
		windows: make(map[string]*window),
	}
}

func (l *MemoryLimiter) Allow(
	_ context.Context,
	key string,
	limit int,
	windowSize time.Duration,
) (bool, error) {

	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(windowSize)}
		l.windows[key] = w
	}

	w.count++
	return w.count <= limit, nil
}
