package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seniorconnect-sg/community-api/internal/clock"
)

func TestMemoryLimiterAllowsUpToLimit(t *testing.T) {
	now := time.Date(2026, 4, 10, 10, 0, 0, 0, time.UTC)
	l := NewMemory(clock.Fixed{T: now})

	for i := 0; i < 5; i++ {
		ok, err := l.Allow(context.Background(), "user:1:login", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok, "hit %d", i+1)
	}

	ok, err := l.Allow(context.Background(), "user:1:login", 5, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryLimiterKeysAreIndependent(t *testing.T) {
	now := time.Date(2026, 4, 10, 10, 0, 0, 0, time.UTC)
	l := NewMemory(clock.Fixed{T: now})

	ok, err := l.Allow(context.Background(), "user:1:login", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Allow(context.Background(), "user:1:login", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Allow(context.Background(), "user:2:login", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLimiterWindowResets(t *testing.T) {
	start := time.Date(2026, 4, 10, 10, 0, 0, 0, time.UTC)
	clk := &steppingClock{t: start}
	l := NewMemory(clk)

	ok, err := l.Allow(context.Background(), "ip:1.2.3.4:feedback", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Allow(context.Background(), "ip:1.2.3.4:feedback", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	clk.t = start.Add(61 * time.Second)

	ok, err = l.Allow(context.Background(), "ip:1.2.3.4:feedback", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

type steppingClock struct {
	t time.Time
}

func (c *steppingClock) Now() time.Time {
	return c.t
}
