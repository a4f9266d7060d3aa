package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_FixedWindow(t *testing.T) {
	m := NewMemory(3, time.Minute)
	defer m.Stop()

	clock := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return clock }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := m.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, _ := m.Allow(ctx, "10.0.0.1")
	assert.False(t, ok)

	ok, _ = m.Allow(ctx, "10.0.0.2")
	assert.True(t, ok)

	clock = clock.Add(time.Minute)
	ok, _ = m.Allow(ctx, "10.0.0.1")
	assert.True(t, ok)
}

func TestMemory_Sweep(t *testing.T) {
	m := NewMemory(1, time.Minute)
	defer m.Stop()

	clock := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return clock }

	_, _ = m.Allow(context.Background(), "a")
	clock = clock.Add(2 * time.Minute)
	m.sweep()

	m.mu.Lock()
	defer m.mu.Unlock()
	assert.Empty(t, m.clients)
}

func TestRedis_FailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	ok, err := NewRedis(client, 1, time.Minute).Allow(context.Background(), "ip")
	assert.Error(t, err)
	assert.True(t, ok)
}
