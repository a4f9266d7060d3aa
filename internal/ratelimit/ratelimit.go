// Package ratelimit counts requests per key in fixed windows.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

type Limiter interface {
	// Allow records one hit for key and reports whether it is within the
	// limit for the current window.
	Allow(ctx context.Context, key string) (bool, error)
}

// ======================================================
// REDIS
// ======================================================

// Redis shares counters across every API instance.
type Redis struct {
	client *redis.Client
	max    int64
	window time.Duration
	prefix string
}

func NewRedis(client *redis.Client, max int, window time.Duration) *Redis {
	return &Redis{client: client, max: int64(max), window: window, prefix: "ratelimit:"}
}

func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	k := r.prefix + key

	n, err := r.client.Incr(ctx, k).Result()
	if err != nil {
		return true, err
	}
	if n == 1 {
		if err := r.client.Expire(ctx, k, r.window).Err(); err != nil {
			return true, err
		}
	}
	return n <= r.max, nil
}

// ======================================================
// MEMORY
// ======================================================

type window struct {
	start time.Time
	hits  int
}

// Memory keeps counters in process. Stale keys are swept periodically
// until Stop is called.
type Memory struct {
	mu      sync.Mutex
	clients map[string]*window
	max     int
	window  time.Duration
	now     func() time.Time

	stopCleanup  chan struct{}
	shutdownOnce sync.Once
}

func NewMemory(max int, win time.Duration) *Memory {
	m := &Memory{
		clients:     make(map[string]*window),
		max:         max,
		window:      win,
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go m.startCleanup()
	return m
}

func (m *Memory) Allow(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	w, ok := m.clients[key]
	if !ok || now.Sub(w.start) >= m.window {
		m.clients[key] = &window{start: now, hits: 1}
		return 1 <= m.max, nil
	}

	w.hits++
	return w.hits <= m.max, nil
}

func (m *Memory) startCleanup() {
	ticker := time.NewTicker(m.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep()
		case <-m.stopCleanup:
			return
		}
	}
}

func (m *Memory) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-m.window)
	for key, w := range m.clients {
		if w.start.Before(cutoff) {
			delete(m.clients, key)
		}
	}
}

func (m *Memory) Stop() {
	m.shutdownOnce.Do(func() { close(m.stopCleanup) })
}
