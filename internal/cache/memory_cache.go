package cache

import (
	"context"
	"sync"
	"time"
)

const defaultJanitorInterval = time.Minute

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

func (e entry[V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryCache is an in-process Cache. A background janitor evicts expired keys.
type MemoryCache[V any] struct {
	mu    sync.RWMutex
	items map[string]entry[V]
	quit  chan struct{}
	once  sync.Once
}

// NewMemoryCache starts a cache whose janitor runs every interval.
func NewMemoryCache[V any](interval time.Duration) *MemoryCache[V] {
	if interval <= 0 {
		interval = defaultJanitorInterval
	}
	mc := &MemoryCache[V]{
		items: make(map[string]entry[V]),
		quit:  make(chan struct{}),
	}
	go mc.janitor(interval)
	return mc
}

// Stop terminates the janitor goroutine.
func (mc *MemoryCache[V]) Stop() {
	mc.once.Do(func() { close(mc.quit) })
}

func (mc *MemoryCache[V]) Get(_ context.Context, key string) (V, error) {
	var zero V

	mc.mu.RLock()
	e, ok := mc.items[key]
	mc.mu.RUnlock()

	if !ok || e.expired(time.Now()) {
		return zero, ErrCacheMiss
	}
	return e.value, nil
}

func (mc *MemoryCache[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	e := entry[V]{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}

	mc.mu.Lock()
	mc.items[key] = e
	mc.mu.Unlock()
	return nil
}

func (mc *MemoryCache[V]) Delete(_ context.Context, key string) error {
	mc.mu.Lock()
	delete(mc.items, key)
	mc.mu.Unlock()
	return nil
}

// Len returns the number of stored keys, expired ones included until the janitor runs.
func (mc *MemoryCache[V]) Len() int {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return len(mc.items)
}

func (mc *MemoryCache[V]) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			mc.mu.Lock()
			for k, e := range mc.items {
				if e.expired(now) {
					delete(mc.items, k)
				}
			}
			mc.mu.Unlock()
		case <-mc.quit:
			return
		}
	}
}
