// internal/cache/memory.go
package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// DefaultCleanupFreq is used when a non-positive cleanup interval is given
const DefaultCleanupFreq = time.Minute

// InMemoryCache is a TTL map guarded by a mutex. Expired entries are never
// returned; a background loop started by StartCleanup removes them. When
// maxEntries is positive the map never holds more than that many entries.
type InMemoryCache struct {
	mu          sync.RWMutex
	items       map[string]entry
	ttl         time.Duration
	cleanupFreq time.Duration
	maxEntries  int
	now         func() time.Time

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// NewInMemoryCache creates a cache whose entries live for ttl. A maxEntries
// of zero or less leaves the cache unbounded.
func NewInMemoryCache(ttl, cleanupFreq time.Duration, maxEntries int) *InMemoryCache {
	if cleanupFreq <= 0 {
		cleanupFreq = DefaultCleanupFreq
	}

	return &InMemoryCache{
		items:       make(map[string]entry),
		ttl:         ttl,
		cleanupFreq: cleanupFreq,
		maxEntries:  maxEntries,
		now:         time.Now,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Set stores value under key, replacing any previous entry. A new key added
// to a full cache first drops expired entries, then the entry closest to
// expiry.
func (c *InMemoryCache) Set(ctx context.Context, key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if _, exists := c.items[key]; !exists && c.maxEntries > 0 && len(c.items) >= c.maxEntries {
		c.deleteExpired(now)
		if len(c.items) >= c.maxEntries {
			c.evictOldest()
		}
	}

	c.items[key] = entry{value: value, expiresAt: now.Add(c.ttl)}
}

// Get returns the value for key if present and not expired
func (c *InMemoryCache) Get(ctx context.Context, key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.items[key]
	if !ok || !c.now().Before(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Delete removes key
func (c *InMemoryCache) Delete(ctx context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Len returns the number of stored entries, including expired ones not yet swept
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// DeleteExpired removes every expired entry
func (c *InMemoryCache) DeleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleteExpired(c.now())
}

func (c *InMemoryCache) deleteExpired(now time.Time) {
	for k, e := range c.items {
		if !now.Before(e.expiresAt) {
			delete(c.items, k)
		}
	}
}

// evictOldest removes the entry that expires first. Every entry shares the
// same ttl, so that is also the least recently written one.
func (c *InMemoryCache) evictOldest() {
	var (
		oldestKey string
		oldest    time.Time
		found     bool
	)
	for k, e := range c.items {
		if !found || e.expiresAt.Before(oldest) {
			oldestKey, oldest, found = k, e.expiresAt, true
		}
	}
	if found {
		delete(c.items, oldestKey)
	}
}

// StartCleanup runs DeleteExpired every cleanupFreq until ctx is done or
// StopCleanup is called
func (c *InMemoryCache) StartCleanup(ctx context.Context) {
	go func() {
		defer close(c.done)

		ticker := time.NewTicker(c.cleanupFreq)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.DeleteExpired()
			case <-c.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// StopCleanup stops the cleanup loop and waits for it to exit. It must only
// be called after StartCleanup.
func (c *InMemoryCache) StopCleanup() {
	c.once.Do(func() {
		close(c.stop)
	})
	<-c.done
}
