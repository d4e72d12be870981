package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/foodlens/backend/internal/domain"
)

const defaultCleanupInterval = 10 * time.Minute

type entry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is a thread-safe in-memory byte cache with per-entry TTL.
// Expired entries are invisible to Get and removed by a background janitor.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	logger  *zap.Logger
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

// NewMemoryCache creates a cache and starts its janitor. A non-positive
// cleanupInterval uses the 10 minute default.
func NewMemoryCache(logger *zap.Logger, cleanupInterval time.Duration) *MemoryCache {
	if cleanupInterval <= 0 {
		cleanupInterval = defaultCleanupInterval
	}
	c := &MemoryCache{
		entries: make(map[string]entry),
		logger:  logger,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go c.janitor(cleanupInterval)
	return c
}

// Get returns a copy of the stored value or domain.ErrCacheMiss.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !c.now().Before(e.expiresAt) {
		return nil, domain.ErrCacheMiss
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, nil
}

// Set stores a copy of value for ttl. A non-positive ttl deletes the key.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ttl <= 0 {
		delete(c.entries, key)
		return nil
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	c.entries[key] = entry{value: stored, expiresAt: c.now().Add(ttl)}
	return nil
}

// Delete removes key if present.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Size returns the number of stored entries, expired ones included until
// the janitor runs.
func (c *MemoryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the janitor. It is safe to call more than once.
func (c *MemoryCache) Close() {
	c.once.Do(func() { close(c.stop) })
}

func (c *MemoryCache) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := c.evictExpired(); n > 0 {
				c.logger.Debug("evicted expired cache entries", zap.Int("count", n))
			}
		case <-c.stop:
			return
		}
	}
}

func (c *MemoryCache) evictExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	evicted := 0
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
			evicted++
		}
	}
	return evicted
}
