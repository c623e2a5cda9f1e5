package chart

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

type cacheEntry struct {
	image     []byte
	expiresAt time.Time
}

// RenderCache keeps rendered chart images in memory for a TTL.
// It only holds image bytes keyed by request parameters; no calculation is stored.
// A nil *RenderCache is valid and caches nothing.
type RenderCache struct {
	mu    sync.RWMutex
	store map[string]cacheEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewRenderCache returns nil when ttl <= 0, which disables caching.
func NewRenderCache(ttl time.Duration) *RenderCache {
	if ttl <= 0 {
		return nil
	}
	return &RenderCache{
		store: make(map[string]cacheEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get returns a copy of the cached image, so callers may modify it freely.
func (c *RenderCache) Get(key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.store[key]
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false
	}
	return append([]byte(nil), entry.image...), true
}

func (c *RenderCache) Set(key string, image []byte) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = cacheEntry{image: append([]byte(nil), image...), expiresAt: c.now().Add(c.ttl)}
}

func (c *RenderCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func (c *RenderCache) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]cacheEntry)
}

// Prune drops expired entries.
func (c *RenderCache) Prune() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, entry := range c.store {
		if now.After(entry.expiresAt) {
			delete(c.store, key)
		}
	}
}

// Janitor prunes every interval until ctx is done.
func (c *RenderCache) Janitor(ctx context.Context, every time.Duration) {
	if c == nil || every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Prune()
		}
	}
}

// CacheKey hashes the request parameters into a fixed-size key.
func CacheKey(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, ":")))
	return hex.EncodeToString(hash[:])
}
