package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// MapCache holds a loaded correlation map for the read path.
type MapCache struct {
	// Map is the loaded correlation map. Treat it as read-only.
	Map Map

	// Built is the timestamp when this cache was loaded.
	Built time.Time

	// TTL is the time-to-live for this cache.
	TTL time.Duration
}

// IsExpired returns true if this cache has expired based on its TTL.
func (c *MapCache) IsExpired() bool {
	if c.TTL == 0 {
		return true // No caching
	}
	return time.Since(c.Built) > c.TTL
}

// cacheStore holds loaded maps keyed by store location.
type cacheStore struct {
	mu     sync.RWMutex
	caches map[string]*MapCache
	sf     singleflight.Group
}

var globalCacheStore = &cacheStore{
	caches: make(map[string]*MapCache),
}

// GetOrLoad returns the cached map for store, loading it when absent or
// expired. Concurrent callers for the same location share one load.
func GetOrLoad(ctx context.Context, store MapStore, ttl time.Duration) (*MapCache, error) {
	key := store.Location()

	globalCacheStore.mu.RLock()
	cache, exists := globalCacheStore.caches[key]
	globalCacheStore.mu.RUnlock()

	if exists && !cache.IsExpired() {
		return cache, nil
	}

	result, err, _ := globalCacheStore.sf.Do(key, func() (interface{}, error) {
		globalCacheStore.mu.RLock()
		cache, exists := globalCacheStore.caches[key]
		globalCacheStore.mu.RUnlock()

		if exists && !cache.IsExpired() {
			return cache, nil
		}

		m, err := store.Load(ctx)
		if err != nil {
			return nil, err
		}
		fresh := &MapCache{Map: m, Built: time.Now(), TTL: ttl}

		if ttl > 0 {
			globalCacheStore.mu.Lock()
			globalCacheStore.caches[key] = fresh
			globalCacheStore.mu.Unlock()
		}

		return fresh, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*MapCache), nil
}

// Invalidate drops the cached map for location.
func Invalidate(location string) {
	globalCacheStore.mu.Lock()
	delete(globalCacheStore.caches, location)
	globalCacheStore.mu.Unlock()
}
