package item

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/catchpool/internal/domain"
	"github.com/osse101/catchpool/internal/metrics"
)

// cachedLookup wraps a resolution result with version metadata for cache invalidation
type cachedLookup struct {
	Version  string
	Data     domain.ItemData
	Found    bool
	CachedAt time.Time
}

// CachedLookup memoizes another lookup in an expiring LRU. Misses are cached
// too, so unknown ids from spawn tables do not hit the backing lookup on every
// draw.
type CachedLookup struct {
	next domain.ItemLookup
	lru  *expirable.LRU[string, *cachedLookup]
}

// NewCachedLookup creates a cache of the given size and TTL in front of next.
// A non-positive size uses DefaultCacheSize; a zero TTL never expires.
func NewCachedLookup(next domain.ItemLookup, size int, ttl time.Duration) *CachedLookup {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &CachedLookup{
		next: next,
		lru:  expirable.NewLRU[string, *cachedLookup](size, nil, ttl),
	}
}

// Resolve returns the cached result for rawID, consulting the wrapped lookup
// on a miss.
func (c *CachedLookup) Resolve(rawID string) (domain.ItemData, bool) {
	key := domain.CanonicalID(rawID)
	if entry, ok := c.lru.Get(key); ok {
		if entry.Version == CacheSchemaVersion {
			metrics.RecordItemLookup(true)
			return entry.Data, entry.Found
		}
		c.lru.Remove(key)
	}

	metrics.RecordItemLookup(false)
	data, found := c.next.Resolve(rawID)
	c.lru.Add(key, &cachedLookup{
		Version:  CacheSchemaVersion,
		Data:     data,
		Found:    found,
		CachedAt: time.Now(),
	})
	return data, found
}

// Purge drops every cached result. Call after the backing catalog changes.
func (c *CachedLookup) Purge() {
	c.lru.Purge()
}

// Len is the number of cached results.
func (c *CachedLookup) Len() int {
	return c.lru.Len()
}
