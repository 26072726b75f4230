package engine

import (
	"sync"
	"time"

	"github.com/wanderplan/wanderplan/pkg/models"
)

// Idempotency cache defaults. Evictions do not compromise correctness: the
// persisted itinerary and revisions remain the source of truth, an evicted
// key simply loses replay protection after the TTL.
const (
	defaultIdempotencyMaxEntries = 10_000
	defaultIdempotencyTTL        = time.Hour
)

type idemEntry struct {
	result    models.ApplyChangesResult
	expiresAt time.Time
}

// idempotencyCache is a process-wide bounded map of (itinerary, key) →
// cached apply result. Size-bounded with oldest-first eviction plus TTL.
type idempotencyCache struct {
	mu         sync.Mutex
	entries    map[string]idemEntry
	order      []string // insertion order for size eviction
	maxEntries int
	ttl        time.Duration
}

func newIdempotencyCache(maxEntries int, ttl time.Duration) *idempotencyCache {
	if maxEntries <= 0 {
		maxEntries = defaultIdempotencyMaxEntries
	}
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &idempotencyCache{
		entries:    make(map[string]idemEntry),
		maxEntries: maxEntries,
		ttl:        ttl,
	}
}

func idemCacheKey(itineraryID, idempotencyKey string) string {
	return itineraryID + "\x00" + idempotencyKey
}

// Get returns the cached result for the key if present and unexpired.
func (c *idempotencyCache) Get(itineraryID, key string) (models.ApplyChangesResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ck := idemCacheKey(itineraryID, key)
	e, ok := c.entries[ck]
	if !ok {
		return models.ApplyChangesResult{}, false
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, ck)
		return models.ApplyChangesResult{}, false
	}
	return e.result, true
}

// Put records an apply result, evicting the oldest entries past capacity.
func (c *idempotencyCache) Put(itineraryID, key string, result models.ApplyChangesResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ck := idemCacheKey(itineraryID, key)
	if _, exists := c.entries[ck]; !exists {
		c.order = append(c.order, ck)
	}
	c.entries[ck] = idemEntry{
		result:    result,
		expiresAt: time.Now().Add(c.ttl),
	}

	for len(c.entries) > c.maxEntries && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}

// Len reports the live entry count. Used by tests.
func (c *idempotencyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
