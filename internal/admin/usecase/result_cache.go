package usecase

import (
	"sync"
	"time"
)

// ResultCache remembers positive access-check results for a bounded time, so
// bursts of privileged requests do not hammer the store. It is an explicit
// object with its own invalidation rather than ambient shared state.
//
// Only positive results are cached: a denial is cheap to recompute and must
// never be sticky. Entries expire after the TTL or when the underlying record
// expires, whichever comes first, and are dropped eagerly on revocation.
type ResultCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]time.Time
	now     func() time.Time
}

// NewResultCache creates a cache holding positive results for at most ttl.
// A non-positive ttl disables caching entirely.
func NewResultCache(ttl time.Duration) *ResultCache {
	return &ResultCache{
		ttl:     ttl,
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Get reports whether a still-fresh positive result exists for the token hash.
func (c *ResultCache) Get(tokenHash string) bool {
	if c == nil || c.ttl <= 0 {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	validUntil, ok := c.entries[tokenHash]
	if !ok {
		return false
	}
	if c.now().After(validUntil) {
		delete(c.entries, tokenHash)
		return false
	}
	return true
}

// Set records a positive result for the token hash. The entry is valid for
// the cache TTL, capped by the record's own expiry so a cached hit can never
// outlive the token.
func (c *ResultCache) Set(tokenHash string, expiresAt time.Time) {
	if c == nil || c.ttl <= 0 {
		return
	}

	validUntil := c.now().Add(c.ttl)
	if expiresAt.Before(validUntil) {
		validUntil = expiresAt
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[tokenHash] = validUntil
}

// Invalidate drops the entry for the token hash. Removing an absent entry is
// a no-op, so concurrent invalidations race harmlessly.
func (c *ResultCache) Invalidate(tokenHash string) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, tokenHash)
}
