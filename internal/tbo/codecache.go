package tbo

import (
	"context"
	"sync"
	"time"
)

// CacheTTL is how long a city's hotel code list stays fresh. Code lists change
// rarely, so an hour keeps search latency down without risking stale
// inventory.
const CacheTTL = time.Hour

// CodeLister fetches the full hotel code list for a city. *Client implements
// it.
type CodeLister interface {
	HotelCodeList(ctx context.Context, cityCode string) ([]string, error)
}

type cacheEntry struct {
	codes     []string
	fetchedAt time.Time
}

// CodeCache memoizes hotel code lists per city with a TTL. It is safe for
// concurrent use. The clock is injectable so tests can step time instead of
// sleeping.
type CodeCache struct {
	lister CodeLister
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

// CacheOption is a functional option for configuring a CodeCache.
type CacheOption func(*CodeCache)

// WithTTL overrides the default entry lifetime.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *CodeCache) {
		c.ttl = ttl
	}
}

// WithClock replaces the time source. Tests use this to expire entries
// deterministically.
func WithClock(now func() time.Time) CacheOption {
	return func(c *CodeCache) {
		c.now = now
	}
}

// NewCodeCache creates a cache over lister with the default [CacheTTL].
func NewCodeCache(lister CodeLister, opts ...CacheOption) *CodeCache {
	c := &CodeCache{
		lister:  lister,
		ttl:     CacheTTL,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Codes returns the hotel codes for cityCode, fetching from the lister when
// the cached entry is missing or older than the TTL. A failed refresh does not
// overwrite a previously cached list; the error is returned and the stale
// entry stays until a later fetch succeeds.
func (c *CodeCache) Codes(ctx context.Context, cityCode string) ([]string, error) {
	c.mu.Lock()
	entry, ok := c.entries[cityCode]
	if ok && c.now().Sub(entry.fetchedAt) < c.ttl {
		c.mu.Unlock()
		return entry.codes, nil
	}
	c.mu.Unlock()

	codes, err := c.lister.HotelCodeList(ctx, cityCode)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[cityCode] = cacheEntry{codes: codes, fetchedAt: c.now()}
	c.mu.Unlock()
	return codes, nil
}
