package server

import (
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/viettran1502/transcriptor/internal/domain"
)

// resultCache is an in-memory URL -> result cache with TTL expiry, so
// repeat requests for the same video return instantly.
type resultCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

type cacheEntry struct {
	at  time.Time
	res *domain.Result
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *resultCache) Get(key string) (*domain.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.at) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.res, true
}

func (c *resultCache) Set(key string, res *domain.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{at: c.now(), res: res}
}

func (c *resultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// normalizeURL strips fragments and trailing slashes so trivially
// different spellings of the same video share a cache entry.
func normalizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return strings.TrimRight(raw, "/")
	}
	u.Fragment = ""
	return strings.TrimRight(u.String(), "/")
}
