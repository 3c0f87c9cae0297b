package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/lance-Yang/semcheck/internal/model"
)

// TermCache memoizes extraction results per content fingerprint.
// Entries are pure functions of document content, so concurrent
// last-writer-wins races are benign. go-cache is safe for use from
// multiple goroutines.
type TermCache struct {
	cache *gocache.Cache
}

// NewTermCache creates a cache whose entries expire after ttl and are
// swept every cleanupInterval.
func NewTermCache(ttl, cleanupInterval time.Duration) *TermCache {
	return &TermCache{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

// Get retrieves the terms cached under key
func (c *TermCache) Get(key string) ([]model.SemanticTerm, bool) {
	if val, found := c.cache.Get(key); found {
		return val.([]model.SemanticTerm), true
	}
	return nil, false
}

// Set stores terms under key with the default TTL
func (c *TermCache) Set(key string, terms []model.SemanticTerm) {
	c.cache.Set(key, terms, gocache.DefaultExpiration)
}

// Flush removes all entries
func (c *TermCache) Flush() {
	c.cache.Flush()
}
