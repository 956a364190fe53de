// Package cache memoizes repair results by input content hash, for the
// CLI's --cache-identical flag: batch jobs over many files sometimes
// repeat the same malformed fragment (a boilerplate header, a repeated
// template), and re-running the recovery parser on bytes already seen is
// wasted work.
package cache

import (
	"sync"

	"github.com/zeebo/xxh3"
)

// entry holds one memoized repair outcome.
type entry struct {
	output string
	ok     bool
}

// Cache is a concurrency-safe content-addressed memo of repair results.
// The zero value is not usable; use New.
type Cache struct {
	mu sync.RWMutex
	m  map[uint64]entry
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{m: make(map[uint64]entry)}
}

// Key hashes input to the cache key Get/Put expect. Exposed so a caller
// can look up before deciding whether to even read a file's full
// contents a second time.
func Key(input []byte) uint64 {
	return xxh3.Hash(input)
}

// Get returns a previously stored result for key, if any.
func (c *Cache) Get(key uint64) (output string, ok, hit bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, found := c.m[key]
	if !found {
		return "", false, false
	}
	return e.output, e.ok, true
}

// Put stores a repair result under key, overwriting any prior entry.
func (c *Cache) Put(key uint64, output string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = entry{output: output, ok: ok}
}

// Len reports how many distinct inputs have been memoized.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
