// Package decodecache bounds the per-worker instruction cache with an LRU.
package decodecache

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/differ/internal/core/domain"
	"go.trai.ch/differ/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cache implements ports.DecodeCache. It is not safe for concurrent use and
// relies on its owning worker for exclusivity.
type Cache struct {
	entries *lru.Cache[uint64, *domain.Instruction]
}

// New creates a cache holding at most size instructions.
func New(size int) (*Cache, error) {
	if size <= 0 {
		return nil, domain.Annotate(domain.ErrInvalidCacheSize, "cache_size", size)
	}
	entries, err := lru.New[uint64, *domain.Instruction](size)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrInvalidCacheSize.Error())
	}
	return &Cache{entries: entries}, nil
}

// Get returns the cached instruction for key.
func (c *Cache) Get(key uint64) (*domain.Instruction, bool) {
	return c.entries.Get(key)
}

// Add caches instruction under key, evicting the least recently used entry when full.
func (c *Cache) Add(key uint64, instruction *domain.Instruction) {
	c.entries.Add(key, instruction)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.entries.Purge()
}

// Len returns the number of cached instructions.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Factory implements ports.DecodeCacheFactory.
type Factory struct {
	size int
}

// NewFactory creates a factory for caches of the given size. Zero or less selects the default size.
func NewFactory(size int) *Factory {
	if size <= 0 {
		size = domain.DefaultCacheSize
	}
	return &Factory{size: size}
}

// New creates a cache for one worker.
func (f *Factory) New() ports.DecodeCache {
	c, err := New(f.size)
	if err != nil {
		// Unreachable: NewFactory guarantees a positive size.
		panic(err)
	}
	return c
}
