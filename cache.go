package geoslice

import (
	"math"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// DefaultCacheCapacity is the cache byte budget used when none is given.
const DefaultCacheCapacity = 256 << 20 // 256 MiB

// Windows are keyed by their full coordinates. A comparable struct key has
// no bit-width ceiling on coordinates or dimensions, unlike a packed
// integer key.
type windowKey struct {
	x, y, w, h int
}

// Cache is a thread-safe, byte-bounded LRU store of materialized window
// contents. The recency list and hash index come from simplelru; byte
// accounting and capacity-driven eviction are layered on top.
//
// All operations share one mutex covering the entry map, the recency order
// and the counters; nothing blocks on I/O while holding it. Get returns an
// owned copy of the stored bytes, so returned data is never invalidated by
// a concurrent eviction.
type Cache struct {
	mu       sync.Mutex
	lru      *simplelru.LRU[windowKey, []byte]
	capacity int
	bytes    int
	hits     uint64
	misses   uint64
}

// NewCache creates a cache bounded to capacity bytes. Nonpositive
// capacities fall back to DefaultCacheCapacity.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	c := &Cache{capacity: capacity}
	// The entry-count bound never binds; the byte budget drives eviction.
	c.lru, _ = simplelru.NewLRU[windowKey, []byte](math.MaxInt, c.onEvict)
	return c
}

func (c *Cache) onEvict(_ windowKey, data []byte) {
	c.bytes -= len(data)
}

// Get returns an owned copy of the cached bytes for the window and promotes
// the entry to most recently used. The second result reports a hit; a miss
// is not an error.
func (c *Cache) Get(x, y, w, h int) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.lru.Get(windowKey{x, y, w, h})
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++

	out := make([]byte, len(data))
	copy(out, data)
	return out, true
}

// Put stores a copy of data under the window's coordinates. If the key is
// already present the entry is only promoted and its stored bytes are left
// untouched: identical coordinates are assumed to always carry identical
// content. Otherwise least-recently-used entries are evicted one at a time
// until the new entry fits — possibly all of them, when data alone
// approaches or exceeds the capacity — and it is inserted as most recently
// used.
func (c *Cache) Put(x, y, w, h int, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := windowKey{x, y, w, h}
	if _, ok := c.lru.Get(key); ok { // Get promotes
		return
	}

	for c.bytes+len(data) > c.capacity && c.lru.Len() > 0 {
		c.lru.RemoveOldest()
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	c.lru.Add(key, buf)
	c.bytes += len(buf)
}

// Clear drops every entry and resets the resident byte count. The hit and
// miss counters survive.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Purge() // eviction callback brings bytes back to zero
}

// Size returns the current resident bytes.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bytes
}

// Capacity returns the configured byte budget.
func (c *Cache) Capacity() int { return c.capacity }

// Hits returns the cumulative hit count.
func (c *Cache) Hits() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits
}

// Misses returns the cumulative miss count.
func (c *Cache) Misses() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.misses
}
