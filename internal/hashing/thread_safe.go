package hashing

import (
	"sync"

	"github.com/lgbarn/singularity-chess-go/internal/chess"
	"github.com/lgbarn/singularity-chess-go/internal/engine"
)

// ThreadSafeDestinationCache wraps DestinationCache with mutex protection for concurrent access.
type ThreadSafeDestinationCache struct {
	cache *DestinationCache
	mu    sync.Mutex
}

// NewThreadSafeDestinationCache creates a new thread-safe cache.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDestinationCache(maxCapacity int) *ThreadSafeDestinationCache {
	return &ThreadSafeDestinationCache{
		cache: NewDestinationCache(maxCapacity),
	}
}

// Lookup returns cached destinations. It takes the write lock because
// lookups update the hit and miss counters.
func (c *ThreadSafeDestinationCache) Lookup(hash uint64, origin chess.Square) ([]chess.Square, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Lookup(hash, origin)
}

// Store records destinations for origin.
func (c *ThreadSafeDestinationCache) Store(hash uint64, origin chess.Square, targets []chess.Square) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Store(hash, origin, targets)
}

// Destinations returns cached destinations or generates them outside the
// lock. The board must not be mutated while this runs.
func (c *ThreadSafeDestinationCache) Destinations(board *chess.Board, toMove chess.Colour, origin chess.Square) []chess.Square {
	if board == nil {
		return nil
	}
	piece, ok := board.Query(origin)
	if !ok {
		return nil
	}
	hash := Hash(board, toMove)
	if targets, ok := c.Lookup(hash, origin); ok {
		return targets
	}
	targets := engine.LegalDestinations(piece, origin, board)
	c.Store(hash, origin, targets)
	return targets
}

// Len returns the number of cached entries.
func (c *ThreadSafeDestinationCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}

// Hits returns the number of successful lookups.
func (c *ThreadSafeDestinationCache) Hits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Hits()
}

// Misses returns the number of failed lookups.
func (c *ThreadSafeDestinationCache) Misses() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Misses()
}

// LoadFromCache copies entries from an existing cache. Call before concurrent use.
func (c *ThreadSafeDestinationCache) LoadFromCache(other *DestinationCache) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, targets := range other.entries {
		if c.cache.IsFull() {
			return
		}
		c.cache.entries[key] = copySquares(targets)
	}
}

// IsFull returns true if the cache has reached its capacity limit.
func (c *ThreadSafeDestinationCache) IsFull() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.IsFull()
}

// Reset clears all entries and counters.
func (c *ThreadSafeDestinationCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Reset()
}
