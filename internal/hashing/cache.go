package hashing

import (
	"github.com/lgbarn/singularity-chess-go/internal/chess"
	"github.com/lgbarn/singularity-chess-go/internal/engine"
)

// cacheKey identifies one origin square in one position.
type cacheKey struct {
	hash   uint64
	origin int
}

// DestinationCache remembers generated destinations per position and origin.
type DestinationCache struct {
	// entries maps a position/origin pair to its destinations
	entries map[cacheKey][]chess.Square
	// maxCapacity limits entries (0 = unlimited)
	maxCapacity int
	hits        int
	misses      int
}

// NewDestinationCache creates an empty cache.
// maxCapacity of 0 means unlimited capacity.
func NewDestinationCache(maxCapacity int) *DestinationCache {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &DestinationCache{
		entries:     make(map[cacheKey][]chess.Square),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns a copy of the cached destinations for origin in the
// position with the given hash.
func (c *DestinationCache) Lookup(hash uint64, origin chess.Square) ([]chess.Square, bool) {
	targets, ok := c.entries[cacheKey{hash, origin.Index()}]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	return copySquares(targets), true
}

// Store records destinations for origin. It returns false when the cache is
// full and the key is not already present.
func (c *DestinationCache) Store(hash uint64, origin chess.Square, targets []chess.Square) bool {
	key := cacheKey{hash, origin.Index()}
	if _, ok := c.entries[key]; !ok && c.IsFull() {
		return false
	}
	c.entries[key] = copySquares(targets)
	return true
}

// Destinations returns the destinations of the piece on origin, generating
// and caching them on a miss. An empty origin yields nil and is not cached.
func (c *DestinationCache) Destinations(board *chess.Board, toMove chess.Colour, origin chess.Square) []chess.Square {
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
func (c *DestinationCache) Len() int {
	return len(c.entries)
}

// Hits returns the number of successful lookups.
func (c *DestinationCache) Hits() int {
	return c.hits
}

// Misses returns the number of failed lookups.
func (c *DestinationCache) Misses() int {
	return c.misses
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *DestinationCache) IsFull() bool {
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}

// Reset clears all entries and counters.
func (c *DestinationCache) Reset() {
	c.entries = make(map[cacheKey][]chess.Square)
	c.hits = 0
	c.misses = 0
}

func copySquares(squares []chess.Square) []chess.Square {
	if squares == nil {
		return nil
	}
	out := make([]chess.Square, len(squares))
	copy(out, squares)
	return out
}
