package hashing

import (
	"testing"

	"github.com/lgbarn/singularity-chess-go/internal/chess"
	"github.com/lgbarn/singularity-chess-go/internal/engine"
	"github.com/lgbarn/singularity-chess-go/internal/testutil"
)

func TestDestinationCacheStoreLookup(t *testing.T) {
	cache := NewDestinationCache(0)
	origin := testutil.MustSquare(t, "e2")
	targets := testutil.MustSquares(t, "e3", "e4")

	if _, ok := cache.Lookup(1, origin); ok {
		t.Error("Lookup on empty cache succeeded")
	}
	testutil.AssertTrue(t, cache.Store(1, origin, targets))

	got, ok := cache.Lookup(1, origin)
	testutil.AssertTrue(t, ok, "Lookup after Store")
	testutil.AssertSquares(t, got, targets)

	if _, ok := cache.Lookup(2, origin); ok {
		t.Error("Lookup with different hash succeeded")
	}
	testutil.AssertEqual(t, cache.Hits(), 1)
	testutil.AssertEqual(t, cache.Misses(), 2)
	testutil.AssertEqual(t, cache.Len(), 1)
}

func TestDestinationCacheCopies(t *testing.T) {
	cache := NewDestinationCache(0)
	origin := testutil.MustSquare(t, "e2")
	targets := testutil.MustSquares(t, "e3", "e4")
	cache.Store(1, origin, targets)

	targets[0] = chess.Sq(0, 0)
	got, _ := cache.Lookup(1, origin)
	got[1] = chess.Sq(0, 0)

	again, _ := cache.Lookup(1, origin)
	testutil.AssertSquares(t, again, testutil.MustSquares(t, "e3", "e4"))
}

func TestDestinationCacheDestinations(t *testing.T) {
	cache := NewDestinationCache(0)
	board := chess.NewStandardBoard()
	origin := testutil.MustSquare(t, "g1")

	first := cache.Destinations(board, chess.White, origin)
	testutil.AssertSquares(t, first, engine.LegalDestinations(chess.W(chess.Knight), origin, board))
	testutil.AssertEqual(t, cache.Misses(), 1)
	testutil.AssertEqual(t, cache.Hits(), 0)

	second := cache.Destinations(board, chess.White, origin)
	testutil.AssertSquares(t, second, first)
	testutil.AssertEqual(t, cache.Hits(), 1)

	// A different position is a different key.
	board.MovePiece(testutil.MustSquare(t, "e2"), testutil.MustSquare(t, "e4"))
	cache.Destinations(board, chess.White, origin)
	testutil.AssertEqual(t, cache.Misses(), 2)

	if got := cache.Destinations(board, chess.White, testutil.MustSquare(t, "e5")); got != nil {
		t.Errorf("Destinations(empty square) = %v; want nil", got)
	}
	if got := cache.Destinations(nil, chess.White, origin); got != nil {
		t.Errorf("Destinations(nil board) = %v; want nil", got)
	}
}

func TestDestinationCacheCapacity(t *testing.T) {
	cache := NewDestinationCache(2)
	testutil.AssertTrue(t, cache.Store(1, chess.Sq(0, 0), nil))
	testutil.AssertFalse(t, cache.IsFull())
	testutil.AssertTrue(t, cache.Store(2, chess.Sq(0, 0), nil))
	testutil.AssertTrue(t, cache.IsFull())

	testutil.AssertFalse(t, cache.Store(3, chess.Sq(0, 0), nil), "store past capacity")
	testutil.AssertTrue(t, cache.Store(1, chess.Sq(0, 0), []chess.Square{chess.Sq(1, 1)}), "overwrite existing key")
	testutil.AssertEqual(t, cache.Len(), 2)
}

func TestDestinationCacheUnlimited(t *testing.T) {
	for _, capacity := range []int{0, -5} {
		cache := NewDestinationCache(capacity)
		for i := 0; i < 100; i++ {
			cache.Store(uint64(i), chess.Sq(0, 0), nil)
		}
		testutil.AssertFalse(t, cache.IsFull(), "capacity %d", capacity)
		testutil.AssertEqual(t, cache.Len(), 100)
	}
}

func TestDestinationCacheReset(t *testing.T) {
	cache := NewDestinationCache(0)
	board := chess.NewStandardBoard()
	origin := testutil.MustSquare(t, "b1")
	cache.Destinations(board, chess.White, origin)
	cache.Destinations(board, chess.White, origin)

	cache.Reset()

	testutil.AssertEqual(t, cache.Len(), 0)
	testutil.AssertEqual(t, cache.Hits(), 0)
	testutil.AssertEqual(t, cache.Misses(), 0)
}
