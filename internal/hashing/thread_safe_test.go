package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/singularity-chess-go/internal/chess"
	"github.com/lgbarn/singularity-chess-go/internal/engine"
)

func TestThreadSafeDestinationCache_Concurrent(t *testing.T) {
	cache := NewThreadSafeDestinationCache(0)
	board, toMove, err := engine.ParseFEN(engine.InitialFEN)
	if err != nil {
		t.Fatal(err)
	}
	origins := board.Occupied(toMove)

	const numWorkers = 10
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, origin := range origins {
				cache.Destinations(board, toMove, origin)
			}
		}()
	}
	wg.Wait()

	if cache.Len() != len(origins) {
		t.Errorf("Expected %d entries, got %d", len(origins), cache.Len())
	}
	total := numWorkers * len(origins)
	if cache.Hits()+cache.Misses() != total {
		t.Errorf("Expected %d lookups, got %d", total, cache.Hits()+cache.Misses())
	}
	if cache.Misses() < len(origins) {
		t.Errorf("Expected at least %d misses, got %d", len(origins), cache.Misses())
	}
}

func TestThreadSafeDestinationCache_MatchesGenerator(t *testing.T) {
	cache := NewThreadSafeDestinationCache(0)
	board := chess.NewStandardBoard()

	var wg sync.WaitGroup
	results := make([][]chess.Square, chess.NumSquares)
	for i := 0; i < chess.NumSquares; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = cache.Destinations(board, chess.White, chess.SquareFromIndex(idx))
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		origin := chess.SquareFromIndex(i)
		piece, ok := board.Query(origin)
		if !ok {
			if got != nil {
				t.Errorf("empty %v produced %v", origin, got)
			}
			continue
		}
		want := engine.LegalDestinations(piece, origin, board)
		if len(got) != len(want) {
			t.Errorf("%v: got %v, want %v", origin, got, want)
			continue
		}
		for j := range want {
			if got[j] != want[j] {
				t.Errorf("%v: got %v, want %v", origin, got, want)
				break
			}
		}
	}
}

func TestThreadSafeDestinationCache_LoadFromCache(t *testing.T) {
	regular := NewDestinationCache(0)
	board := chess.NewStandardBoard()
	origin := chess.Sq(1, 7)
	regular.Destinations(board, chess.White, origin)

	threadSafe := NewThreadSafeDestinationCache(0)
	threadSafe.LoadFromCache(regular)

	if threadSafe.Len() != 1 {
		t.Errorf("Expected 1 entry after load, got %d", threadSafe.Len())
	}
	threadSafe.Destinations(board, chess.White, origin)
	if threadSafe.Hits() != 1 {
		t.Errorf("Expected 1 hit after loading, got %d", threadSafe.Hits())
	}
}

func TestThreadSafeDestinationCache_MaxCapacity(t *testing.T) {
	const capacity = 5
	cache := NewThreadSafeDestinationCache(capacity)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			cache.Store(uint64(n), chess.Sq(0, 0), nil)
		}(i)
	}
	wg.Wait()

	if !cache.IsFull() {
		t.Error("Expected cache to be full")
	}
	if cache.Len() != capacity {
		t.Errorf("Expected %d entries, got %d", capacity, cache.Len())
	}

	cache.Reset()
	if cache.Len() != 0 || cache.IsFull() {
		t.Error("Reset did not clear the cache")
	}
}
