package testutil

import (
	"testing"

	"github.com/lgbarn/singularity-chess-go/internal/chess"
)

// MustSquare parses algebraic notation and calls t.Fatal on failure.
func MustSquare(t *testing.T, text string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(text)
	if err != nil {
		t.Fatalf("bad test square %q: %v", text, err)
	}
	return sq
}

// MustSquares parses a list of algebraic squares.
func MustSquares(t *testing.T, texts ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, 0, len(texts))
	for _, text := range texts {
		squares = append(squares, MustSquare(t, text))
	}
	return squares
}

// BoardWith returns an empty board with the given pieces placed,
// keyed by algebraic square.
func BoardWith(t *testing.T, pieces map[string]chess.Piece) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for text, p := range pieces {
		b.Place(MustSquare(t, text), p)
	}
	return b
}
