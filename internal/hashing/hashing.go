// Package hashing provides position keys and a cache of generated
// destinations keyed by position.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/singularity-chess-go/internal/chess"
)

const zobristSeed = 7

var (
	pieceKeys   [2][chess.NumPieceKinds][chess.NumSquares]uint64
	blackToMove uint64
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for kind := chess.Pawn; kind < chess.NumPieceKinds; kind++ {
			for i := 0; i < chess.NumSquares; i++ {
				pieceKeys[colour][kind][i] = r.Uint64()
			}
		}
	}
	blackToMove = r.Uint64()
}

// Hash returns the Zobrist hash of the position. The table is seeded with a
// fixed value, so hashes are stable across runs.
func Hash(board *chess.Board, toMove chess.Colour) uint64 {
	var h uint64
	if board == nil {
		return h
	}
	for i := 0; i < chess.NumSquares; i++ {
		p, ok := board.Query(chess.SquareFromIndex(i))
		if !ok {
			continue
		}
		h ^= pieceKey(p, i)
	}
	if toMove == chess.Black {
		h ^= blackToMove
	}
	return h
}

// PieceKey returns the hash contribution of piece standing on sq. XOR it
// into a hash to place or remove the piece incrementally.
func PieceKey(piece chess.Piece, sq chess.Square) uint64 {
	if !sq.InBounds() {
		return 0
	}
	return pieceKey(piece, sq.Index())
}

// SideKey returns the hash contribution of Black being to move.
func SideKey() uint64 {
	return blackToMove
}

func pieceKey(p chess.Piece, index int) uint64 {
	if p.Kind < chess.Pawn || p.Kind >= chess.NumPieceKinds || (p.Colour != chess.White && p.Colour != chess.Black) {
		return 0
	}
	return pieceKeys[p.Colour][p.Kind][index]
}
