// Package engine provides pseudo-legal move generation and FEN conversion.
//
// Generated moves respect piece movement, blocking and capture rules only.
// Whether a move leaves the mover's own king attacked is not considered.
package engine

import "github.com/lgbarn/singularity-chess-go/internal/chess"

// Direction tables. The order of each table fixes the order of the
// destinations returned for that piece.
var (
	knightDeltas = []chess.Delta{
		{DFile: -2, DRank: -1}, {DFile: -2, DRank: 1}, {DFile: -1, DRank: -2}, {DFile: -1, DRank: 2}, {DFile: 1, DRank: -2}, {DFile: 1, DRank: 2}, {DFile: 2, DRank: -1}, {DFile: 2, DRank: 1},
	}
	bishopDeltas = []chess.Delta{{DFile: -1, DRank: -1}, {DFile: 1, DRank: -1}, {DFile: -1, DRank: 1}, {DFile: 1, DRank: 1}}
	rookDeltas   = []chess.Delta{{DFile: 0, DRank: -1}, {DFile: -1, DRank: 0}, {DFile: 1, DRank: 0}, {DFile: 0, DRank: 1}}
	queenDeltas  = append(append([]chess.Delta{}, rookDeltas...), bishopDeltas...)
)

// LegalDestinations returns the squares piece may move to from origin.
//
// The caller must pass the piece actually standing on origin. The board is
// only read, and no reference to it is kept. Out-of-range squares simply
// contribute nothing.
func LegalDestinations(piece chess.Piece, origin chess.Square, board *chess.Board) []chess.Square {
	if board == nil || !origin.InBounds() {
		return nil
	}

	switch piece.Kind {
	case chess.Pawn:
		return pawnDestinations(piece.Colour, origin, board)
	case chess.Knight:
		return stepDestinations(piece.Colour, origin, board, knightDeltas)
	case chess.King:
		return kingDestinations(piece.Colour, origin, board)
	case chess.Bishop:
		return slideDestinations(piece.Colour, origin, board, bishopDeltas)
	case chess.Rook:
		return slideDestinations(piece.Colour, origin, board, rookDeltas)
	case chess.Queen:
		return slideDestinations(piece.Colour, origin, board, queenDeltas)
	}
	return nil
}

// canLand reports whether a piece of colour may finish on sq: the square
// must be empty or hold an enemy piece.
func canLand(board *chess.Board, colour chess.Colour, sq chess.Square) bool {
	occupant, ok := board.Query(sq)
	return !ok || occupant.Colour != colour
}

// stepDestinations applies each delta once.
func stepDestinations(colour chess.Colour, origin chess.Square, board *chess.Board, deltas []chess.Delta) []chess.Square {
	var targets []chess.Square
	for _, d := range deltas {
		to := origin.Offset(d)
		if to.InBounds() && canLand(board, colour, to) {
			targets = append(targets, to)
		}
	}
	return targets
}

// kingDestinations is the step rule over the precomputed adjacency,
// which already excludes off-board neighbours.
func kingDestinations(colour chess.Colour, origin chess.Square, board *chess.Board) []chess.Square {
	var targets []chess.Square
	for _, e := range chess.Adjacent(origin) {
		if canLand(board, colour, e.To) {
			targets = append(targets, e.To)
		}
	}
	return targets
}

// slideDestinations walks each direction until the edge or a piece.
// An enemy piece is included and ends the ray; a friendly piece ends it
// without being included.
func slideDestinations(colour chess.Colour, origin chess.Square, board *chess.Board, deltas []chess.Delta) []chess.Square {
	var targets []chess.Square
	for _, d := range deltas {
		for to := origin.Offset(d); to.InBounds(); to = to.Offset(d) {
			occupant, ok := board.Query(to)
			if !ok {
				targets = append(targets, to)
				continue
			}
			if occupant.Colour != colour {
				targets = append(targets, to)
			}
			break
		}
	}
	return targets
}

// PawnDirection returns the rank step of a pawn of the given colour.
func PawnDirection(colour chess.Colour) int {
	if colour == chess.White {
		return -1
	}
	return 1
}

// PawnStartRank returns the rank a pawn of the given colour starts on.
func PawnStartRank(colour chess.Colour) int {
	if colour == chess.White {
		return chess.WhitePawnRank
	}
	return chess.BlackPawnRank
}

// pawnDestinations: forward pushes onto empty squares, the double push
// from the start rank, and diagonal captures onto enemy pieces only.
func pawnDestinations(colour chess.Colour, origin chess.Square, board *chess.Board) []chess.Square {
	var targets []chess.Square
	dir := PawnDirection(colour)

	one := origin.Offset(chess.Delta{DRank: dir})
	if board.IsEmpty(one) {
		targets = append(targets, one)
		if origin.Rank == PawnStartRank(colour) {
			two := one.Offset(chess.Delta{DRank: dir})
			if board.IsEmpty(two) {
				targets = append(targets, two)
			}
		}
	}

	for _, df := range []int{-1, 1} {
		to := origin.Offset(chess.Delta{DFile: df, DRank: dir})
		if occupant, ok := board.Query(to); ok && occupant.Colour != colour {
			targets = append(targets, to)
		}
	}
	return targets
}

// CanMove reports whether the piece on from may move to to.
// It returns false when from is empty.
func CanMove(board *chess.Board, from, to chess.Square) bool {
	if board == nil {
		return false
	}
	piece, ok := board.Query(from)
	if !ok {
		return false
	}
	for _, sq := range LegalDestinations(piece, from, board) {
		if sq == to {
			return true
		}
	}
	return false
}

// AllDestinations generates destinations for every piece of colour, in
// origin index order. Pieces with no moves are included with no targets.
func AllDestinations(board *chess.Board, colour chess.Colour) []chess.Destinations {
	if board == nil {
		return nil
	}
	var all []chess.Destinations
	for _, origin := range board.Occupied(colour) {
		piece, _ := board.Query(origin)
		all = append(all, chess.Destinations{
			Origin:  origin,
			Piece:   piece,
			Targets: LegalDestinations(piece, origin, board),
		})
	}
	return all
}

// CountDestinations sums the targets in a set of destinations.
func CountDestinations(all []chess.Destinations) int {
	n := 0
	for _, d := range all {
		n += len(d.Targets)
	}
	return n
}
