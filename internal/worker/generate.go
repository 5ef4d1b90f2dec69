package worker

import (
	"github.com/lgbarn/singularity-chess-go/internal/chess"
	"github.com/lgbarn/singularity-chess-go/internal/engine"
	"github.com/lgbarn/singularity-chess-go/internal/errors"
)

// DestinationSource produces destinations for one origin square. It must be
// safe for concurrent use. hashing.ThreadSafeDestinationCache satisfies it.
type DestinationSource interface {
	Destinations(board *chess.Board, toMove chess.Colour, origin chess.Square) []chess.Square
}

// generatorSource calls the move generator directly.
type generatorSource struct{}

func (generatorSource) Destinations(board *chess.Board, _ chess.Colour, origin chess.Square) []chess.Square {
	piece, ok := board.Query(origin)
	if !ok {
		return nil
	}
	return engine.LegalDestinations(piece, origin, board)
}

// DestinationsFunc returns a ProcessFunc that generates destinations for
// each item from board. A nil source generates without caching.
func DestinationsFunc(board *chess.Board, toMove chess.Colour, source DestinationSource) ProcessFunc {
	if source == nil {
		source = generatorSource{}
	}
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Origin: item.Origin, Piece: item.Piece, Index: item.Index}
		occupant, ok := board.Query(item.Origin)
		if !ok || occupant != item.Piece {
			result.Error = &errors.SquareError{
				Err:   errors.ErrNoPiece,
				Op:    "generate",
				From:  item.Origin.String(),
				Piece: item.Piece.String(),
			}
			return result
		}
		result.Destinations = source.Destinations(board, toMove, item.Origin)
		return result
	}
}

// GenerateAll fans out every piece of colour across workers and returns the
// destinations in origin index order, the same order engine.AllDestinations
// produces. The board must not be mutated while GenerateAll runs.
func GenerateAll(board *chess.Board, colour chess.Colour, workers int, source DestinationSource) ([]chess.Destinations, error) {
	if board == nil {
		return nil, nil
	}

	origins := board.Occupied(colour)
	items := make([]WorkItem, 0, len(origins))
	for i, origin := range origins {
		piece, _ := board.Query(origin)
		items = append(items, WorkItem{Origin: origin, Piece: piece, Index: i})
	}

	pool := NewPoolWithOptions(DestinationsFunc(board, colour, source),
		WithWorkers(workers), WithBufferSize(len(items)))

	var all []chess.Destinations
	for _, r := range pool.Run(items) {
		if r.Error != nil {
			return nil, r.Error
		}
		all = append(all, chess.Destinations{
			Origin:  r.Origin,
			Piece:   r.Piece,
			Targets: r.Destinations,
		})
	}
	return all, nil
}
