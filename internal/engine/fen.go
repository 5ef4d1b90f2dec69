package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/singularity-chess-go/internal/chess"
	"github.com/lgbarn/singularity-chess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a board from a FEN string and returns it with the side to
// move. Only the piece placement and side-to-move fields are used; castling,
// en passant and clock fields are accepted and ignored. A missing side field
// means White.
func ParseFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	return board, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// FEN lists rank 8 first, which is rank index 0 on our board.
func parsePiecePositions(board *chess.Board, positions string) error {
	rows := strings.Split(positions, "/")
	if len(rows) != chess.BoardSize {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    positions,
			Expected: fmt.Sprintf("%d ranks", chess.BoardSize),
			Got:      fmt.Sprintf("%d", len(rows)),
		}
	}

	column := 0
	for rank, row := range rows {
		file := 0
		for i := 0; i < len(row); i++ {
			column++
			c := row[i]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece, ok := chess.PieceFromLetter(c)
				if !ok {
					return &errors.ParseError{
						Err:      errors.ErrInvalidFEN,
						Input:    positions,
						Column:   column,
						Expected: "piece letter or digit",
						Got:      fmt.Sprintf("%q", c),
					}
				}
				if file >= chess.BoardSize {
					return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: positions, Column: column, Got: "piece past the h-file"}
				}
				board.Place(chess.Sq(file, rank), piece)
				file++
			}
			if file > chess.BoardSize {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: positions, Column: column, Got: "rank overflow"}
			}
		}
		column++ // the '/' separator
		if file != chess.BoardSize {
			return &errors.ParseError{
				Err:      errors.ErrInvalidFEN,
				Input:    positions,
				Expected: fmt.Sprintf("%d files in rank %d", chess.BoardSize, chess.BoardSize-rank),
				Got:      fmt.Sprintf("%d", file),
			}
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// BoardToFEN converts a board to a FEN string. Castling and en passant are
// not tracked, so those fields are always "-" and the clocks are "0 1".
func BoardToFEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, toMove)
	sb.WriteString(" - - 0 1")

	return sb.String()
}

// PlacementFEN returns only the piece placement field.
func PlacementFEN(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece, ok := board.Query(chess.Sq(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, toMove chess.Colour) {
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

