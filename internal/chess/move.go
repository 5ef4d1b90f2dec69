package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/singularity-chess-go/internal/errors"
)

// Move records a piece relocation that has been played.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// The piece being moved.
	Piece Piece

	// The piece captured, valid only when Capture is true.
	Captured Piece
	Capture  bool

	// Zobrist hash code of the position after this move (0 if not computed).
	Zobrist uint64
}

// IsCapture returns true if this move removed an enemy piece.
func (m Move) IsCapture() bool {
	return m.Capture
}

// String returns coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses coordinate notation such as "e2e4" or "e2-e4".
// Only the squares are filled in.
func ParseMove(text string) (Move, error) {
	t := strings.ReplaceAll(strings.TrimSpace(text), "-", "")
	if len(t) != 4 {
		return Move{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    text,
			Expected: "two squares",
			Got:      fmt.Sprintf("%d characters", len(t)),
		}
	}
	from, err := ParseSquare(t[:2])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", text)
	}
	to, err := ParseSquare(t[2:])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", text)
	}
	return Move{From: from, To: to}, nil
}

// ParseMoveList parses a comma or space separated list of moves.
func ParseMoveList(text string) ([]Move, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == ' ' })
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}
