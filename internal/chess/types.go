// Package chess provides the core chess types and the board model.
package chess

import (
	"fmt"

	"github.com/lgbarn/singularity-chess-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a coloured chess piece. It is a plain value: every read from a
// Board hands out a copy.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String()
}

// Letter returns the FEN letter for the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black && l != '?' {
		l += 'a' - 'A'
	}
	return l
}

// Symbol returns the Unicode chess glyph for the piece.
func (p Piece) Symbol() string {
	white := []string{"♙", "♘", "♗", "♖", "♕", "♔"}
	black := []string{"♟", "♞", "♝", "♜", "♛", "♚"}
	if p.Kind < 0 || p.Kind >= NumPieceKinds {
		return "?"
	}
	if p.Colour == White {
		return white[p.Kind]
	}
	return black[p.Kind]
}

// PieceFromLetter converts a FEN letter to a piece.
func PieceFromLetter(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return Piece{Pawn, colour}, true
	case 'N':
		return Piece{Knight, colour}, true
	case 'B':
		return Piece{Bishop, colour}, true
	case 'R':
		return Piece{Rook, colour}, true
	case 'Q':
		return Piece{Queen, colour}, true
	case 'K':
		return Piece{King, colour}, true
	}
	return Piece{}, false
}

// Constants for board dimensions and coordinates.
//
// Rank index 0 is Black's back rank (the top edge of the screen) and rank
// index 7 is White's back rank. White pawns therefore advance toward
// decreasing rank indices.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	ColBase = 'a'

	WhiteBackRank = 7
	WhitePawnRank = 6
	BlackPawnRank = 1
	BlackBackRank = 0
)

// Delta is a displacement between two squares.
type Delta struct {
	DFile int
	DRank int
}

// Square identifies one of the 64 board positions.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for Square{File: file, Rank: rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// SquareFromIndex converts a linear index (rank*8 + file) back to a square.
func SquareFromIndex(i int) Square {
	return Square{File: i % BoardSize, Rank: i / BoardSize}
}

// InBounds reports whether both coordinates lie in [0,8).
func (s Square) InBounds() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Index returns the linear index rank*8 + file. Only meaningful in bounds.
func (s Square) Index() int {
	return s.Rank*BoardSize + s.File
}

// Offset returns the square displaced by d. The result may be out of bounds.
func (s Square) Offset(d Delta) Square {
	return Square{File: s.File + d.DFile, Rank: s.Rank + d.DRank}
}

// String returns algebraic notation ("e2"), or "" when out of bounds.
func (s Square) String() string {
	if !s.InBounds() {
		return ""
	}
	return string([]byte{byte(ColBase + s.File), byte('0' + BoardSize - s.Rank)})
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: text, Expected: "file and rank"}
	}
	file := int(text[0]) - ColBase
	digit := int(text[1]) - '0'
	if file < 0 || file >= BoardSize {
		return Square{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: text, Column: 1, Got: fmt.Sprintf("file %q", text[0])}
	}
	if digit < 1 || digit > BoardSize {
		return Square{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: text, Column: 2, Got: fmt.Sprintf("rank %q", text[1])}
	}
	return Square{File: file, Rank: BoardSize - digit}, nil
}

// Destinations pairs an origin square and its piece with the squares
// that piece may move to.
type Destinations struct {
	Origin  Square
	Piece   Piece
	Targets []Square
}
