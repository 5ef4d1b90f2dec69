// Package output renders boards and generated destinations as text,
// coloured terminal tiles or JSON.
package output

import (
	"bufio"
	"io"

	"github.com/lgbarn/singularity-chess-go/internal/chess"
)

// Marks used by the text renderer.
const (
	emptyMark     = "."
	highlightMark = "*"
	captureMark   = 'x'
)

// TextOptions controls the plain text renderer.
type TextOptions struct {
	Unicode     bool // draw glyphs instead of FEN letters
	Coordinates bool // label files and ranks
}

// squareSet is a lookup of highlighted squares by index.
type squareSet [chess.NumSquares]bool

func newSquareSet(squares []chess.Square) squareSet {
	var set squareSet
	for _, sq := range squares {
		if sq.InBounds() {
			set[sq.Index()] = true
		}
	}
	return set
}

func (s *squareSet) has(sq chess.Square) bool {
	return s[sq.Index()]
}

// pieceText returns the text drawn for a piece.
func pieceText(p chess.Piece, unicode bool) string {
	if unicode {
		return p.Symbol()
	}
	return string(p.Letter())
}

// WriteText draws the board as an ASCII grid, rank 8 at the top.
// Highlighted empty squares show '*'; a highlighted occupied square is
// preceded by 'x' to mark a capture.
func WriteText(w io.Writer, board *chess.Board, highlights []chess.Square, opts TextOptions) error {
	bw := bufio.NewWriter(w)
	marks := newSquareSet(highlights)

	if opts.Coordinates {
		writeFileLabels(bw)
	}
	for rank := 0; rank < chess.BoardSize; rank++ {
		label := byte('0' + chess.BoardSize - rank)
		if opts.Coordinates {
			bw.WriteByte(label)
		}
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			p, occupied := board.Query(sq)
			switch {
			case occupied && marks.has(sq):
				bw.WriteByte(captureMark)
				bw.WriteString(pieceText(p, opts.Unicode))
			case occupied:
				bw.WriteByte(' ')
				bw.WriteString(pieceText(p, opts.Unicode))
			case marks.has(sq):
				bw.WriteByte(' ')
				bw.WriteString(highlightMark)
			default:
				bw.WriteByte(' ')
				bw.WriteString(emptyMark)
			}
		}
		if opts.Coordinates {
			bw.WriteByte(' ')
			bw.WriteByte(label)
		}
		bw.WriteByte('\n')
	}
	if opts.Coordinates {
		writeFileLabels(bw)
	}
	return bw.Flush()
}

func writeFileLabels(bw *bufio.Writer) {
	bw.WriteByte(' ')
	for file := 0; file < chess.BoardSize; file++ {
		bw.WriteByte(' ')
		bw.WriteByte(byte(chess.ColBase + file))
	}
	bw.WriteByte('\n')
}

// WriteDestinationList writes one line per origin: "Nb1: a3 c3".
func WriteDestinationList(w io.Writer, all []chess.Destinations) error {
	bw := bufio.NewWriter(w)
	for _, d := range all {
		bw.WriteByte(d.Piece.Kind.Letter())
		bw.WriteString(d.Origin.String())
		bw.WriteByte(':')
		for _, sq := range d.Targets {
			bw.WriteByte(' ')
			bw.WriteString(sq.String())
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
