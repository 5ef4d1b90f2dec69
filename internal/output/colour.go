package output

import (
	"bufio"
	"io"

	"github.com/fatih/color"

	"github.com/lgbarn/singularity-chess-go/internal/chess"
)

// Palette holds the tile colours. Squares with an even file+rank (a8, c8,
// ...) are light blue and the rest white.
type Palette struct {
	Light     *color.Color
	Dark      *color.Color
	Highlight *color.Color
	Capture   *color.Color
}

// DefaultPalette returns the standard tile colours. With force set, colour
// codes are written even when the output is not a terminal.
func DefaultPalette(force bool) *Palette {
	p := &Palette{
		Light:     color.New(color.FgBlack, color.BgHiCyan),
		Dark:      color.New(color.FgBlack, color.BgHiWhite),
		Highlight: color.New(color.FgBlack, color.BgHiYellow),
		Capture:   color.New(color.FgHiWhite, color.BgRed, color.Bold),
	}
	if force {
		for _, c := range []*color.Color{p.Light, p.Dark, p.Highlight, p.Capture} {
			c.EnableColor()
		}
	}
	return p
}

// tile picks the colour for sq.
func (p *Palette) tile(sq chess.Square, highlighted, occupied bool) *color.Color {
	switch {
	case highlighted && occupied:
		return p.Capture
	case highlighted:
		return p.Highlight
	case (sq.File+sq.Rank)%2 == 0:
		return p.Light
	default:
		return p.Dark
	}
}

// WriteColour draws the board as coloured three-character tiles.
func WriteColour(w io.Writer, board *chess.Board, highlights []chess.Square, palette *Palette, opts TextOptions) error {
	if palette == nil {
		palette = DefaultPalette(false)
	}
	bw := bufio.NewWriter(w)
	marks := newSquareSet(highlights)

	for rank := 0; rank < chess.BoardSize; rank++ {
		label := byte('0' + chess.BoardSize - rank)
		if opts.Coordinates {
			bw.WriteByte(label)
			bw.WriteByte(' ')
		}
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			p, occupied := board.Query(sq)
			text := " "
			if occupied {
				text = pieceText(p, opts.Unicode)
			}
			bw.WriteString(palette.tile(sq, marks.has(sq), occupied).Sprint(" " + text + " "))
		}
		bw.WriteByte('\n')
	}
	if opts.Coordinates {
		bw.WriteString("  ")
		for file := 0; file < chess.BoardSize; file++ {
			bw.WriteByte(' ')
			bw.WriteByte(byte(chess.ColBase + file))
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
