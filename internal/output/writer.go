package output

import (
	"io"

	"github.com/lgbarn/singularity-chess-go/internal/chess"
	"github.com/lgbarn/singularity-chess-go/internal/config"
)

// PositionWriter is the interface for writing positions to output.
// Different implementations handle different formats (text, colour, JSON).
type PositionWriter interface {
	// WriteBoard draws the board with the given squares highlighted.
	WriteBoard(board *chess.Board, highlights []chess.Square) error

	// WritePosition writes the destinations generated in a position.
	WritePosition(fen string, toMove chess.Colour, all []chess.Destinations) error

	// Close writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg.Format.
func NewWriter(w io.Writer, cfg *config.OutputConfig) PositionWriter {
	opts := TextOptions{Unicode: cfg.Unicode, Coordinates: cfg.Coordinates}
	switch cfg.Format {
	case config.FormatColour:
		return &ColourWriter{TextWriter: TextWriter{w: w, opts: opts}, palette: DefaultPalette(false)}
	case config.FormatJSON:
		return NewJSONWriter(w)
	default:
		return &TextWriter{w: w, opts: opts}
	}
}

// TextWriter writes plain text.
type TextWriter struct {
	w    io.Writer
	opts TextOptions
}

// NewTextWriter creates a plain text writer.
func NewTextWriter(w io.Writer, opts TextOptions) *TextWriter {
	return &TextWriter{w: w, opts: opts}
}

// WriteBoard writes the board grid.
func (tw *TextWriter) WriteBoard(board *chess.Board, highlights []chess.Square) error {
	return WriteText(tw.w, board, highlights, tw.opts)
}

// WritePosition writes one line per origin.
func (tw *TextWriter) WritePosition(_ string, _ chess.Colour, all []chess.Destinations) error {
	return WriteDestinationList(tw.w, all)
}

// Close is a no-op; text is written immediately.
func (tw *TextWriter) Close() error {
	return nil
}

// ColourWriter draws boards with coloured tiles and lists destinations as
// plain text.
type ColourWriter struct {
	TextWriter
	palette *Palette
}

// NewColourWriter creates a colour writer with the given palette.
func NewColourWriter(w io.Writer, opts TextOptions, palette *Palette) *ColourWriter {
	return &ColourWriter{TextWriter: TextWriter{w: w, opts: opts}, palette: palette}
}

// WriteBoard writes the tiled board.
func (cw *ColourWriter) WriteBoard(board *chess.Board, highlights []chess.Square) error {
	return WriteColour(cw.w, board, highlights, cw.palette, cw.opts)
}

// JSONWriter buffers positions and writes them as one JSON document on
// Close. Boards are recorded by FEN only.
type JSONWriter struct {
	w         io.Writer
	positions []*JSONPosition
}

// JSONOutput holds every position written.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteBoard is ignored; the FEN in each position describes the board.
func (jw *JSONWriter) WriteBoard(*chess.Board, []chess.Square) error {
	return nil
}

// WritePosition buffers a position.
func (jw *JSONWriter) WritePosition(fen string, toMove chess.Colour, all []chess.Destinations) error {
	jw.positions = append(jw.positions, PositionToJSON(fen, toMove, all))
	return nil
}

// Close writes all buffered positions.
func (jw *JSONWriter) Close() error {
	if jw.positions == nil {
		jw.positions = []*JSONPosition{}
	}
	err := WriteJSON(jw.w, &JSONOutput{Positions: jw.positions})
	jw.positions = nil
	return err
}
