// Package game owns a board together with the turn, the move count and the
// current selection, and turns select/drop gestures into moves.
package game

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/singularity-chess-go/internal/chess"
	"github.com/lgbarn/singularity-chess-go/internal/config"
	"github.com/lgbarn/singularity-chess-go/internal/engine"
	"github.com/lgbarn/singularity-chess-go/internal/errors"
	"github.com/lgbarn/singularity-chess-go/internal/hashing"
)

// Session is a single game in progress. It is not safe for concurrent use.
type Session struct {
	cfg       *config.Config
	board     *chess.Board
	turn      chess.Colour
	moveCount int
	selected  chess.Square
	hasSel    bool
	history   []chess.Move
	cache     *hashing.DestinationCache // nil when caching is disabled
}

// Option configures a Session.
type Option func(*Session) error

// WithBoard starts from a copy of board.
func WithBoard(board *chess.Board) Option {
	return func(s *Session) error {
		if board != nil {
			s.board = board.Copy()
		}
		return nil
	}
}

// WithTurn sets the side to move.
func WithTurn(colour chess.Colour) Option {
	return func(s *Session) error {
		s.turn = colour
		return nil
	}
}

// WithFEN starts from a FEN position, including its side to move.
func WithFEN(fen string) Option {
	return func(s *Session) error {
		board, toMove, err := engine.ParseFEN(fen)
		if err != nil {
			return err
		}
		s.board = board
		s.turn = toMove
		return nil
	}
}

// NewSession creates a session on the standard layout with White to move,
// unless cfg.FEN or an option says otherwise. A nil cfg uses the defaults.
func NewSession(cfg *config.Config, opts ...Option) (*Session, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	s := &Session{
		cfg:   cfg,
		board: chess.NewStandardBoard(),
		turn:  chess.White,
	}
	if cfg.FEN != "" {
		opts = append([]Option{WithFEN(cfg.FEN)}, opts...)
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, errors.Wrap(err, "new session")
		}
	}
	if cfg.Engine != nil && cfg.Engine.CacheEnabled() {
		s.cache = hashing.NewDestinationCache(cfg.Engine.CacheCapacity)
	}
	return s, nil
}

// Select picks up the piece on sq. The piece must belong to the side to
// move. Any previous selection is replaced.
func (s *Session) Select(sq chess.Square) error {
	if !sq.InBounds() {
		return s.squareError("select", errors.ErrInvalidSquare, "", "", "")
	}
	piece, ok := s.board.Query(sq)
	if !ok {
		return s.squareError("select", errors.ErrNoPiece, sq.String(), "", "")
	}
	if piece.Colour != s.turn {
		return s.squareError("select", errors.ErrWrongTurn, sq.String(), "", piece.String())
	}
	s.selected, s.hasSel = sq, true
	s.cfg.Logf(config.Commentary, "select %s %s\n", piece, sq)
	return nil
}

// Selected returns the selected square, if any.
func (s *Session) Selected() (chess.Square, bool) {
	return s.selected, s.hasSel
}

// Deselect drops the current selection without moving.
func (s *Session) Deselect() {
	s.hasSel = false
}

// Highlights returns the destinations of the selected piece, or nil when
// nothing is selected.
func (s *Session) Highlights() []chess.Square {
	if !s.hasSel {
		return nil
	}
	return s.destinations(s.selected)
}

// Destinations returns the destinations of the piece on sq regardless of
// whose turn it is.
func (s *Session) Destinations(sq chess.Square) []chess.Square {
	return s.destinations(sq)
}

func (s *Session) destinations(sq chess.Square) []chess.Square {
	if s.cache != nil {
		return s.cache.Destinations(s.board, s.turn, sq)
	}
	piece, ok := s.board.Query(sq)
	if !ok {
		return nil
	}
	return engine.LegalDestinations(piece, sq, s.board)
}

// Drop releases the selected piece on to. An unreachable destination
// returns ErrIllegalMove and clears the selection, leaving the board as it
// was. A legal drop moves the piece, passes the turn and counts the move.
func (s *Session) Drop(to chess.Square) error {
	if !s.hasSel {
		return s.squareError("drop", errors.ErrNoSelection, "", to.String(), "")
	}
	from := s.selected
	s.hasSel = false

	piece, _ := s.board.Query(from)
	if !slices.Contains(s.destinations(from), to) {
		return s.squareError("drop", errors.ErrIllegalMove, from.String(), to.String(), piece.String())
	}

	move := chess.Move{From: from, To: to, Piece: piece}
	if captured, ok := s.board.Query(to); ok {
		move.Captured, move.Capture = captured, true
	}
	s.board.MovePiece(from, to)
	s.turn = s.turn.Opposite()
	s.moveCount++
	move.Zobrist = hashing.Hash(s.board, s.turn)
	s.history = append(s.history, move)

	if move.Capture {
		s.cfg.Logf(config.Commentary, "%d. %s %s takes %s\n", s.moveCount, piece, move, move.Captured)
	} else {
		s.cfg.Logf(config.Commentary, "%d. %s %s\n", s.moveCount, piece, move)
	}
	return nil
}

// Move selects from and drops on to.
func (s *Session) Move(from, to chess.Square) error {
	if err := s.Select(from); err != nil {
		return err
	}
	return s.Drop(to)
}

// Play applies a list of moves in order and stops at the first error.
func (s *Session) Play(moves []chess.Move) error {
	for _, m := range moves {
		if err := s.Move(m.From, m.To); err != nil {
			return err
		}
	}
	return nil
}

// Preview returns a copy of the board with the selected piece placed on
// to, as shown while dragging. The live board is not touched. Without a
// selection it returns a plain copy.
func (s *Session) Preview(to chess.Square) *chess.Board {
	preview := s.board.Copy()
	if s.hasSel {
		preview.MovePiece(s.selected, to)
	}
	return preview
}

// Board returns a copy of the live board.
func (s *Session) Board() *chess.Board {
	return s.board.Copy()
}

// Turn returns the side to move.
func (s *Session) Turn() chess.Colour {
	return s.turn
}

// MoveCount returns the number of moves played, counting each side's move.
func (s *Session) MoveCount() int {
	return s.moveCount
}

// History returns the moves played so far.
func (s *Session) History() []chess.Move {
	out := make([]chess.Move, len(s.history))
	copy(out, s.history)
	return out
}

// FEN returns the current position.
func (s *Session) FEN() string {
	return engine.BoardToFEN(s.board, s.turn)
}

// CacheStats returns destination cache hits and misses, both zero when
// caching is disabled.
func (s *Session) CacheStats() (hits, misses int) {
	if s.cache == nil {
		return 0, 0
	}
	return s.cache.Hits(), s.cache.Misses()
}

func (s *Session) squareError(op string, err error, from, to, piece string) error {
	return &errors.SquareError{
		Err:   err,
		Op:    op,
		From:  from,
		To:    to,
		Piece: piece,
		Ply:   s.moveCount + 1,
	}
}
