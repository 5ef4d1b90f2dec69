package chess

// cell is one square of the board: an occupant and whether it is present.
type cell struct {
	piece    Piece
	occupied bool
}

// Board is an 8x8 grid of squares, each optionally holding a piece.
//
// The board enforces structural invariants only (bounds, one occupant per
// square). It knows nothing of chess rules: legality is the caller's job.
// Squares are stored in a linear array indexed by rank*8 + file.
type Board struct {
	cells [NumSquares]cell
}

// backRank is the file-ordered layout of each side's back rank.
var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewStandardBoard creates a board with the standard chess starting position.
// Black occupies ranks 0 and 1, White ranks 6 and 7.
func NewStandardBoard() *Board {
	b := NewBoard()
	for file := 0; file < BoardSize; file++ {
		b.Place(Sq(file, BlackBackRank), B(backRank[file]))
		b.Place(Sq(file, BlackPawnRank), B(Pawn))
		b.Place(Sq(file, WhitePawnRank), W(Pawn))
		b.Place(Sq(file, WhiteBackRank), W(backRank[file]))
	}
	return b
}

// Query returns a copy of the occupant of sq. The second result is false
// when the square is empty or out of bounds.
func (b *Board) Query(sq Square) (Piece, bool) {
	if !sq.InBounds() {
		return Piece{}, false
	}
	c := b.cells[sq.Index()]
	return c.piece, c.occupied
}

// Place puts piece on sq, overwriting any occupant. Out-of-bounds squares
// are ignored.
func (b *Board) Place(sq Square, piece Piece) {
	if !sq.InBounds() {
		return
	}
	b.cells[sq.Index()] = cell{piece: piece, occupied: true}
}

// Clear removes any occupant of sq.
func (b *Board) Clear(sq Square) {
	if !sq.InBounds() {
		return
	}
	b.cells[sq.Index()] = cell{}
}

// MovePiece relocates the occupant of from to to, replacing whatever stood
// there. It returns false without touching the board when from is empty or
// either square is off the board.
func (b *Board) MovePiece(from, to Square) bool {
	if !to.InBounds() {
		return false
	}
	piece, ok := b.Query(from)
	if !ok {
		return false
	}
	b.Place(to, piece)
	if from != to {
		b.Clear(from)
	}
	return true
}

// IsEmpty reports whether sq is in bounds and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	if !sq.InBounds() {
		return false
	}
	return !b.cells[sq.Index()].occupied
}

// Occupied returns the squares holding pieces of the given colour, in
// index order.
func (b *Board) Occupied(colour Colour) []Square {
	var squares []Square
	for i, c := range b.cells {
		if c.occupied && c.piece.Colour == colour {
			squares = append(squares, SquareFromIndex(i))
		}
	}
	return squares
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for _, c := range b.cells {
		if c.occupied {
			n++
		}
	}
	return n
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether both boards hold the same pieces on the same squares.
func (b *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}
	return b.cells == other.cells
}
