package engine

import (
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/singularity-chess-go/internal/chess"
	"github.com/lgbarn/singularity-chess-go/internal/testutil"
)

func TestLegalDestinationsEmptyBoardCounts(t *testing.T) {
	tests := []struct {
		name   string
		kind   chess.PieceKind
		origin chess.Square
		want   int
	}{
		{"king centre", chess.King, chess.Sq(3, 3), 8},
		{"king corner", chess.King, chess.Sq(0, 0), 3},
		{"king edge", chess.King, chess.Sq(0, 4), 5},
		{"knight centre", chess.Knight, chess.Sq(3, 3), 8},
		{"knight corner", chess.Knight, chess.Sq(0, 0), 2},
		{"knight edge", chess.Knight, chess.Sq(7, 4), 4},
		{"bishop centre", chess.Bishop, chess.Sq(3, 4), 13},
		{"bishop corner", chess.Bishop, chess.Sq(7, 7), 7},
		{"rook anywhere", chess.Rook, chess.Sq(3, 4), 14},
		{"rook corner", chess.Rook, chess.Sq(0, 0), 14},
		{"queen centre", chess.Queen, chess.Sq(3, 4), 27},
		{"queen corner", chess.Queen, chess.Sq(0, 7), 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, colour := range []chess.Colour{chess.White, chess.Black} {
				board := chess.NewBoard()
				piece := chess.Piece{Kind: tt.kind, Colour: colour}
				board.Place(tt.origin, piece)
				got := LegalDestinations(piece, tt.origin, board)
				if len(got) != tt.want {
					t.Errorf("LegalDestinations(%v, %v) returned %d squares %v; want %d",
						piece, tt.origin, len(got), got, tt.want)
				}
			}
		})
	}
}

func TestKingDestinations(t *testing.T) {
	board := chess.NewBoard()
	king := chess.W(chess.King)
	origin := testutil.MustSquare(t, "d5")
	board.Place(origin, king)

	got := LegalDestinations(king, origin, board)
	want := testutil.MustSquares(t, "c6", "d6", "e6", "c5", "e5", "c4", "d4", "e4")
	testutil.AssertSquares(t, got, want)

	// Friendly pieces block, enemy pieces are captured.
	board.Place(testutil.MustSquare(t, "d6"), chess.W(chess.Pawn))
	board.Place(testutil.MustSquare(t, "e4"), chess.B(chess.Pawn))
	got = LegalDestinations(king, origin, board)
	want = testutil.MustSquares(t, "c6", "e6", "c5", "e5", "c4", "d4", "e4")
	testutil.AssertSquares(t, got, want)
}

func TestKnightDestinationsOrder(t *testing.T) {
	board := chess.NewBoard()
	knight := chess.B(chess.Knight)
	origin := testutil.MustSquare(t, "d5")
	board.Place(origin, knight)

	got := LegalDestinations(knight, origin, board)
	want := testutil.MustSquares(t, "b6", "b4", "c7", "c3", "e7", "e3", "f6", "f4")
	testutil.AssertSquares(t, got, want)
}

func TestKnightJumpsOverPieces(t *testing.T) {
	board := chess.NewStandardBoard()
	origin := testutil.MustSquare(t, "b1")
	got := LegalDestinations(chess.W(chess.Knight), origin, board)
	testutil.AssertSameSquares(t, got, testutil.MustSquares(t, "a3", "c3"))
}

func TestPawnDestinations(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]chess.Piece
		origin string
		want   []string
	}{
		{
			name:   "white double push",
			pieces: map[string]chess.Piece{"e2": chess.W(chess.Pawn)},
			origin: "e2",
			want:   []string{"e3", "e4"},
		},
		{
			name:   "black double push",
			pieces: map[string]chess.Piece{"d7": chess.B(chess.Pawn)},
			origin: "d7",
			want:   []string{"d6", "d5"},
		},
		{
			name:   "single push off start rank",
			pieces: map[string]chess.Piece{"e3": chess.W(chess.Pawn)},
			origin: "e3",
			want:   []string{"e4"},
		},
		{
			name: "blocked directly",
			pieces: map[string]chess.Piece{
				"e2": chess.W(chess.Pawn),
				"e3": chess.B(chess.Knight),
			},
			origin: "e2",
			want:   nil,
		},
		{
			name: "double push blocked",
			pieces: map[string]chess.Piece{
				"e2": chess.W(chess.Pawn),
				"e4": chess.W(chess.Knight),
			},
			origin: "e2",
			want:   []string{"e3"},
		},
		{
			name: "captures only enemies",
			pieces: map[string]chess.Piece{
				"e4": chess.W(chess.Pawn),
				"e5": chess.B(chess.Pawn),
				"d5": chess.B(chess.Knight),
				"f5": chess.W(chess.Bishop),
			},
			origin: "e4",
			want:   []string{"d5"},
		},
		{
			name: "push and both captures",
			pieces: map[string]chess.Piece{
				"d5": chess.B(chess.Pawn),
				"c4": chess.W(chess.Rook),
				"e4": chess.W(chess.Queen),
			},
			origin: "d5",
			want:   []string{"d4", "c4", "e4"},
		},
		{
			name: "edge file capture",
			pieces: map[string]chess.Piece{
				"a2": chess.W(chess.Pawn),
				"b3": chess.B(chess.Pawn),
			},
			origin: "a2",
			want:   []string{"a3", "a4", "b3"},
		},
		{
			name:   "last rank",
			pieces: map[string]chess.Piece{"e8": chess.W(chess.Pawn)},
			origin: "e8",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.BoardWith(t, tt.pieces)
			origin := testutil.MustSquare(t, tt.origin)
			piece, ok := board.Query(origin)
			if !ok {
				t.Fatalf("no piece on %s", tt.origin)
			}
			got := LegalDestinations(piece, origin, board)
			testutil.AssertSquares(t, got, testutil.MustSquares(t, tt.want...))
		})
	}
}

func TestPawnDiagonalNeedsEnemy(t *testing.T) {
	board := chess.NewBoard()
	pawn := chess.W(chess.Pawn)
	origin := testutil.MustSquare(t, "d4")
	board.Place(origin, pawn)

	for _, sq := range LegalDestinations(pawn, origin, board) {
		if sq.File != origin.File {
			t.Errorf("pawn on empty board reached diagonal %v", sq)
		}
	}
}

func TestSlideDestinations(t *testing.T) {
	board := testutil.BoardWith(t, map[string]chess.Piece{
		"d4": chess.W(chess.Rook),
		"d6": chess.B(chess.Pawn),
		"f4": chess.W(chess.Pawn),
	})
	origin := testutil.MustSquare(t, "d4")

	got := LegalDestinations(chess.W(chess.Rook), origin, board)
	want := testutil.MustSquares(t, "d5", "d6", "c4", "b4", "a4", "e4", "d3", "d2", "d1")
	testutil.AssertSquares(t, got, want)
}

func TestSlidersBoxedIn(t *testing.T) {
	board := chess.NewStandardBoard()
	for _, text := range []string{"a1", "c1", "d1", "f1", "h1", "a8", "c8", "d8", "f8", "h8"} {
		origin := testutil.MustSquare(t, text)
		piece, _ := board.Query(origin)
		if got := LegalDestinations(piece, origin, board); len(got) != 0 {
			t.Errorf("LegalDestinations(%v on %s) = %v; want none", piece, text, got)
		}
	}
}

func TestLegalDestinationsClosure(t *testing.T) {
	for _, base := range []*chess.Board{chess.NewBoard(), chess.NewStandardBoard()} {
		for i := 0; i < chess.NumSquares; i++ {
			origin := chess.SquareFromIndex(i)
			for kind := chess.Pawn; kind < chess.NumPieceKinds; kind++ {
				for _, colour := range []chess.Colour{chess.White, chess.Black} {
					board := base.Copy()
					piece := chess.Piece{Kind: kind, Colour: colour}
					board.Place(origin, piece)
					before := board.Copy()

					for _, sq := range LegalDestinations(piece, origin, board) {
						if !sq.InBounds() {
							t.Fatalf("%v on %v produced out-of-bounds %v", piece, origin, sq)
						}
						if sq == origin {
							t.Fatalf("%v on %v produced its own square", piece, origin)
						}
						if occupant, ok := board.Query(sq); ok && occupant.Colour == colour {
							t.Fatalf("%v on %v may capture own %v on %v", piece, origin, occupant, sq)
						}
					}
					if !board.Equal(before) {
						t.Fatalf("LegalDestinations(%v, %v) modified the board", piece, origin)
					}
				}
			}
		}
	}
}

func TestLegalDestinationsDeterministic(t *testing.T) {
	board, _, err := ParseFEN("r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4")
	testutil.AssertNoError(t, err)
	for _, origin := range board.Occupied(chess.White) {
		piece, _ := board.Query(origin)
		first := LegalDestinations(piece, origin, board)
		second := LegalDestinations(piece, origin, board)
		testutil.AssertSquares(t, second, first, "repeat call for %v", origin)
	}
}

func TestLegalDestinationsDegenerate(t *testing.T) {
	if got := LegalDestinations(chess.W(chess.Queen), chess.Sq(0, 0), nil); got != nil {
		t.Errorf("nil board = %v; want nil", got)
	}
	board := chess.NewBoard()
	if got := LegalDestinations(chess.W(chess.Queen), chess.Sq(8, 0), board); got != nil {
		t.Errorf("out-of-bounds origin = %v; want nil", got)
	}
	if got := LegalDestinations(chess.Piece{Kind: chess.NumPieceKinds}, chess.Sq(3, 3), board); got != nil {
		t.Errorf("unknown kind = %v; want nil", got)
	}
}

func TestCanMove(t *testing.T) {
	board := chess.NewStandardBoard()
	tests := []struct {
		from, to string
		want     bool
	}{
		{"e2", "e4", true},
		{"e2", "e5", false},
		{"g1", "f3", true},
		{"g1", "g3", false},
		{"d1", "d3", false},
		{"e7", "e5", true},
		{"e4", "e5", false},
	}
	for _, tt := range tests {
		got := CanMove(board, testutil.MustSquare(t, tt.from), testutil.MustSquare(t, tt.to))
		if got != tt.want {
			t.Errorf("CanMove(%s, %s) = %v; want %v", tt.from, tt.to, got, tt.want)
		}
	}
	testutil.AssertFalse(t, CanMove(nil, chess.Sq(0, 0), chess.Sq(0, 1)), "nil board")
}

func TestAllDestinations(t *testing.T) {
	board := chess.NewStandardBoard()
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		all := AllDestinations(board, colour)
		testutil.AssertEqual(t, len(all), 16, "%v origins", colour)
		testutil.AssertEqual(t, CountDestinations(all), 20, "%v moves", colour)
		for i := 1; i < len(all); i++ {
			if all[i-1].Origin.Index() >= all[i].Origin.Index() {
				t.Errorf("%v origins out of order at %d: %v then %v", colour, i, all[i-1].Origin, all[i].Origin)
			}
		}
		for _, d := range all {
			if d.Piece.Colour != colour {
				t.Errorf("AllDestinations(%v) included %v", colour, d.Piece)
			}
		}
	}
	if AllDestinations(nil, chess.White) != nil {
		t.Error("AllDestinations(nil) should be nil")
	}
}

// Positions without castling, en passant, promotion, pins or checks, where
// every pseudo-legal move is also legal.
var quietFENs = map[string]string{
	"Initial":   InitialFEN,
	"Italian":   "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	"Black":     "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 2 3",
	"RookEnd":   "8/8/8/3k4/8/8/8/R3K3 w - - 0 1",
	"Scattered": "4k3/8/2n5/8/3B4/8/1N6/4K3 w - - 0 1",
}

func TestAgainstNotnilMoveGenerator(t *testing.T) {
	for name, fen := range quietFENs {
		t.Run(name, func(t *testing.T) {
			board, toMove, err := ParseFEN(fen)
			testutil.AssertNoError(t, err)

			got := map[string]map[string]bool{}
			for _, d := range AllDestinations(board, toMove) {
				for _, sq := range d.Targets {
					if got[d.Origin.String()] == nil {
						got[d.Origin.String()] = map[string]bool{}
					}
					got[d.Origin.String()][sq.String()] = true
				}
			}

			opt, err := nchess.FEN(fen)
			testutil.AssertNoError(t, err)
			game := nchess.NewGame(opt)
			want := map[string]map[string]bool{}
			for _, m := range game.ValidMoves() {
				from, to := m.S1().String(), m.S2().String()
				if want[from] == nil {
					want[from] = map[string]bool{}
				}
				want[from][to] = true
			}

			testutil.AssertEqual(t, got, want)
		})
	}
}
