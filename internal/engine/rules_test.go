package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// mustBoard builds a board from a FEN string or fails the test.
func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, _, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// sq converts an algebraic square name such as "e2" to a position.
func sq(name string) chess.Position {
	return chess.Pos(int(name[0]-'a'), int(name[1]-'1'))
}

func TestIsValidMove(t *testing.T) {
	tests := []struct {
		name         string
		fen          string
		from, to     string
		colour       chess.Colour
		hypothetical bool
		want         bool
	}{
		// Ownership
		{"empty source", InitialFEN, "e4", "e5", chess.White, false, false},
		{"opponent piece", InitialFEN, "e7", "e5", chess.White, false, false},
		{"own piece on destination", InitialFEN, "g1", "e2", chess.White, false, false},

		// Pawns
		{"pawn single push", InitialFEN, "e2", "e3", chess.White, false, true},
		{"pawn double push from start", InitialFEN, "e2", "e4", chess.White, false, true},
		{"pawn triple push", InitialFEN, "e2", "e5", chess.White, false, false},
		{"pawn sideways", InitialFEN, "e2", "f2", chess.White, false, false},
		{"black pawn double push", InitialFEN, "d7", "d5", chess.Black, false, true},
		{"black pawn backwards", "4k3/8/8/3p4/8/8/8/4K3 b - - 0 1", "d5", "d6", chess.Black, false, false},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4", "d5", chess.White, false, true},
		{"pawn diagonal to empty", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4", "f5", chess.White, false, false},
		{"pawn push onto piece", "4k3/8/8/8/4p3/4P3/8/4K3 w - - 0 1", "e3", "e4", chess.White, false, false},
		{"double push over piece", "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1", "e2", "e4", chess.White, false, true},
		{"double push onto piece", "4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1", "e2", "e4", chess.White, false, false},
		{"double push off start rank", "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1", "e3", "e5", chess.White, false, false},

		// Knights
		{"knight develops", InitialFEN, "g1", "f3", chess.White, false, true},
		{"knight jumps the pawn wall", InitialFEN, "b1", "a3", chess.White, false, true},
		{"knight not an L", InitialFEN, "g1", "g3", chess.White, false, false},
		{"knight onto opponent", "4k3/8/8/3p4/8/4N3/8/4K3 w - - 0 1", "e3", "d5", chess.White, false, false},
		{"knight onto opponent hypothetically", "4k3/8/8/3p4/8/4N3/8/4K3 w - - 0 1", "e3", "d5", chess.White, true, false},

		// Sliders
		{"bishop blocked", InitialFEN, "f1", "c4", chess.White, false, false},
		{"queen blocked", InitialFEN, "d1", "d3", chess.White, false, false},
		{"rook slides", "4k3/8/8/8/R2p4/8/8/4K3 w - - 0 1", "a4", "c4", chess.White, false, true},
		{"rook captures", "4k3/8/8/8/R2p4/8/8/4K3 w - - 0 1", "a4", "d4", chess.White, false, true},
		{"rook through piece", "4k3/8/8/8/R2p4/8/8/4K3 w - - 0 1", "a4", "e4", chess.White, false, false},
		{"rook full file", "4k3/8/8/8/R2p4/8/8/4K3 w - - 0 1", "a4", "a8", chess.White, false, true},
		{"rook diagonal", "4k3/8/8/8/R2p4/8/8/4K3 w - - 0 1", "a4", "b5", chess.White, false, false},
		{"bishop corner to corner", "4k3/8/8/8/8/8/8/B3K3 w - - 0 1", "a1", "h8", chess.White, false, true},

		// Kings
		{"king onto opponent", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", "e1", "d2", chess.White, false, false},
		{"king steps beside opponent", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", "e1", "f1", chess.White, false, true},
		{"king two squares", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "e1", "g1", chess.White, false, false},
		{"king into check", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", "e1", "d1", chess.White, false, false},
		{"king out of check", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", "e1", "e2", chess.White, false, true},
		{"king into check hypothetically", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", "e1", "d1", chess.White, true, true},

		// Self-check filter
		{"pinned rook leaves file", "4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1", "e2", "d2", chess.White, false, false},
		{"pinned rook hypothetical", "4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1", "e2", "d2", chess.White, true, true},
		{"pinned rook along file", "4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1", "e2", "e5", chess.White, false, true},
		{"pinned rook captures pinner", "4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1", "e2", "e8", chess.White, false, true},
		{"ignoring check", "4k3/8/8/8/8/8/P7/r3K3 w - - 0 1", "a2", "a3", chess.White, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			got := IsValidMove(board, sq(tt.from), sq(tt.to), tt.colour, tt.hypothetical)
			if got != tt.want {
				t.Errorf("IsValidMove(%s, %s, %v, %v) = %v, want %v",
					tt.from, tt.to, tt.colour, tt.hypothetical, got, tt.want)
			}
		})
	}
}

// TestIsValidMove_LeavesBoardUnchanged checks that the self-check simulation
// is fully reverted, whether the move is accepted or rejected.
func TestIsValidMove_LeavesBoardUnchanged(t *testing.T) {
	board := mustBoard(t, "4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1")
	before := board.Occupants()

	for _, to := range []string{"d2", "e5", "e8", "a2"} {
		IsValidMove(board, sq("e2"), sq(to), chess.White, false)
		if diff := cmp.Diff(before, board.Occupants()); diff != "" {
			t.Fatalf("board changed after IsValidMove(e2, %s) (-before +after):\n%s", to, diff)
		}
	}
}

func TestSlidingMoves_IntermediateSquaresEmpty(t *testing.T) {
	board := mustBoard(t, "r3k3/1p6/8/3Q4/8/8/6P1/4K3 w - - 0 1")
	from := sq("d5")

	for _, to := range CandidateMoves(board, from) {
		dx := sign(to.File - from.File)
		dy := sign(to.Rank - from.Rank)
		for p := from.Add(dx, dy); p != to; p = p.Add(dx, dy) {
			if !board.TileAt(p).IsEmpty() {
				t.Errorf("candidate %v->%v passes over occupied %v", from, to, p)
			}
		}
	}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func TestIsFirstMoveForPawn(t *testing.T) {
	board := chess.NewInitialBoard()

	tests := []struct {
		square string
		want   bool
	}{
		{"a2", true},
		{"h2", true},
		{"a7", true},
		{"e7", true},
		{"e1", false}, // king, not a pawn
		{"e4", false}, // empty
	}
	for _, tt := range tests {
		if got := IsFirstMoveForPawn(sq(tt.square), board); got != tt.want {
			t.Errorf("IsFirstMoveForPawn(%s) = %v, want %v", tt.square, got, tt.want)
		}
	}

	moved := mustBoard(t, "4k3/8/8/8/8/1P6/8/4K3 w - - 0 1")
	if IsFirstMoveForPawn(sq("b3"), moved) {
		t.Error("IsFirstMoveForPawn(b3) = true for a pawn off its starting rank")
	}

	// A white pawn on Black's starting rank has moved.
	if IsFirstMoveForPawn(sq("c7"), mustBoard(t, "4k3/2P5/8/8/8/8/8/4K3 w - - 0 1")) {
		t.Error("IsFirstMoveForPawn(c7) = true for a white pawn")
	}
}
