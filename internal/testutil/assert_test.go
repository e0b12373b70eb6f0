package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// Failures cannot be observed through *testing.T, so only passing cases
// are exercised here; the message and board helpers are tested directly.

func TestAssertionsPass(t *testing.T) {
	var nilPtr *int
	wrapped := fmt.Errorf("e2-e5: %w", chesserrors.ErrIllegalMove)

	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, chess.Pos(4, 1), chess.Pos(4, 1), "square %s", "e2")
	AssertNoError(t, nil)
	AssertError(t, errors.New("boom"))
	AssertErrorIs(t, wrapped, chesserrors.ErrIllegalMove)
	AssertContains(t, "Checkmate! Black wins.", "Black")
	AssertTrue(t, true)
	AssertFalse(t, false)
	AssertNil(t, nil)
	AssertNil(t, nilPtr)
	AssertNotNil(t, chess.NewPiece(chess.King, chess.White))
	AssertSameBoard(t, chess.NewInitialBoard(), chess.NewInitialBoard())
}

func TestIsNil(t *testing.T) {
	var p *chess.Piece
	var m map[string]int
	var s []int
	var e error

	tests := []struct {
		name string
		v    interface{}
		want bool
	}{
		{"untyped nil", nil, true},
		{"nil pointer", p, true},
		{"nil map", m, true},
		{"nil slice", s, true},
		{"nil error", e, true},
		{"zero int", 0, false},
		{"empty string", "", false},
		{"piece", chess.NewPiece(chess.Pawn, chess.Black), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNil(tt.v); got != tt.want {
				t.Errorf("isNil(%v) = %v; want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"plain", []interface{}{"after mate"}, "after mate"},
		{"format", []interface{}{"ply %d: %s", 3, "G2-G4"}, "ply 3: G2-G4"},
		{"non-string first", []interface{}{42}, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestBoardRows(t *testing.T) {
	want := []string{
		"rnbqkbnr",
		"pppppppp",
		"........",
		"........",
		"........",
		"........",
		"PPPPPPPP",
		"RNBQKBNR",
	}
	AssertEqual(t, boardRows(chess.NewInitialBoard()), want)

	b := chess.NewBoard()
	b.Place(chess.Pos(4, 0), chess.NewPiece(chess.King, chess.White))
	b.Place(chess.Pos(0, 7), chess.NewPiece(chess.Rook, chess.Black))
	rows := boardRows(b)
	AssertEqual(t, rows[0], "r.......")
	AssertEqual(t, rows[7], "....K...")
}
