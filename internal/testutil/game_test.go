package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/game"
)

func TestPlayMoves(t *testing.T) {
	tests := []struct {
		name         string
		moves        []string
		wantAccepted int
		wantFinished bool
	}{
		{"empty", nil, 0, false},
		{"opening", []string{"E2-E4", "E7-E5", "G1-F3"}, 3, false},
		{"fools mate", FoolsMate, 4, true},
		{"scholars mate", ScholarsMate, 7, true},
		{"stops at illegal", []string{"E2-E4", "E2-E4", "E7-E5"}, 1, false},
		{"stops at malformed", []string{"E2-E4", "E7E5"}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := game.New()
			got := PlayMoves(g, tt.moves...)
			AssertEqual(t, got, tt.wantAccepted, "accepted moves")
			AssertEqual(t, g.Finished(), tt.wantFinished, "finished")
		})
	}
}

func TestMustPlay(t *testing.T) {
	g := game.New()
	MustPlay(t, g, "D2-D4", "D7-D5")
	AssertEqual(t, len(g.Plies()), 2)
	AssertEqual(t, g.CurrentPlayer(), chess.White)
}

func TestMustGameFromFEN(t *testing.T) {
	g := MustGameFromFEN(t, "4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	AssertEqual(t, g.CurrentPlayer(), chess.Black)
	AssertFalse(t, g.Finished())
}
