// Package testutil provides shared test utilities for the chessrules-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// Well-known move sequences used across tests.
var (
	// FoolsMate is the shortest checkmate: 1.f3 e5 2.g4 Qh4#.
	FoolsMate = []string{"F2-F3", "E7-E5", "G2-G4", "D8-H4"}

	// QueenRaidOnH4 is 1.h4 e6 2.Nf3 Qxh4. The f2 pawn shields e1, so it
	// is not mate.
	QueenRaidOnH4 = []string{"H2-H4", "E7-E6", "G1-F3", "D8-H4"}

	// ScholarsMate is 1.e4 e5 2.Bc4 Nc6 3.Qh5 Nf6 4.Qxf7#.
	ScholarsMate = []string{"E2-E4", "E7-E5", "F1-C4", "B8-C6", "D1-H5", "G8-F6", "H5-F7"}
)

// PlayMoves plays moves in order on g and returns how many were accepted.
// It stops at the first move that is malformed or rejected.
func PlayMoves(g *game.Game, moves ...string) int {
	for i, text := range moves {
		from, to, err := notation.ParseMove(text)
		if err != nil || !g.PlayMove(from, to) {
			return i
		}
	}
	return len(moves)
}

// MustPlay plays moves in order on g.
// It calls t.Fatal if any move is malformed or rejected.
func MustPlay(t *testing.T, g *game.Game, moves ...string) {
	t.Helper()
	for i, text := range moves {
		from, to, err := notation.ParseMove(text)
		if err != nil {
			t.Fatalf("move %d %q: %v", i+1, text, err)
		}
		if !g.PlayMove(from, to) {
			t.Fatalf("move %d %q rejected in position %s", i+1, text, g.FEN())
		}
	}
}

// MustGameFromFEN creates a game from a FEN string.
// It calls t.Fatal if the FEN is invalid.
func MustGameFromFEN(t *testing.T, fen string) *game.Game {
	t.Helper()
	g, err := game.NewFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to load FEN %q: %v", fen, err)
	}
	return g
}
