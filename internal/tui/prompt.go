// Package tui drives a game from user input, either as a full-screen
// bubbletea program or as a plain line prompt.
package tui

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// Messages shown to the player.
const (
	MsgPrompt       = "Enter move (e.g. A2-A3): "
	MsgInvalidInput = "Invalid Input!"
	MsgInputHelp    = "Valid input is in form: A2-A3"
	MsgIllegalMove  = "ILLEGAL MOVE!"
	MsgFinished     = "Game has finished. Goodbye!"
)

// Outcome classifies the result of one line of input.
type Outcome int

const (
	Played  Outcome = iota // move committed
	Invalid                // not of the form A2-A3
	Illegal                // well-formed but rejected by the rules
	Over                   // game was already finished
)

// PlayLine parses line and plays it on g. It returns the outcome and the
// feedback lines to show the player.
func PlayLine(g *game.Game, line string) (Outcome, []string) {
	if g.Finished() {
		return Over, []string{MsgFinished}
	}

	from, to, err := notation.ParseMove(line)
	if err != nil {
		return Invalid, []string{MsgInvalidInput, MsgInputHelp}
	}

	if !g.PlayMove(from, to) {
		return Illegal, []string{MsgIllegalMove}
	}

	var out []string
	switch {
	case g.Finished():
		winner, _ := g.Winner()
		out = append(out, "Checkmate! "+winner.String()+" wins.", MsgFinished)
	case g.InCheck():
		out = append(out, g.CurrentPlayer().String()+" is in check.")
	}
	return Played, out
}

// Hint lists the legal moves of the side to move in A2-A3 form.
func Hint(g *game.Game) string {
	moves := g.LegalMoves()
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = notation.FormatMove(m.From, m.To)
	}
	return strings.Join(texts, " ")
}
