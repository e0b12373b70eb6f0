package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/tui"
)

// runPrompt plays g by reading one move per line from in. The board is
// redrawn after every accepted move. It returns when the game is finished
// or in is exhausted.
func runPrompt(g *game.Game, cfg *config.Config, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	if err := output.RenderBoard(out, g.Board(), &cfg.Output); err != nil {
		return err
	}
	for !g.Finished() {
		fmt.Fprintf(out, "%s: %s", g.CurrentPlayer(), tui.MsgPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		outcome, feedback := tui.PlayLine(g, scanner.Text())
		if outcome == tui.Played {
			if err := output.RenderBoard(out, g.Board(), &cfg.Output); err != nil {
				return err
			}
			cfg.Logf(2, "%s", g.Plies()[len(g.Plies())-1])
		}
		for _, line := range feedback {
			fmt.Fprintln(out, line)
		}
	}
	return nil
}
