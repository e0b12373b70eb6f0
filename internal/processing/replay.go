// Package processing replays move scripts against fresh games and reports
// where each one stopped.
package processing

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// Script is one game's worth of moves read from a script file.
type Script struct {
	Line int    // 1-based line in the source
	Text string // raw line
}

// Moves splits the script into move texts. Moves are separated by white
// space or commas.
func (s Script) Moves() []string {
	return strings.FieldsFunc(s.Text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// Result is the outcome of replaying one script.
type Result struct {
	Script      Script
	FirstToMove chess.Colour
	Plies       []chess.MovePair
	Finished    bool
	Winner      chess.Colour // valid only when Finished
	FinalFEN    string
	Board       chess.BoardView
	Err         error // *errors.GameError, nil if every move was played
}

// ToMove returns the side to move in the final position.
func (r *Result) ToMove() chess.Colour {
	if len(r.Plies)%2 == 1 {
		return r.FirstToMove.Opposite()
	}
	return r.FirstToMove
}

// OK reports whether every move of the script was played.
func (r *Result) OK() bool {
	return r.Err == nil
}

// ReadScripts reads scripts from r, one per line. Blank lines and lines
// starting with '#' are skipped.
func ReadScripts(r io.Reader) ([]Script, error) {
	var scripts []Script
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		scripts = append(scripts, Script{Line: line, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return scripts, nil
}

// Replay plays script on a fresh game and stops at the first move that is
// malformed, illegal or comes after checkmate.
func Replay(script Script, cfg *config.Config) *Result {
	res := &Result{Script: script}

	g, err := newGame(cfg)
	if err != nil {
		res.Err = gameError(err, script, 0, "", cfg)
		return res
	}
	res.FirstToMove = g.CurrentPlayer()

	for i, text := range script.Moves() {
		ply := i + 1
		if g.Finished() {
			res.Err = gameError(errors.ErrGameFinished, script, ply, text, cfg)
			break
		}
		from, to, err := notation.ParseMove(text)
		if err != nil {
			res.Err = gameError(err, script, ply, text, cfg)
			break
		}
		if !g.PlayMove(from, to) {
			res.Err = gameError(errors.ErrIllegalMove, script, ply, text, cfg)
			break
		}
		cfg.Logf(2, "line %d ply %d: %s", script.Line, ply, notation.FormatMove(from, to))
	}

	res.Plies = g.Plies()
	res.Finished = g.Finished()
	if winner, ok := g.Winner(); ok {
		res.Winner = winner
	}
	res.FinalFEN = g.FEN()
	res.Board = g.Board()
	return res
}

func newGame(cfg *config.Config) (*game.Game, error) {
	if cfg.StartFEN == "" {
		return game.New(), nil
	}
	return game.NewFromFEN(cfg.StartFEN)
}

func gameError(err error, script Script, ply int, text string, cfg *config.Config) *errors.GameError {
	ge := &errors.GameError{
		Err:  err,
		Line: script.Line,
		Ply:  ply,
		Move: text,
	}
	if f := cfg.Replay.File; f != "-" {
		ge.File = f
	}
	return ge
}

// Stats summarises a batch of results.
type Stats struct {
	Scripts    int
	Failed     int
	Checkmates int
	Plies      int
	Duplicates int // scripts ending in an already seen position
}

// Add accumulates one result.
func (s *Stats) Add(r *Result) {
	s.Scripts++
	s.Plies += len(r.Plies)
	if !r.OK() {
		s.Failed++
	}
	if r.Finished {
		s.Checkmates++
	}
}
