package game

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Session guards a Game with one exclusive lock so it can be shared between
// goroutines. Legality checks simulate moves on the board, so every call
// holds the lock for its whole duration.
type Session struct {
	mu   sync.Mutex
	game *Game
}

// NewSession wraps g. The caller must not use g directly afterwards.
func NewSession(g *Game) *Session {
	return &Session{game: g}
}

// State is a consistent snapshot of a game.
type State struct {
	FEN        string           `json:"fen"`
	ToMove     string           `json:"toMove"`
	Finished   bool             `json:"finished"`
	InCheck    bool             `json:"inCheck"`
	Winner     string           `json:"winner,omitempty"`
	Plies      []chess.MovePair `json:"-"`
	Moves      []string         `json:"moves"`
	LegalMoves int              `json:"legalMoves"`
}

// Play plays from-to and returns the resulting state. It returns an error
// wrapping ErrGameFinished or ErrIllegalMove if the move was not played.
func (s *Session) Play(from, to chess.Position) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game.Finished() {
		return s.snapshotLocked(), errors.Wrapf(errors.ErrGameFinished, "%s-%s", from, to)
	}
	if !s.game.PlayMove(from, to) {
		return s.snapshotLocked(), errors.Wrapf(errors.ErrIllegalMove, "%s-%s", from, to)
	}
	return s.snapshotLocked(), nil
}

// Snapshot returns the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Do runs fn with exclusive access to the game. fn must not retain g.
func (s *Session) Do(fn func(g *Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

func (s *Session) snapshotLocked() State {
	g := s.game
	st := State{
		FEN:      g.FEN(),
		ToMove:   g.CurrentPlayer().String(),
		Finished: g.Finished(),
		InCheck:  g.InCheck(),
		Plies:    g.Plies(),
	}
	st.Moves = make([]string, len(st.Plies))
	for i, m := range st.Plies {
		st.Moves[i] = m.String()
	}
	if winner, ok := g.Winner(); ok {
		st.Winner = winner.String()
	}
	st.LegalMoves = len(g.LegalMoves())
	return st
}
