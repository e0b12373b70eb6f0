// Package game owns a chess board and the turn, and is the only place a
// move is committed.
package game

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Game holds one board exclusively together with the side to move and
// whether the game has ended in checkmate.
//
// A Game is not safe for concurrent use; see Session.
type Game struct {
	board         *chess.Board
	currentPlayer chess.Colour
	finished      bool
	plies         []chess.MovePair
}

// New creates a game in the standard starting position with White to move.
func New() *Game {
	return NewFromBoard(chess.NewInitialBoard(), chess.White)
}

// NewFromBoard creates a game from an arbitrary position. The game takes
// ownership of board. If toMove is already checkmated the game starts finished.
func NewFromBoard(board *chess.Board, toMove chess.Colour) *Game {
	g := &Game{
		board:         board,
		currentPlayer: toMove,
	}
	g.finished = engine.IsCheckmate(board, toMove)
	return g
}

// NewFromFEN creates a game from a FEN string.
func NewFromFEN(fen string) (*Game, error) {
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewFromBoard(board, toMove), nil
}

// PlayMove plays from-to for the side to move.
// It returns false, with the game unchanged, if the move is illegal or the
// game is already finished. Otherwise it commits the move, passes the turn
// and marks the game finished if the new side to move is checkmated.
func (g *Game) PlayMove(from, to chess.Position) bool {
	if g.finished {
		return false
	}
	if !engine.IsValidMove(g.board, from, to, g.currentPlayer, false) {
		return false
	}

	g.board.Place(to, g.board.TileAt(from).Occupant)
	g.board.Clear(from)
	g.plies = append(g.plies, chess.MovePair{From: from, To: to})
	g.currentPlayer = g.currentPlayer.Opposite()

	if engine.IsCheckmate(g.board, g.currentPlayer) {
		g.finished = true
	}
	return true
}

// Finished reports whether the game has ended in checkmate.
func (g *Game) Finished() bool { return g.finished }

// CurrentPlayer returns the side to move.
func (g *Game) CurrentPlayer() chess.Colour { return g.currentPlayer }

// Board returns a read-only view of the board.
func (g *Game) Board() chess.BoardView { return g.board }

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return engine.IsInCheck(g.board, g.currentPlayer)
}

// Winner returns the side that delivered checkmate. ok is false while the
// game is in progress.
func (g *Game) Winner() (winner chess.Colour, ok bool) {
	if !g.finished {
		return chess.White, false
	}
	return g.currentPlayer.Opposite(), true
}

// Plies returns the moves committed so far, oldest first.
func (g *Game) Plies() []chess.MovePair {
	out := make([]chess.MovePair, len(g.plies))
	copy(out, g.plies)
	return out
}

// LegalMoves returns every legal move for the side to move.
func (g *Game) LegalMoves() []chess.MovePair {
	if g.finished {
		return nil
	}
	return engine.LegalMoves(g.board, g.currentPlayer)
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board, g.currentPlayer)
}

// IsFirstMoveForPawn reports whether the pawn on from has not moved yet,
// judged by whether it still stands on its starting rank.
func (g *Game) IsFirstMoveForPawn(from chess.Position, board chess.BoardView) bool {
	return engine.IsFirstMoveForPawn(from, board)
}
