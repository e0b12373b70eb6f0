package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// withMove temporarily plays from-to on the board, runs fn and restores
// both tiles before returning, including when fn panics. Calls may nest.
func withMove(board *chess.Board, from, to chess.Position, fn func() bool) bool {
	mover := board.TileAt(from).Occupant
	captured := board.TileAt(to).Occupant

	board.Place(to, mover)
	board.Clear(from)
	defer func() {
		board.Place(from, mover)
		board.Place(to, captured)
	}()

	return fn()
}
