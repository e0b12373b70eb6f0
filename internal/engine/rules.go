// Package engine provides chess move validation, check and checkmate detection.
//
// Every function operates on a *chess.Board plus an explicit acting colour.
// Code that needs to try a move does so through withMove, which always puts
// the board back before returning.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsValidMove reports whether the piece on from may move to to for colour.
//
// A hypothetical query only asks whether the move is pattern-legal; it is
// used to decide whether a square is attacked and never runs the self-check
// filter. A non-hypothetical query also rejects moves that would leave
// colour's own king in check. The board is unchanged on return.
func IsValidMove(board *chess.Board, from, to chess.Position, colour chess.Colour, hypothetical bool) bool {
	fromPiece := board.TileAt(from).Occupant
	toPiece := board.TileAt(to).Occupant

	switch {
	case fromPiece == nil:
		return false
	case fromPiece.Colour() != colour:
		return false
	case toPiece != nil && toPiece.Colour() == colour:
		return false
	case !isPatternLegal(board, from, to):
		return false
	case hypothetical:
		return true
	}

	return !leavesKingInCheck(board, from, to, colour)
}

// leavesKingInCheck plays from-to on the board, tests colour's king and
// reverts the move.
func leavesKingInCheck(board *chess.Board, from, to chess.Position, colour chess.Colour) bool {
	return withMove(board, from, to, func() bool {
		return IsInCheck(board, colour)
	})
}

// isPatternLegal checks the move geometry of the piece on from, including
// blocking and the per-vector capture and first-move flags.
func isPatternLegal(board *chess.Board, from, to chess.Position) bool {
	piece := board.TileAt(from).Occupant
	pattern := piece.Pattern()
	if pattern.Sliding {
		return isSlideLegal(board, pattern, piece.Colour(), from, to)
	}
	return isStepLegal(board, pattern, piece.Colour(), from, to)
}

// isSlideLegal finds a vector and multiple i in [1, MaxSlide] that reach to.
// Every square before the destination must be empty and the destination must
// be empty or hold an opposing piece.
func isSlideLegal(board *chess.Board, pattern chess.Pattern, colour chess.Colour, from, to chess.Position) bool {
	dx := to.File - from.File
	dy := to.Rank - from.Rank

	for _, v := range pattern.Vectors {
		for i := 1; i <= chess.MaxSlide; i++ {
			if v.DX*i != dx || v.DY*i != dy {
				continue
			}
			for j := 1; j < i; j++ {
				if !board.TileAt(from.Add(v.DX*j, v.DY*j)).IsEmpty() {
					return false // Blocked
				}
			}
			return isEmptyOrOpponent(board.TileAt(to), colour)
		}
	}
	return false
}

// isStepLegal looks for a vector equal to the displacement and applies its
// flags. Without CaptureOnly the destination must be empty, so knights and
// kings only ever step onto empty squares.
func isStepLegal(board *chess.Board, pattern chess.Pattern, colour chess.Colour, from, to chess.Position) bool {
	dx := to.File - from.File
	dy := to.Rank - from.Rank
	dest := board.TileAt(to)

	for _, v := range pattern.Vectors {
		if v.DX != dx || v.DY != dy {
			continue
		}
		if v.CaptureOnly {
			return !dest.IsEmpty() && dest.Occupant.Colour() != colour
		}
		if v.FirstMoveOnly {
			return dest.IsEmpty() && IsFirstMoveForPawn(from, board)
		}
		return dest.IsEmpty()
	}
	return false
}

func isEmptyOrOpponent(tile chess.Tile, colour chess.Colour) bool {
	return tile.IsEmpty() || tile.Occupant.Colour() != colour
}
