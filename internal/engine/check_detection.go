package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return IsSquareAttacked(board, board.KingLocation(colour), colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour has a hypothetical
// (pattern-legal) move landing on the square.
func IsSquareAttacked(board *chess.Board, square chess.Position, byColour chess.Colour) bool {
	for _, from := range board.PiecesOf(byColour) {
		if IsValidMove(board, from, square, byColour, true) {
			return true
		}
	}
	return false
}
