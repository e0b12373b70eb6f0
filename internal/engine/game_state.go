package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsCheckmate returns true if colour is in check and no move by any of its
// pieces removes the check.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !hasLegalMoves(board, colour)
}
