package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsFirstMoveForPawn reports whether the piece on from is a pawn that has
// not moved yet. There is no per-piece moved flag: a pawn counts as unmoved
// while it stands on its own starting rank, which would misjudge a pawn put
// back there by anything other than legal play.
func IsFirstMoveForPawn(from chess.Position, board chess.BoardView) bool {
	piece := board.TileAt(from).Occupant
	if piece == nil || piece.Kind() != chess.Pawn {
		return false
	}
	return from.Rank == chess.PawnStartRank(piece.Colour())
}
