package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// CandidateMoves returns the destinations the piece on from can reach by
// pattern alone, without the self-check filter. Sliding vectors are expanded
// until the board edge or the first occupied square, which is included when
// it holds an opposing piece. Step vectors are kept when pattern-legal.
// An empty square yields no candidates.
func CandidateMoves(board *chess.Board, from chess.Position) []chess.Position {
	piece := board.TileAt(from).Occupant
	if piece == nil {
		return nil
	}

	pattern := piece.Pattern()
	var moves []chess.Position
	for _, v := range pattern.Vectors {
		if !pattern.Sliding {
			to := from.Add(v.DX, v.DY)
			if to.Valid() && IsValidMove(board, from, to, piece.Colour(), true) {
				moves = append(moves, to)
			}
			continue
		}

		for i := 1; i <= chess.MaxSlide; i++ {
			to := from.Add(v.DX*i, v.DY*i)
			if !to.Valid() {
				break
			}
			tile := board.TileAt(to)
			if tile.IsEmpty() {
				moves = append(moves, to)
				continue
			}
			if tile.Occupant.Colour() != piece.Colour() {
				moves = append(moves, to)
			}
			break
		}
	}
	return moves
}

// LegalMovesFrom returns the destinations the piece on from may legally move
// to, with the self-check filter applied.
func LegalMovesFrom(board *chess.Board, from chess.Position) []chess.Position {
	piece := board.TileAt(from).Occupant
	if piece == nil {
		return nil
	}

	var moves []chess.Position
	for _, to := range CandidateMoves(board, from) {
		if !leavesKingInCheck(board, from, to, piece.Colour()) {
			moves = append(moves, to)
		}
	}
	return moves
}

// LegalMoves returns every legal move for colour, pieces in board scan order.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.MovePair {
	var moves []chess.MovePair
	for _, from := range board.PiecesOf(colour) {
		for _, to := range LegalMovesFrom(board, from) {
			moves = append(moves, chess.MovePair{From: from, To: to})
		}
	}
	return moves
}

// hasLegalMoves searches colour's pieces in board scan order, and each
// piece's candidates in pattern order, for a move that leaves colour's king
// out of check. It stops at the first one found.
func hasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, from := range board.PiecesOf(colour) {
		for _, to := range CandidateMoves(board, from) {
			if !leavesKingInCheck(board, from, to, colour) {
				return true
			}
		}
	}
	return false
}
