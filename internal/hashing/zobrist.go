package hashing

import "github.com/lgbarn/chessrules-go/internal/chess"

const numSquares = chess.BoardSize * chess.BoardSize

var (
	// pieceKeys[colour][kind][square]
	pieceKeys [2][chess.NumKinds][numSquares]uint64
	blackKey  uint64
)

func init() {
	// Fixed seed so hashes are stable between runs.
	state := uint64(0x9E3779B97F4A7C15)
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = splitmix64(&state)
			}
		}
	}
	blackKey = splitmix64(&state)
}

// splitmix64 advances state and returns the next pseudo-random value.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// GenerateZobristHash hashes the placement of every piece and the side to move.
func GenerateZobristHash(board chess.BoardView, toMove chess.Colour) uint64 {
	var hash uint64
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			p := board.TileAt(chess.Pos(file, rank)).Occupant
			if p == nil {
				continue
			}
			hash ^= pieceKeys[p.Colour()][p.Kind()][rank*chess.BoardSize+file]
		}
	}
	if toMove == chess.Black {
		hash ^= blackKey
	}
	return hash
}

// WeakHash is a cheap order-dependent hash of the piece letters.
func WeakHash(board chess.BoardView) uint32 {
	var hash uint32 = 17
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			var c uint32 = '.'
			if p := board.TileAt(chess.Pos(file, rank)).Occupant; p != nil {
				c = uint32(p.Letter())
			}
			hash = hash*31 + c
		}
	}
	return hash
}
