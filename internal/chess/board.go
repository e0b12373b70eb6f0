package chess

import "fmt"

// TileColour is the display colour of a tile. It has no effect on the rules.
type TileColour int

const (
	Dark TileColour = iota
	Light
)

// Tile is one of the 64 board cells. It holds at most one occupant.
type Tile struct {
	Colour   TileColour
	Occupant *Piece // nil when the tile is empty
}

// IsEmpty reports whether the tile has no occupant.
func (t Tile) IsEmpty() bool {
	return t.Occupant == nil
}

// BoardView is the read-only surface of a board handed to renderers and
// other collaborators that must not mutate it.
type BoardView interface {
	TileAt(pos Position) Tile
	PiecesOf(colour Colour) []Position
	KingLocation(colour Colour) Position
}

// Board is an 8x8 grid of tiles, indexed tiles[rank][file].
// It performs no legality checking; all rule enforcement lives in the engine.
type Board struct {
	tiles [BoardSize][BoardSize]Tile
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{}
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			// a1 is a dark square.
			if (file+rank)%2 == 1 {
				b.tiles[rank][file].Colour = Light
			}
		}
	}
	return b
}

// backRank is the standard arrangement of pieces on ranks 1 and 8.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			b.tiles[rank][file].Occupant = nil
		}
	}

	for file := 0; file < BoardSize; file++ {
		b.tiles[0][file].Occupant = NewPiece(backRank[file], White)
		b.tiles[1][file].Occupant = NewPiece(Pawn, White)
		b.tiles[6][file].Occupant = NewPiece(Pawn, Black)
		b.tiles[7][file].Occupant = NewPiece(backRank[file], Black)
	}
}

// TileAt returns the tile at the given position. Out-of-range positions
// are a caller error.
func (b *Board) TileAt(pos Position) Tile {
	return b.tiles[pos.Rank][pos.File]
}

// Place puts a piece on a tile, replacing any occupant.
func (b *Board) Place(pos Position, piece *Piece) {
	b.tiles[pos.Rank][pos.File].Occupant = piece
}

// Clear empties a tile.
func (b *Board) Clear(pos Position) {
	b.tiles[pos.Rank][pos.File].Occupant = nil
}

// KingLocation returns the square of the king of the given colour.
// A missing king is an invariant violation and panics.
func (b *Board) KingLocation(colour Colour) Position {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			p := b.tiles[rank][file].Occupant
			if p != nil && p.kind == King && p.colour == colour {
				return Position{File: file, Rank: rank}
			}
		}
	}
	panic(fmt.Sprintf("chess: no %s king on the board", colour))
}

// HasKing reports whether a king of the given colour is on the board.
func (b *Board) HasKing(colour Colour) bool {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			p := b.tiles[rank][file].Occupant
			if p != nil && p.kind == King && p.colour == colour {
				return true
			}
		}
	}
	return false
}

// PiecesOf returns the squares occupied by the given colour in row-major
// order: rank 1 first, files a to h within a rank.
func (b *Board) PiecesOf(colour Colour) []Position {
	var locations []Position
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			p := b.tiles[rank][file].Occupant
			if p != nil && p.colour == colour {
				locations = append(locations, Position{File: file, Rank: rank})
			}
		}
	}
	return locations
}

// Occupant describes a piece by value together with its square.
type Occupant struct {
	Kind   Kind
	Colour Colour
	Square Position
}

// Occupants returns every occupied square in row-major order.
// The result is a snapshot; later board changes do not affect it.
func (b *Board) Occupants() []Occupant {
	var out []Occupant
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			p := b.tiles[rank][file].Occupant
			if p != nil {
				out = append(out, Occupant{Kind: p.kind, Colour: p.colour, Square: Position{File: file, Rank: rank}})
			}
		}
	}
	return out
}

// Copy creates a copy of the board. Pieces are immutable so the copy shares them.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
