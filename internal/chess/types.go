// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

var (
	kindNames   = [NumKinds]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	kindLetters = [NumKinds]byte{'P', 'N', 'B', 'R', 'Q', 'K'}
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	if k >= 0 && k < NumKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	if k >= 0 && k < NumKinds {
		return kindLetters[k]
	}
	return '?'
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'

	// MaxSlide is the largest multiple a sliding vector may be scaled by.
	MaxSlide = BoardSize - 1
)

// Position is a (file, rank) coordinate pair. File 0 is the a-file and
// rank 0 is White's back rank.
type Position struct {
	File int
	Rank int
}

// Pos is shorthand for Position{File: file, Rank: rank}.
func Pos(file, rank int) Position {
	return Position{File: file, Rank: rank}
}

// Valid reports whether both coordinates are on the board.
func (p Position) Valid() bool {
	return p.File >= 0 && p.File < BoardSize && p.Rank >= 0 && p.Rank < BoardSize
}

// Add returns p displaced by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{File: p.File + dx, Rank: p.Rank + dy}
}

// String returns the algebraic name of the square, e.g. "e2".
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.File, p.Rank)
	}
	return string([]byte{byte(FileBase + p.File), byte(RankBase + p.Rank)})
}

// MovePair represents a source-destination square pair.
type MovePair struct {
	From Position
	To   Position
}

// String returns the move in hyphenated long algebraic form, e.g. "e2-e4".
func (m MovePair) String() string {
	return m.From.String() + "-" + m.To.String()
}

// PawnDirection returns +1 for White, -1 for Black (for pawn direction).
func PawnDirection(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PawnStartRank returns the rank index pawns of the given colour start on.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}
