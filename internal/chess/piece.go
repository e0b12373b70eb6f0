package chess

// Vector is one direction a piece may move in, with its per-vector flags.
type Vector struct {
	DX, DY int

	// CaptureOnly requires the destination to hold an opposing piece.
	CaptureOnly bool

	// FirstMoveOnly requires an empty destination and the moving pawn on its
	// own starting rank. The square passed over is not inspected.
	FirstMoveOnly bool
}

// Pattern is the movement pattern of a piece kind.
// Sliding patterns repeat each vector up to MaxSlide times.
type Pattern struct {
	Vectors []Vector
	Sliding bool
}

var (
	orthogonals = []Vector{{DX: 1}, {DY: 1}, {DX: -1}, {DY: -1}}
	diagonals   = []Vector{{DX: 1, DY: 1}, {DX: 1, DY: -1}, {DX: -1, DY: 1}, {DX: -1, DY: -1}}
	allEight    = append(append([]Vector{}, orthogonals...), diagonals...)
)

// patterns is indexed by [colour][kind]. Only pawns differ between colours.
var patterns = [2][NumKinds]Pattern{
	White: buildPatterns(White),
	Black: buildPatterns(Black),
}

func buildPatterns(colour Colour) [NumKinds]Pattern {
	dir := PawnDirection(colour)

	var p [NumKinds]Pattern
	for k := Pawn; k < NumKinds; k++ {
		switch k {
		case Pawn:
			p[k] = Pattern{Vectors: []Vector{
				{DY: dir},
				{DY: 2 * dir, FirstMoveOnly: true},
				{DX: 1, DY: dir, CaptureOnly: true},
				{DX: -1, DY: dir, CaptureOnly: true},
			}}
		case Knight:
			p[k] = Pattern{Vectors: []Vector{
				{DX: 1, DY: 2}, {DX: 2, DY: 1}, {DX: 2, DY: -1}, {DX: 1, DY: -2},
				{DX: -1, DY: -2}, {DX: -2, DY: -1}, {DX: -2, DY: 1}, {DX: -1, DY: 2},
			}}
		case Bishop:
			p[k] = Pattern{Vectors: diagonals, Sliding: true}
		case Rook:
			p[k] = Pattern{Vectors: orthogonals, Sliding: true}
		case Queen:
			p[k] = Pattern{Vectors: allEight, Sliding: true}
		case King:
			p[k] = Pattern{Vectors: allEight}
		}
	}
	return p
}

// PatternFor returns the fixed movement pattern for a kind and colour.
func PatternFor(kind Kind, colour Colour) Pattern {
	return patterns[colour][kind]
}

// Piece is an immutable chess piece. Pieces are shared by pointer and a move
// relocates the pointer between tiles; a Piece is never modified.
type Piece struct {
	kind   Kind
	colour Colour
}

// NewPiece creates a piece of the given kind and colour.
func NewPiece(kind Kind, colour Colour) *Piece {
	return &Piece{kind: kind, colour: colour}
}

// Kind returns the piece kind.
func (p *Piece) Kind() Kind { return p.kind }

// Colour returns the piece colour.
func (p *Piece) Colour() Colour { return p.colour }

// Pattern returns the movement pattern of the piece.
func (p *Piece) Pattern() Pattern { return PatternFor(p.kind, p.colour) }

// Letter returns the FEN letter for the piece: uppercase for White,
// lowercase for Black.
func (p *Piece) Letter() byte {
	l := p.kind.Letter()
	if p.colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight".
func (p *Piece) String() string {
	return p.colour.String() + " " + p.kind.String()
}
