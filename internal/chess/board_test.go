package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for rank := 0; rank < BoardSize; rank++ {
			for file := 0; file < BoardSize; file++ {
				if tile := b.TileAt(Pos(file, rank)); !tile.IsEmpty() {
					t.Errorf("TileAt(%v) occupied by %v; want empty", Pos(file, rank), tile.Occupant)
				}
			}
		}
	})

	t.Run("tile colours alternate", func(t *testing.T) {
		if b.TileAt(Pos(0, 0)).Colour != Dark {
			t.Error("a1 is not dark")
		}
		if b.TileAt(Pos(7, 0)).Colour != Light {
			t.Error("h1 is not light")
		}
		if b.TileAt(Pos(3, 7)).Colour != Light {
			t.Error("d8 is not light")
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		name   string
		square Position
		kind   Kind
		colour Colour
	}{
		// White back rank
		{"white rook a1", Pos(0, 0), Rook, White},
		{"white knight b1", Pos(1, 0), Knight, White},
		{"white bishop c1", Pos(2, 0), Bishop, White},
		{"white queen d1", Pos(3, 0), Queen, White},
		{"white king e1", Pos(4, 0), King, White},
		{"white rook h1", Pos(7, 0), Rook, White},
		// Pawns
		{"white pawn a2", Pos(0, 1), Pawn, White},
		{"white pawn h2", Pos(7, 1), Pawn, White},
		{"black pawn a7", Pos(0, 6), Pawn, Black},
		{"black pawn e7", Pos(4, 6), Pawn, Black},
		// Black back rank
		{"black rook a8", Pos(0, 7), Rook, Black},
		{"black queen d8", Pos(3, 7), Queen, Black},
		{"black king e8", Pos(4, 7), King, Black},
		{"black knight g8", Pos(6, 7), Knight, Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := b.TileAt(tt.square).Occupant
			if p == nil {
				t.Fatalf("TileAt(%v) is empty; want %v %v", tt.square, tt.colour, tt.kind)
			}
			if p.Kind() != tt.kind || p.Colour() != tt.colour {
				t.Errorf("TileAt(%v) = %v; want %v %v", tt.square, p, tt.colour, tt.kind)
			}
		})
	}

	for rank := 2; rank < 6; rank++ {
		for file := 0; file < BoardSize; file++ {
			if !b.TileAt(Pos(file, rank)).IsEmpty() {
				t.Errorf("TileAt(%v) occupied; want empty", Pos(file, rank))
			}
		}
	}
}

func TestPiecesOf(t *testing.T) {
	b := NewInitialBoard()

	white := b.PiecesOf(White)
	black := b.PiecesOf(Black)
	if len(white) != 16 {
		t.Errorf("len(PiecesOf(White)) = %d; want 16", len(white))
	}
	if len(black) != 16 {
		t.Errorf("len(PiecesOf(Black)) = %d; want 16", len(black))
	}

	// Row-major scan order: a1 first, h2 last for White.
	if white[0] != Pos(0, 0) || white[15] != Pos(7, 1) {
		t.Errorf("PiecesOf(White) order = %v ... %v; want a1 ... h2", white[0], white[15])
	}
	if black[0] != Pos(0, 6) || black[15] != Pos(7, 7) {
		t.Errorf("PiecesOf(Black) order = %v ... %v; want a7 ... h8", black[0], black[15])
	}
}

func TestKingLocation(t *testing.T) {
	b := NewInitialBoard()

	if got := b.KingLocation(White); got != Pos(4, 0) {
		t.Errorf("KingLocation(White) = %v; want e1", got)
	}
	if got := b.KingLocation(Black); got != Pos(4, 7) {
		t.Errorf("KingLocation(Black) = %v; want e8", got)
	}

	b.Place(Pos(4, 3), b.TileAt(Pos(4, 0)).Occupant)
	b.Clear(Pos(4, 0))
	if got := b.KingLocation(White); got != Pos(4, 3) {
		t.Errorf("KingLocation(White) after relocation = %v; want e4", got)
	}
}

func TestKingLocation_MissingKingPanics(t *testing.T) {
	b := NewBoard()
	b.Place(Pos(4, 7), NewPiece(King, Black))

	if b.HasKing(White) {
		t.Fatal("HasKing(White) = true on a board without a white king")
	}

	defer func() {
		if recover() == nil {
			t.Error("KingLocation(White) did not panic with no white king")
		}
	}()
	b.KingLocation(White)
}

func TestPlaceAndClear(t *testing.T) {
	b := NewBoard()
	knight := NewPiece(Knight, Black)
	sq := Pos(2, 5)

	b.Place(sq, knight)
	if b.TileAt(sq).Occupant != knight {
		t.Errorf("TileAt(%v).Occupant = %v; want the placed knight", sq, b.TileAt(sq).Occupant)
	}

	b.Clear(sq)
	if !b.TileAt(sq).IsEmpty() {
		t.Errorf("TileAt(%v) not empty after Clear", sq)
	}
}

func TestCopy(t *testing.T) {
	b := NewInitialBoard()
	c := b.Copy()

	c.Clear(Pos(4, 1))
	if b.TileAt(Pos(4, 1)).IsEmpty() {
		t.Error("clearing the copy changed the original board")
	}
}

func TestOccupants(t *testing.T) {
	b := NewBoard()
	b.Place(Pos(4, 0), NewPiece(King, White))
	b.Place(Pos(4, 7), NewPiece(King, Black))

	got := b.Occupants()
	want := []Occupant{
		{Kind: King, Colour: White, Square: Pos(4, 0)},
		{Kind: King, Colour: Black, Square: Pos(4, 7)},
	}
	if len(got) != len(want) {
		t.Fatalf("len(Occupants()) = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Occupants()[%d] = %+v; want %+v", i, got[i], want[i])
		}
	}
}
