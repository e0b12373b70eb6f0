package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c byte) (chess.Kind, bool) {
	switch c {
	case 'K', 'k':
		return chess.King, true
	case 'Q', 'q':
		return chess.Queen, true
	case 'R', 'r':
		return chess.Rook, true
	case 'N', 'n':
		return chess.Knight, true
	case 'B', 'b':
		return chess.Bishop, true
	case 'P', 'p':
		return chess.Pawn, true
	default:
		return 0, false
	}
}

// NewBoardFromFEN creates a board and the side to move from a FEN string.
// Only the piece placement and side-to-move fields are used; castling,
// en passant and clock fields are accepted and ignored. Each side must
// have exactly one king, and the side not to move must not be in check.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if !board.HasKing(colour) {
			return nil, chess.White, fmt.Errorf("no %s king: %w", colour, errors.ErrInvalidFEN)
		}
		if n := countKings(board, colour); n != 1 {
			return nil, chess.White, fmt.Errorf("%s has %d kings: %w", colour, n, errors.ErrInvalidFEN)
		}
	}

	// The side that just moved cannot have left its own king in check.
	if waiting := toMove.Opposite(); IsInCheck(board, waiting) {
		return nil, chess.White, fmt.Errorf("%s to move but %s is in check: %w", toMove, waiting, errors.ErrInvalidFEN)
	}

	return board, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks in piece placement: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				kind, ok := ConvertFENCharToKind(byte(c))
				if !ok {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if file >= chess.BoardSize {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Place(chess.Pos(file, rank), chess.NewPiece(kind, colour))
				file++
			}
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field. A missing field means White.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

func countKings(board *chess.Board, colour chess.Colour) int {
	n := 0
	for _, pos := range board.PiecesOf(colour) {
		if board.TileAt(pos).Occupant.Kind() == chess.King {
			n++
		}
	}
	return n
}

// BoardToFEN converts a board to a FEN string. Castling and en passant are
// not tracked, so those fields are always "-".
func BoardToFEN(board chess.BoardView, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	if toMove == chess.White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	sb.WriteString(" - - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board chess.BoardView) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.TileAt(chess.Pos(file, rank)).Occupant
			if piece == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
