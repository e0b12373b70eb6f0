// Package notation converts between move text such as "A2-A3" and board
// positions. Everything handed to the engine from here is already in range.
package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveSeparator separates the two squares of a move.
const MoveSeparator = '-'

// ParseSquare parses a square name such as "e2" or "E2".
func ParseSquare(text string) (chess.Position, error) {
	if len(text) != 2 {
		return chess.Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidMoveText,
			Expected: "square like A2",
			Got:      fmt.Sprintf("%q", text),
		}
	}
	return parseSquareAt(text, 0)
}

// parseSquareAt parses the two characters of s starting at offset; column
// numbers in errors are relative to the start of s.
func parseSquareAt(s string, offset int) (chess.Position, error) {
	file := s[offset] | 0x20 // lower case
	rank := s[offset+1]

	if file < chess.FileBase || file >= chess.FileBase+chess.BoardSize {
		return chess.Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidMoveText,
			Column:   offset + 1,
			Expected: "file A-H",
			Got:      fmt.Sprintf("%q", s[offset]),
		}
	}
	if rank < chess.RankBase || rank >= chess.RankBase+chess.BoardSize {
		return chess.Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidMoveText,
			Column:   offset + 2,
			Expected: "rank 1-8",
			Got:      fmt.Sprintf("%q", rank),
		}
	}
	return chess.Pos(int(file-chess.FileBase), int(rank-chess.RankBase)), nil
}

// ParseMove parses move text of the form <File><Rank>-<File><Rank>, for
// example "A2-A3". Letters may be either case and surrounding white space is
// ignored. Errors are *errors.ParseError wrapping errors.ErrInvalidMoveText.
func ParseMove(text string) (from, to chess.Position, err error) {
	s := strings.TrimSpace(text)
	if len(s) != 5 {
		return from, to, &errors.ParseError{
			Err:      errors.ErrInvalidMoveText,
			Expected: "move like A2-A3",
			Got:      fmt.Sprintf("%q", text),
		}
	}
	if s[2] != MoveSeparator {
		return from, to, &errors.ParseError{
			Err:      errors.ErrInvalidMoveText,
			Column:   3,
			Expected: "'-'",
			Got:      fmt.Sprintf("%q", s[2]),
		}
	}

	if from, err = parseSquareAt(s, 0); err != nil {
		return chess.Position{}, chess.Position{}, err
	}
	if to, err = parseSquareAt(s, 3); err != nil {
		return chess.Position{}, chess.Position{}, err
	}
	return from, to, nil
}

// IsValid reports whether text is well-formed move text.
func IsValid(text string) bool {
	_, _, err := ParseMove(text)
	return err == nil
}

// FormatSquare returns the upper-case name of a square, e.g. "E2".
func FormatSquare(pos chess.Position) string {
	return strings.ToUpper(pos.String())
}

// FormatMove returns move text in the form accepted by ParseMove, e.g. "E2-E4".
func FormatMove(from, to chess.Position) string {
	return FormatSquare(from) + string(MoveSeparator) + FormatSquare(to)
}
