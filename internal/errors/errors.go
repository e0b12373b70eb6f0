// Package errors provides sentinel errors and error types for the chess tools.
// Rule violations inside the engine are plain false results; these errors
// carry them across the boundaries where text, files and requests come in.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Check for them with errors.Is.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidMoveText indicates move text that is not of the form A2-A3.
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrGameFinished indicates a move was attempted after checkmate.
	ErrGameFinished = errors.New("game finished")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownGame indicates a game id that is not registered.
	ErrUnknownGame = errors.New("unknown game")
)

// GameError reports where a replayed game stopped.
type GameError struct {
	Err  error  // underlying error, usually a sentinel or *ParseError
	File string // script file, "" for stdin
	Line int    // 1-based script line
	Ply  int    // 1-based ply that failed, 0 if the game could not start
	Move string // move text of the failing ply
}

// Error formats the location followed by Detail, e.g.
// "games.txt:4: ply 3 E2-E5: illegal move".
func (e *GameError) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.File != "" {
		loc = fmt.Sprintf("%s:%d", e.File, e.Line)
	}
	return loc + ": " + e.Detail()
}

// Detail formats the ply, move and cause without the location.
func (e *GameError) Detail() string {
	var b strings.Builder
	if e.Ply > 0 {
		fmt.Fprintf(&b, "ply %d", e.Ply)
		if e.Move != "" {
			fmt.Fprintf(&b, " %s", e.Move)
		}
		b.WriteString(": ")
	}
	if e.Err != nil {
		b.WriteString(e.Err.Error())
	} else {
		b.WriteString("replay failed")
	}
	return b.String()
}

func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError describes malformed input text.
type ParseError struct {
	Err      error  // underlying sentinel
	Column   int    // 1-based column, 0 if the input as a whole is wrong
	Expected string // what was expected
	Got      string // what was found instead
}

func (e *ParseError) Error() string {
	var parts []string
	if e.Column > 0 {
		parts = append(parts, fmt.Sprintf("column %d", e.Column))
	}
	switch {
	case e.Expected != "" && e.Got != "":
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	case e.Expected != "":
		parts = append(parts, "expected "+e.Expected)
	case e.Got != "":
		parts = append(parts, "unexpected "+e.Got)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if len(parts) == 0 {
		return "parse error"
	}
	return strings.Join(parts, ": ")
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap prefixes err with context. It returns nil for a nil err.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf is Wrap with a formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
