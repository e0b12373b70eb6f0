// Package config provides configuration for the chess tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Mode selects how cmd/chess drives games.
type Mode int

const (
	Interactive Mode = iota // Line prompt on stdin/stdout
	TUI                     // Full-screen terminal UI
	Replay                  // Replay scripts from a file
	Serve                   // JSON HTTP API
)

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	switch m {
	case Interactive:
		return "interactive"
	case TUI:
		return "tui"
	case Replay:
		return "replay"
	case Serve:
		return "serve"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Config holds all program configuration.
type Config struct {
	Mode      Mode
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// StartFEN is the position new games start from; empty means the
	// standard starting position.
	StartFEN string

	Output OutputConfig
	Server ServerConfig
	Replay ReplayConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Mode:       Interactive,
		Verbosity:  1,
		Output:     *NewOutputConfig(),
		Server:     *NewServerConfig(),
		Replay:     *NewReplayConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer boards and results are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer diagnostics are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line if the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks the configuration and its sub-configs.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.StartFEN != "" {
		if _, _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if c.Mode == Replay {
		return c.Replay.Validate()
	}
	return nil
}
