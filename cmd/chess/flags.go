// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Mode selection
	tuiMode    = flag.Bool("tui", false, "Play in a full-screen terminal UI")
	replayFile = flag.String("replay", "", "Replay move scripts from this file (- for stdin), one game per line")
	serveAddr  = flag.String("serve", "", "Serve the JSON HTTP API on this address (e.g. :8080)")

	// Game setup
	startFEN = flag.String("fen", "", "Start from this FEN position instead of the initial one")

	// Replay options
	workers     = flag.Int("j", 0, "Number of replay workers (default: number of CPUs)")
	stopOnError = flag.Bool("stoponerror", false, "Stop replaying after the first failing script")
	showBoard   = flag.Bool("board", false, "Print the final board after each replayed script")
	jsonOutput  = flag.Bool("J", false, "Output replay results in JSON format")

	// Server options
	maxGames = flag.Int("maxgames", 1024, "Maximum number of live games on the server (0 = unlimited)")

	// Board rendering
	styled      = flag.Bool("color", false, "Draw the board with coloured tiles")
	unicode     = flag.Bool("unicode", false, "Draw pieces as chess glyphs")
	noCoords    = flag.Bool("nocoords", false, "Don't print rank and file labels")
	outputFile  = flag.String("o", "", "Output file for replay results (default: stdout)")
	logFile     = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	verbosity   = flag.Int("verbose", 1, "Verbosity: 0 silent, 1 summary, 2 every move")
	quiet       = flag.Bool("s", false, "Silent mode (same as -verbose 0)")
	help        = flag.Bool("h", false, "Show help")
	showVersion = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyModeFlags(cfg)
	applyOutputFlags(cfg)

	cfg.StartFEN = *startFEN
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyModeFlags selects the run mode. -serve wins over -replay, which
// wins over -tui.
func applyModeFlags(cfg *config.Config) {
	switch {
	case *serveAddr != "":
		cfg.Mode = config.Serve
		cfg.Server.Addr = *serveAddr
		cfg.Server.MaxGames = *maxGames
	case *replayFile != "":
		cfg.Mode = config.Replay
		cfg.Replay.File = *replayFile
		cfg.Replay.StopOnError = *stopOnError
		if *workers > 0 {
			cfg.Replay.Workers = *workers
		}
	case *tuiMode:
		cfg.Mode = config.TUI
	default:
		cfg.Mode = config.Interactive
	}
}

// applyOutputFlags sets board rendering and result format options.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.Styled = *styled
	cfg.Output.Unicode = *unicode
	cfg.Output.Coordinates = !*noCoords
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = *showBoard
}
