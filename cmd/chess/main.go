// chess plays and checks chess games: interactively, in a terminal UI,
// by replaying move scripts, or as a JSON HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/httpx"
	"github.com/lgbarn/chessrules-go/internal/tui"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("chessrules-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches on cfg.Mode.
func run(cfg *config.Config, stdin io.Reader) error {
	switch cfg.Mode {
	case config.Serve:
		return serve(cfg)
	case config.Replay:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		stats, err := runReplay(ctx, cfg, stdin)
		if err != nil {
			return err
		}
		if cfg.Verbosity > 0 {
			reportStatistics(cfg, stats)
		}
		if stats.Failed > 0 {
			return fmt.Errorf("%d of %d scripts failed", stats.Failed, stats.Scripts)
		}
		return nil
	}

	g, err := newGame(cfg)
	if err != nil {
		return err
	}
	if cfg.Mode == config.TUI {
		return tui.Run(g, cfg)
	}
	return runPrompt(g, cfg, stdin, os.Stdout)
}

// serve runs the HTTP API until SIGINT or SIGTERM.
func serve(cfg *config.Config) error {
	srv := httpx.NewServer(cfg)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Close(shutdown)
	}()
	return srv.Listen(cfg.Server.Addr)
}

// newGame creates the game the interactive modes play.
func newGame(cfg *config.Config) (*game.Game, error) {
	if cfg.StartFEN == "" {
		return game.New(), nil
	}
	return game.NewFromFEN(cfg.StartFEN)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess with full move validation and checkmate detection.\n")
	fmt.Fprintf(os.Stderr, "Moves are entered as <File><Rank>-<File><Rank>, e.g. E2-E4.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes:\n")
	fmt.Fprintf(os.Stderr, "  (default)        line prompt on stdin\n")
	fmt.Fprintf(os.Stderr, "  -tui             full-screen terminal UI\n")
	fmt.Fprintf(os.Stderr, "  -replay FILE     replay scripts, one game per line\n")
	fmt.Fprintf(os.Stderr, "  -serve ADDR      JSON HTTP API\n")
}
