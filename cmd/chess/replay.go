package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/processing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// runReplay replays every script in cfg.Replay.File on the worker pool
// and writes the results to cfg.OutputFile. Cancelling ctx stops the
// replay after the scripts already running.
func runReplay(ctx context.Context, cfg *config.Config, stdin io.Reader) (processing.Stats, error) {
	var stats processing.Stats

	in := stdin
	if cfg.Replay.File != "-" {
		file, err := os.Open(cfg.Replay.File)
		if err != nil {
			return stats, fmt.Errorf("opening replay file: %w", err)
		}
		defer file.Close()
		in = file
	}

	scripts, err := processing.ReadScripts(in)
	if err != nil {
		return stats, fmt.Errorf("reading %s: %w", cfg.Replay.File, err)
	}
	cfg.Logf(2, "replaying %d scripts on %d workers", len(scripts), cfg.Replay.Workers)

	dupes := hashing.NewDuplicateDetector(false, 0)
	w := output.NewResultWriter(cfg.OutputFile, &cfg.Output)
	for _, r := range worker.ReplayAll(ctx, scripts, cfg) {
		stats.Add(r)
		if r.OK() && dupes.CheckAndAdd(r.Board, r.ToMove(), len(r.Plies)) {
			stats.Duplicates++
			cfg.Logf(2, "line %d: same final position as an earlier script", r.Script.Line)
		}
		if err := w.WriteResult(r); err != nil {
			return stats, err
		}
	}
	return stats, w.Close()
}

// reportStatistics writes the replay summary to the log.
func reportStatistics(cfg *config.Config, stats processing.Stats) {
	fmt.Fprintf(cfg.LogFile, "%d scripts replayed, %d plies, %d checkmates, %d duplicates, %d failed\n",
		stats.Scripts, stats.Plies, stats.Checkmates, stats.Duplicates, stats.Failed)
}
