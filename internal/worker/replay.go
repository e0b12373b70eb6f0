package worker

import (
	"context"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/processing"
)

// ReplayFunc returns a ProcessFunc that replays each script under cfg.
func ReplayFunc(cfg *config.Config) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{
			Index:  item.Index,
			Result: processing.Replay(item.Script, cfg),
		}
	}
}

// ReplayAll replays scripts on cfg.Replay.Workers workers and returns the
// results in script order. The run stops early when ctx is cancelled or,
// with cfg.Replay.StopOnError, after the first failing script; scripts not
// yet started then have no result.
func ReplayAll(ctx context.Context, scripts []processing.Script, cfg *config.Config) []*processing.Result {
	pool := NewPool(ctx, ReplayFunc(cfg),
		WithWorkers(cfg.Replay.Workers),
		WithBufferSize(cfg.Replay.BufferSize))
	pool.Start()

	go func() {
		defer pool.Close()
		for i, s := range scripts {
			if !pool.Submit(WorkItem{Script: s, Index: i}) {
				return
			}
		}
	}()

	collected := make([]ProcessResult, 0, len(scripts))
	for pr := range pool.Results() {
		if cfg.Replay.StopOnError && !pr.Result.OK() {
			pool.Stop()
		}
		collected = append(collected, pr)
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].Index < collected[j].Index
	})
	results := make([]*processing.Result, len(collected))
	for i, pr := range collected {
		results[i] = pr.Result
	}
	return results
}
