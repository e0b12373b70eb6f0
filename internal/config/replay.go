package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ReplayConfig holds settings for replaying move scripts.
type ReplayConfig struct {
	// File is the script to replay; "-" reads stdin
	File string

	// Workers is the number of scripts replayed concurrently
	Workers int

	// BufferSize is the worker pool channel size
	BufferSize int

	// StopOnError stops submitting scripts after the first failure
	StopOnError bool
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		Workers:    runtime.NumCPU(),
		BufferSize: 64,
	}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.File == "" {
		return fmt.Errorf("no replay file: %w", errors.ErrInvalidConfig)
	}
	if r.Workers < 1 {
		return fmt.Errorf("workers (%d) < 1: %w", r.Workers, errors.ErrInvalidConfig)
	}
	if r.BufferSize < 1 {
		return fmt.Errorf("buffer size (%d) < 1: %w", r.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
