package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	Addr string

	// MaxGames caps the number of live games; 0 means unlimited
	MaxGames int

	// MaxBodyBytes caps request bodies
	MaxBodyBytes int64
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:         ":8080",
		MaxGames:     1024,
		MaxBodyBytes: 1 << 12,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.MaxGames < 0 {
		return fmt.Errorf("max games (%d) < 0: %w", s.MaxGames, errors.ErrInvalidConfig)
	}
	if s.MaxBodyBytes < 1 {
		return fmt.Errorf("max body bytes (%d) < 1: %w", s.MaxBodyBytes, errors.ErrInvalidConfig)
	}
	return nil
}
