package config

import (
	"fmt"

	"github.com/lgbarn/singularity-chess-go/internal/errors"
)

// EngineConfig holds settings for destination generation.
type EngineConfig struct {
	// Workers is the number of goroutines used to generate a whole side
	Workers int

	// CacheCapacity bounds the destination cache (0 disables it)
	CacheCapacity int
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{Workers: 1}
}

// CacheEnabled reports whether a destination cache should be created.
func (e *EngineConfig) CacheEnabled() bool {
	return e.CacheCapacity > 0
}

// Validate checks that the engine configuration is valid.
func (e *EngineConfig) Validate() error {
	if e.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", e.Workers, errors.ErrInvalidConfig)
	}
	if e.CacheCapacity < 0 {
		return fmt.Errorf("cache capacity (%d) must not be negative: %w", e.CacheCapacity, errors.ErrInvalidConfig)
	}
	return nil
}
