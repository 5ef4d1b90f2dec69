// Package config provides configuration for singularity-chess.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/singularity-chess-go/internal/errors"
)

// Verbosity levels.
const (
	Quiet      = 0 // errors only
	Summary    = 1 // one line per command
	Commentary = 2 // selections, moves and cache statistics
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	// FEN is the starting position; empty means the standard layout
	FEN string

	Output *OutputConfig
	Engine *EngineConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Output:     NewOutputConfig(),
		Engine:     NewEngineConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes to LogFile when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity (%d) out of range %d-%d: %w", c.Verbosity, Quiet, Commentary, errors.ErrInvalidConfig)
	}
	if c.Output == nil || c.Engine == nil {
		return fmt.Errorf("missing sub-configuration: %w", errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Engine.Validate()
}
