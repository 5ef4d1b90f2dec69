package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/singularity-chess-go/internal/errors"
)

// OutputFormat selects how boards and destinations are rendered.
type OutputFormat int

const (
	FormatText   OutputFormat = iota // Plain ASCII grid
	FormatColour                     // Tiled grid with terminal colours
	FormatJSON                       // JSON document
)

var formatNames = []string{"text", "colour", "json"}

// String returns the name accepted by ParseOutputFormat.
func (f OutputFormat) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseOutputFormat parses a format name. "color" is accepted as an alias.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "":
		return FormatText, nil
	case "colour", "color":
		return FormatColour, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatText, fmt.Errorf("unknown output format %q: %w", name, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to rendering.
type OutputConfig struct {
	// Format selects text, colour or JSON output
	Format OutputFormat

	// Unicode draws pieces with chess glyphs instead of FEN letters
	Unicode bool

	// ShowBoard prints the board before any destinations
	ShowBoard bool

	// Coordinates adds file and rank labels around the grid
	Coordinates bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:      FormatText,
		Coordinates: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format < FormatText || o.Format > FormatJSON {
		return fmt.Errorf("output format %d: %w", int(o.Format), errors.ErrInvalidConfig)
	}
	return nil
}
