// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lgbarn/singularity-chess-go/internal/config"
)

// options holds the parsed command line.
type options struct {
	// Position
	fen   string
	moves string
	from  string

	// Output
	outputFile   string
	outputFormat string
	jsonOutput   bool
	colour       bool
	unicode      bool
	board        bool
	noCoords     bool

	// Engine
	workers int
	cache   int

	// Logging
	logFile   string
	verbosity int
	quiet     bool

	version bool
	help    bool
}

// newFlagSet registers every flag on a fresh FlagSet writing to stderr.
func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.fen, "fen", "", "Starting position in FEN (default: standard layout)")
	fs.StringVar(&opts.moves, "moves", "", "Moves to play first, e.g. 'e2e4,e7e5'")
	fs.StringVar(&opts.from, "from", "", "Show destinations of the piece on this square only")

	fs.StringVar(&opts.outputFile, "o", "", "Output file (default: stdout)")
	fs.StringVar(&opts.outputFormat, "W", "", "Output format: text, colour, json")
	fs.BoolVar(&opts.jsonOutput, "J", false, "Output in JSON format")
	fs.BoolVar(&opts.colour, "colour", false, "Draw the board with coloured tiles")
	fs.BoolVar(&opts.unicode, "unicode", false, "Draw pieces as Unicode glyphs")
	fs.BoolVar(&opts.board, "board", false, "Print the board before the destinations")
	fs.BoolVar(&opts.noCoords, "nocoords", false, "Omit file and rank labels")

	fs.IntVar(&opts.workers, "j", 1, "Number of generator workers")
	fs.IntVar(&opts.cache, "cache", 0, "Destination cache capacity (0 = disabled)")

	fs.StringVar(&opts.logFile, "l", "", "Write log output to this file")
	fs.IntVar(&opts.verbosity, "v", config.Summary, "Verbosity: 0 quiet, 1 summary, 2 commentary")
	fs.BoolVar(&opts.quiet, "q", false, "Quiet mode (same as -v 0)")

	fs.BoolVar(&opts.version, "version", false, "Show version")
	fs.BoolVar(&opts.help, "help", false, "Show help")

	fs.Usage = func() { usage(fs, stderr) }
	return fs
}

// usage prints the help text.
func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [options]\n\n", programName)
	fmt.Fprintf(w, "Lists where pieces may move on a chess board.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nEnvironment (overridden by flags):\n")
	for _, name := range config.EnvUsage() {
		fmt.Fprintf(w, "  %s\n", name)
	}
}

// applyFlags copies explicitly set flags onto cfg, leaving values that came
// from defaults or the environment alone.
func applyFlags(cfg *config.Config, opts *options, fs *flag.FlagSet) error {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["fen"] {
		cfg.FEN = opts.fen
	}
	if err := applyOutputFlags(cfg, opts, set); err != nil {
		return err
	}
	applyEngineFlags(cfg, opts, set)

	if set["v"] {
		cfg.Verbosity = opts.verbosity
	}
	if opts.quiet {
		cfg.Verbosity = config.Quiet
	}
	return nil
}

// applyOutputFlags configures rendering. -J wins over -colour, which wins
// over -W.
func applyOutputFlags(cfg *config.Config, opts *options, set map[string]bool) error {
	if set["W"] {
		format, err := config.ParseOutputFormat(opts.outputFormat)
		if err != nil {
			return err
		}
		cfg.Output.Format = format
	}
	if opts.colour {
		cfg.Output.Format = config.FormatColour
	}
	if opts.jsonOutput {
		cfg.Output.Format = config.FormatJSON
	}
	if set["unicode"] {
		cfg.Output.Unicode = opts.unicode
	}
	if set["board"] {
		cfg.Output.ShowBoard = opts.board
	}
	if opts.noCoords {
		cfg.Output.Coordinates = false
	}
	return nil
}

// applyEngineFlags configures generation.
func applyEngineFlags(cfg *config.Config, opts *options, set map[string]bool) {
	if set["j"] {
		cfg.Engine.Workers = opts.workers
	}
	if set["cache"] {
		cfg.Engine.CacheCapacity = opts.cache
	}
}
