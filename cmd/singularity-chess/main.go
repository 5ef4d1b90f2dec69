// singularity-chess lists the squares chess pieces may move to.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/singularity-chess-go/internal/chess"
	"github.com/lgbarn/singularity-chess-go/internal/config"
	"github.com/lgbarn/singularity-chess-go/internal/engine"
	"github.com/lgbarn/singularity-chess-go/internal/errors"
	"github.com/lgbarn/singularity-chess-go/internal/game"
	"github.com/lgbarn/singularity-chess-go/internal/hashing"
	"github.com/lgbarn/singularity-chess-go/internal/output"
	"github.com/lgbarn/singularity-chess-go/internal/worker"
)

const (
	programName    = "singularity-chess"
	programVersion = "0.1.0"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	opts := &options{}
	fs := newFlagSet(opts, stderr)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if opts.help {
		usage(fs, stdout)
		return 0
	}
	if opts.version {
		fmt.Fprintf(stdout, "%s version %s\n", programName, programVersion)
		return 0
	}

	cfg := config.NewConfig()
	cfg.SetOutput(stdout)
	cfg.SetLog(stderr)

	var files []*os.File
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	err := configure(cfg, opts, fs, &files)
	if err == nil {
		err = execute(cfg, opts)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return 1
	}
	return 0
}

// configure layers the environment and then the flags onto cfg, and opens
// the output and log files.
func configure(cfg *config.Config, opts *options, fs *flag.FlagSet, files *[]*os.File) error {
	if err := config.LoadEnv(cfg); err != nil {
		return err
	}
	if err := applyFlags(cfg, opts, fs); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if opts.logFile != "" {
		f, err := os.Create(opts.logFile)
		if err != nil {
			return errors.Wrapf(err, "creating log file %s", opts.logFile)
		}
		*files = append(*files, f)
		cfg.SetLog(f)
	}
	if opts.outputFile != "" {
		f, err := os.Create(opts.outputFile)
		if err != nil {
			return errors.Wrapf(err, "creating output file %s", opts.outputFile)
		}
		*files = append(*files, f)
		cfg.SetOutput(f)
	}
	return nil
}

// execute sets up the position, plays any moves and writes destinations
// for one square or for the whole side to move.
func execute(cfg *config.Config, opts *options) error {
	session, err := game.NewSession(cfg)
	if err != nil {
		return err
	}

	if opts.moves != "" {
		moves, err := chess.ParseMoveList(opts.moves)
		if err != nil {
			return err
		}
		if err := session.Play(moves); err != nil {
			return err
		}
	}

	board := session.Board()
	writer := output.NewWriter(cfg.OutputFile, cfg.Output)

	var all []chess.Destinations
	var highlights []chess.Square
	if opts.from != "" {
		d, err := singleOrigin(session, board, opts.from)
		if err != nil {
			return err
		}
		all = []chess.Destinations{d}
		highlights = d.Targets
	} else {
		all, err = generateSide(cfg, board, session.Turn())
		if err != nil {
			return err
		}
	}

	if cfg.Output.ShowBoard {
		if err := writer.WriteBoard(board, highlights); err != nil {
			return err
		}
	}
	if err := writer.WritePosition(session.FEN(), session.Turn(), all); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	cfg.Logf(config.Summary, "%d destinations from %d pieces, %s to move\n",
		engine.CountDestinations(all), len(all), session.Turn())
	return nil
}

// singleOrigin returns the destinations of the piece on text.
func singleOrigin(session *game.Session, board *chess.Board, text string) (chess.Destinations, error) {
	origin, err := chess.ParseSquare(text)
	if err != nil {
		return chess.Destinations{}, err
	}
	piece, ok := board.Query(origin)
	if !ok {
		return chess.Destinations{}, &errors.SquareError{Err: errors.ErrNoPiece, Op: "from", From: origin.String()}
	}
	return chess.Destinations{
		Origin:  origin,
		Piece:   piece,
		Targets: session.Destinations(origin),
	}, nil
}

// generateSide generates every piece of colour across the configured
// workers, through a shared cache when one is enabled.
func generateSide(cfg *config.Config, board *chess.Board, colour chess.Colour) ([]chess.Destinations, error) {
	if !cfg.Engine.CacheEnabled() {
		return worker.GenerateAll(board, colour, cfg.Engine.Workers, nil)
	}

	cache := hashing.NewThreadSafeDestinationCache(cfg.Engine.CacheCapacity)
	all, err := worker.GenerateAll(board, colour, cfg.Engine.Workers, cache)
	cfg.Logf(config.Commentary, "cache: %d entries, %d hits, %d misses\n", cache.Len(), cache.Hits(), cache.Misses())
	return all, err
}
