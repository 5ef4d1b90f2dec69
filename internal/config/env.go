package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/lgbarn/singularity-chess-go/internal/errors"
)

// EnvPrefix prefixes every environment variable LoadEnv reads,
// e.g. SINGULARITY_WORKERS.
const EnvPrefix = "SINGULARITY"

// envSettings mirrors the overridable fields. Unset variables leave the
// prefilled values untouched.
type envSettings struct {
	Verbosity     int
	FEN           string
	Format        string
	Unicode       bool
	Workers       int
	CacheCapacity int `split_words:"true"`
}

// LoadEnv overlays SINGULARITY_* environment variables onto cfg.
func LoadEnv(cfg *Config) error {
	env := envSettings{
		Verbosity:     cfg.Verbosity,
		FEN:           cfg.FEN,
		Format:        cfg.Output.Format.String(),
		Unicode:       cfg.Output.Unicode,
		Workers:       cfg.Engine.Workers,
		CacheCapacity: cfg.Engine.CacheCapacity,
	}
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("environment: %v: %w", err, errors.ErrInvalidConfig)
	}

	format, err := ParseOutputFormat(env.Format)
	if err != nil {
		return errors.Wrap(err, "environment")
	}

	cfg.Verbosity = env.Verbosity
	cfg.FEN = env.FEN
	cfg.Output.Format = format
	cfg.Output.Unicode = env.Unicode
	cfg.Engine.Workers = env.Workers
	cfg.Engine.CacheCapacity = env.CacheCapacity
	return nil
}

// EnvUsage lists the environment variables LoadEnv reads.
func EnvUsage() []string {
	return []string{
		EnvPrefix + "_VERBOSITY",
		EnvPrefix + "_FEN",
		EnvPrefix + "_FORMAT",
		EnvPrefix + "_UNICODE",
		EnvPrefix + "_WORKERS",
		EnvPrefix + "_CACHE_CAPACITY",
	}
}
