package app

import (
	"os"

	"github.com/rs/zerolog"

	"polyroots/internal/batch"
	"polyroots/internal/domain"
	"polyroots/internal/log"
	"polyroots/internal/store"
)

// Wire bundles the stores, batch runner and logger for the CLI.
type Wire struct {
	Polys  domain.PolynomialStore
	Runs   domain.RunStore
	Runner *batch.Runner
	Log    zerolog.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := os.MkdirAll(cfg.Home, 0o755); err != nil {
		return nil, err
	}

	level := ""
	if cfg.Verbose {
		level = "debug"
	}
	log.Configure(log.Config{Level: level})

	fs := store.NewFileStore(cfg.Home)
	runner := batch.NewRunner(fs, fs, log.WithComponent("batch"))

	return &Wire{
		Polys:  fs,
		Runs:   fs,
		Runner: runner,
		Log:    log.Base(),
	}, nil
}
