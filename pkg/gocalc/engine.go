// Package gocalc provides the main API for running the interactive calculator.
package gocalc

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sivchari/gocalc/internal/config"
	"github.com/sivchari/gocalc/internal/logging"
	"github.com/sivchari/gocalc/internal/session"
	"go.uber.org/zap"
)

// RunOptions configures an Engine. The zero value reads stdin, writes
// stdout and looks up the default config file.
type RunOptions struct {
	In         io.Reader
	Out        io.Writer
	ConfigFile string
	Verbose    bool
}

// Engine is the calculator engine.
type Engine struct {
	config *config.Config
	logger *zap.Logger
	in     io.Reader
	out    io.Writer
}

// NewEngine creates a new calculator engine.
func NewEngine(opts *RunOptions) (*Engine, error) {
	if opts == nil {
		opts = &RunOptions{}
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.Verbose {
		cfg.Verbose = true
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	engine := &Engine{
		config: cfg,
		logger: logger,
		in:     opts.In,
		out:    opts.Out,
	}

	if engine.in == nil {
		engine.in = os.Stdin
	}

	if engine.out == nil {
		engine.out = os.Stdout
	}

	return engine, nil
}

// Config returns the effective configuration.
func (e *Engine) Config() *config.Config {
	return e.config
}

// Run starts an interactive session and blocks until it ends.
func (e *Engine) Run(ctx context.Context) error {
	defer func() {
		_ = e.logger.Sync()
	}()

	e.logger.Debug("starting calculator",
		zap.Bool("verbose", e.config.Verbose),
		zap.String("logLevel", e.config.Log.Level))

	s := session.New(e.in, e.out,
		session.WithLogger(e.logger),
		session.WithSuccessMark(e.config.Display.SuccessMark))

	if err := s.Run(ctx); err != nil {
		return fmt.Errorf("calculator session failed: %w", err)
	}

	return nil
}
