// Package logging builds the diagnostic zap logger used by gocalc.
// Diagnostics never go to stdout, which belongs to the calculator.
package logging

import (
	"fmt"

	"github.com/sivchari/gocalc/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger for cfg. Unless verbose output is enabled the
// logger discards everything.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg == nil || !cfg.Verbose {
		return zap.NewNop(), nil
	}

	level, err := zap.ParseAtomicLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Log.Format == "console" {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	zcfg.Level = level
	zcfg.Encoding = cfg.Log.Format
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	if cfg.Log.File != "" {
		zcfg.OutputPaths = []string{cfg.Log.File}
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}
