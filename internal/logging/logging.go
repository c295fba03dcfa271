// Package logging builds the zap logger used by the CLI.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration.
type Config struct {
	Level       string // debug, info, warn, error
	Development bool   // console encoding, colored levels
	OutputPaths []string
}

// New builds a logger from cfg. An unknown level falls back to info. Output
// defaults to stderr so command output on stdout stays machine readable.
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zc zap.Config
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zc = zap.NewProductionConfig()
		zc.Sampling = nil
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	if len(cfg.OutputPaths) > 0 {
		zc.OutputPaths = cfg.OutputPaths
	}
	return zc.Build()
}

// ForVerbosity returns a development logger at debug level when verbose is
// set, and a warn-level production logger otherwise.
func ForVerbosity(verbose bool) (*zap.Logger, error) {
	if verbose {
		return New(Config{Level: "debug", Development: true})
	}
	return New(Config{Level: "warn"})
}
