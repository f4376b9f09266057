// Package logging configures a zap logger through a small set of
// functional options layered over zap.Config: console/json encoding and
// level. There is no long-lived log file to rotate, since every kernel
// run completes and exits.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Option mutates a zap.Config before it's built.
type Option func(*zap.Config)

// WithLevel sets the minimum logged level from a zap level name
// ("debug", "info", "warn", "error"). Invalid names leave the level at
// its prior value.
func WithLevel(level string) Option {
	return func(c *zap.Config) {
		var lvl zapcore.Level
		if err := lvl.Set(level); err == nil {
			c.Level.SetLevel(lvl)
		}
	}
}

// WithFormat selects console or JSON encoding; anything else defaults
// to console, which is friendlier for a CLI tool's stderr.
func WithFormat(format string) Option {
	return func(c *zap.Config) {
		switch format {
		case FormatJSON:
			c.Encoding = FormatJSON
		default:
			c.Encoding = FormatConsole
		}
	}
}

// New builds a *zap.Logger writing to stderr with the given options
// applied over a sane default config.
func New(opts ...Option) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = FormatConsole
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg.Build()
}
