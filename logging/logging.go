// Package logging provides the structured logger shared across the
// filing/parse/chunk pipeline.
package logging

import "go.uber.org/zap"

// New builds a *zap.Logger for the given level ("debug", "info", "warn",
// "error"); an unrecognized or empty level falls back to "info". Pass
// development=true for human-readable console output during local runs.
func New(level string, development bool) (*zap.Logger, error) {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	var zl zap.AtomicLevel
	if err := zl.UnmarshalText([]byte(levelOrDefault(level))); err != nil {
		zl = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.Level = zl

	return cfg.Build()
}

func levelOrDefault(level string) string {
	if level == "" {
		return "info"
	}
	return level
}
