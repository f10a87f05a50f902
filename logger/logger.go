// Package logger builds the zap loggers used across ricci and declares the
// standard structured field names so every package logs the same keys.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for consistent structured logging.
const (
	FieldComponent  = "component"
	FieldLabel      = "label"
	FieldVariant    = "variant"
	FieldReplicate  = "replicate"
	FieldSeed       = "seed"
	FieldAlpha      = "alpha"
	FieldNodes      = "nodes"
	FieldEdges      = "edges"
	FieldEdge       = "edge"
	FieldCount      = "count"
	FieldExcluded   = "excluded"
	FieldAttempts   = "attempts"
	FieldDurationMS = "duration_ms"
	FieldError      = "error"
	FieldPath       = "path"
)

// New builds a logger at the given level name ("debug", "info", "warn",
// "error"). json selects the production JSON encoder; otherwise a console
// encoder without timestamps/caller noise is used.
func New(json bool, level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var cfg zap.Config
	if json {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.TimeKey = ""
		cfg.EncoderConfig.CallerKey = ""
		cfg.DisableStacktrace = true
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

// OrNop returns l, or a no-op logger when l is nil. Packages call it once
// when normalizing options so the hot paths never nil-check.
func OrNop(l *zap.SugaredLogger) *zap.SugaredLogger {
	if l == nil {
		return zap.NewNop().Sugar()
	}
	return l
}

// Named returns a child logger tagged with the component field.
func Named(l *zap.SugaredLogger, component string) *zap.SugaredLogger {
	return OrNop(l).With(FieldComponent, component)
}
