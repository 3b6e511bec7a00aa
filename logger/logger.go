// Package logger holds the process-wide zap logger for inkmill. The
// translation path itself never logs; the CLI and storage adapters do.
package logger

import (
	"go.uber.org/zap"
)

var (
	// Logger is the global logger instance.
	Logger *zap.SugaredLogger

	// JSONOutput tracks whether structured JSON output is enabled.
	JSONOutput bool
)

func init() {
	// Safe no-op logger at package load time, so library consumers that
	// never call Initialize get silence instead of a nil panic.
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger. JSON output uses zap's
// production config for machine consumption; otherwise a human-readable
// development console config is used.
func Initialize(jsonOutput bool) error {
	JSONOutput = jsonOutput

	var zapLogger *zap.Logger
	var err error
	if jsonOutput {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}

	Logger = zapLogger.Sugar()
	return nil
}

// Sync flushes any buffered log entries. Called on CLI exit.
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
