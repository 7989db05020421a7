package logging

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "GFPINT_LOG_LEVEL"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks GFPINT_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	// If no level provided, check environment variable
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	// Customize encoder for better readability
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the GFPINT_LOG_LEVEL
// environment variable. This is the recommended way to initialize logging
// for CLI commands that want silent mode by default.
func InitializeFromEnv() error {
	return Initialize("")
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		// This ensures no unexpected log output in CLI commands
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, fields ...zap.Field) {
	GetLogger().Fatal(msg, fields...)
}

// LogAPIRequest logs an outgoing API request
func LogAPIRequest(method string, path string, query string) {
	Debug("API request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("query", query),
	)
}

// LogAPIResponse logs an API response
func LogAPIResponse(path string, statusCode int, duration time.Duration, results int) {
	Debug("API response",
		zap.String("path", path),
		zap.Int("status_code", statusCode),
		zap.Duration("duration", duration),
		zap.Int("results", results),
	)
}

// LogSuggestionQuery logs a suggestion lookup and how many matches it produced
func LogSuggestionQuery(field string, query string, matches int) {
	Debug("Suggestion query",
		zap.String("field", field),
		zap.String("query", query),
		zap.Int("matches", matches),
	)
}

// LogSubmission logs a beer report submission attempt
func LogSubmission(venueID string, brewery string, beer string, format string) {
	Info("Beer report submitted",
		zap.String("venue_id", venueID),
		zap.String("brewery", brewery),
		zap.String("beer", beer),
		zap.String("format", format),
	)
}

// LogSubmissionResult logs the outcome of a submission
func LogSubmissionResult(venueID string, success bool, serverError string) {
	if success {
		Info("Submission accepted", zap.String("venue_id", venueID))
		return
	}
	Warn("Submission rejected",
		zap.String("venue_id", venueID),
		zap.String("server_error", serverError),
	)
}

// LogFeedEvent logs an event received on the live report feed
func LogFeedEvent(venue string, beer string, brewery string) {
	Debug("Feed event",
		zap.String("venue", venue),
		zap.String("beer", beer),
		zap.String("brewery", brewery),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
