// Package logging provides structured logging for the gfpint client.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the client. It provides both general logging functions
// and specialized functions for API and submission logging needs.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (API requests, suggestion queries, feed events)
//   - Info: Normal operations (submissions, accepted reports)
//   - Warn: Non-fatal issues (rejected submissions, retries, feed reconnects)
//   - Error: Fatal issues (startup failures, critical errors)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Beer report submitted",
//	    zap.String("venue_id", "1182"),
//	    zap.String("brewery", "Bellfield"),
//	    zap.String("beer", "Lawless Village IPA"),
//	)
//
// # Specialized Logging
//
// The package provides domain-specific logging functions:
//
// API logging:
//
//	logging.LogAPIRequest("GET", "/api/breweries", "bell")
//	logging.LogAPIResponse("/api/breweries", 200, elapsed, 4)
//
// Submission logging:
//
//	logging.LogSubmission(venueID, brewery, beer, format)
//	logging.LogSubmissionResult(venueID, resp.Success, resp.Error)
//
// # Configuration
//
// Logging is silent by default so it never corrupts TUI output. Set the
// GFPINT_LOG_LEVEL environment variable to enable it:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Output goes to stderr in console format so it can be redirected away from
// the interactive wizard.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
