// Package tui implements the interactive "report a beer" wizard as a
// Bubble Tea application.
//
// AppModel is the top-level coordinator. It owns the shared state (API
// client, config registry, selected venue) and routes messages to the
// active screen:
//
//   - venue search (VenueModel): debounced lookup against the venue
//     endpoint, rendered as a card list
//   - the report wizard (ReportModel): serving format, the brewery
//     question, brewery/beer selection with suggestion dropdowns, and
//     the details form
//   - success and failure result screens; failure keeps the whole report
//     intact so the submission can be retried as-is
//
// Suggestion fetches are debounced with sequence numbers: each keystroke
// invalidates the pending timer AND any in-flight response, so a slow
// response for an old query can never overwrite the dropdown for a newer
// one.
package tui
