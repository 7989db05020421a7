// Package report holds the pure state machine behind the "report a beer"
// wizard: serving format, the brewery question, brewery and beer selection,
// and the final details step. It performs no I/O and talks to no terminal,
// which keeps every transition testable on its own; the TUI in
// internal/wizard/tui drives it and renders whatever Step says.
package report
