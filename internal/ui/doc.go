// Package ui renders styled output for the direct CLI subcommands: command
// header boxes, success and failure result boxes, list output, and yes/no
// confirmation prompts. The interactive wizard has its own rendering in
// internal/wizard/tui; this package covers the run-once commands that
// print and exit.
//
// All rendering goes through a Printer bound to an io.Writer, so command
// output can be asserted against a buffer in tests.
package ui
