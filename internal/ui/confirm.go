package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm prints a yes/no prompt and reads a single line from in. Only
// "y" and "yes" (case-insensitive) count as confirmation; anything else,
// including EOF, is a no.
func Confirm(out io.Writer, in io.Reader, prompt string) bool {
	promptStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	_, _ = fmt.Fprint(out, promptStyle.Render(prompt+" [y/N]: "))

	line, err := bufio.NewReader(in).ReadString('\n')
	_, _ = fmt.Fprintln(out)
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// ConfirmSubmission shows the report summary in a bordered box and asks
// for confirmation before the POST is sent.
func ConfirmSubmission(out io.Writer, in io.Reader, venueName, summary string) bool {
	width := GetTerminalWidth()

	var lines []string
	titleLine := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		Render("   Report for " + venueName)
	lines = append(lines, "", titleLine, "")
	lines = append(lines, ListItemStyle.Render("  "+summary), "")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width-2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))

	_, _ = fmt.Fprintln(out, box)
	_, _ = fmt.Fprintln(out)

	return Confirm(out, in, "Submit this report?")
}
