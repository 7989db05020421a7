package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer renders CLI output components to a writer. The direct
// subcommands (venues, breweries, beers, feed) use it for everything they
// print, which keeps their output testable against a buffer.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a Printer that writes to w. If w is nil, os.Stdout
// is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Width returns the terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = width
	return p
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params map[string]string) {
	p.Println(RenderHeader(title, command, params, p.width))
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details map[string]string) {
	p.Println(RenderSuccessBox(title, details, p.width))
}

// PrintError prints an error result box with optional tips
func (p *Printer) PrintError(title string, err error, tips []string) {
	p.Println(RenderErrorBox(title, err, tips, p.width))
}

// PrintList prints one-line entries followed by a result count
func (p *Printer) PrintList(lines []string) {
	for _, line := range lines {
		p.Println(ListItemStyle.Render(line))
	}
	p.Newline()
	label := fmt.Sprintf("%d results", len(lines))
	if len(lines) == 1 {
		label = "1 result"
	}
	p.Println(ListCountStyle.Render(label))
}

// RenderHeader renders a command header box
func RenderHeader(title, command string, params map[string]string, width int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	titleLine := HeaderTitleStyle.Render(strings.ToUpper(title))
	commandLine := HeaderCommandStyle.Render(command)
	topSection := lipgloss.JoinVertical(lipgloss.Left, titleLine, commandLine)

	content := topSection
	if len(params) > 0 {
		dividerWidth := width - 6 // Account for border and padding
		if dividerWidth < 10 {
			dividerWidth = 10
		}
		divider := lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Render(strings.Repeat("─", dividerWidth))

		var paramLines []string
		for key, value := range params {
			keyStyled := HeaderParamKeyStyle.Render(key + ":")
			valueStyled := HeaderParamValueStyle.Render(value)
			paramLines = append(paramLines, keyStyled+" "+valueStyled)
		}
		paramsSection := strings.Join(paramLines, "\n")

		content = lipgloss.JoinVertical(lipgloss.Left, topSection, divider, paramsSection)
	}

	return HeaderBorderStyle(width).Render(content)
}

// RenderSuccessBox renders a success result box
func RenderSuccessBox(title string, details map[string]string, width int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var lines []string
	titleLine := SuccessTitleStyle.Render("   " + SuccessMarker + "  SUCCESS  -  " + title)
	lines = append(lines, "", titleLine, "")

	for key, value := range details {
		keyStyled := ResultKeyStyle.Render("   " + key + ":")
		valueStyled := ResultValueStyle.Render(value)
		lines = append(lines, keyStyled+" "+valueStyled)
	}
	lines = append(lines, "")

	return SuccessBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// RenderErrorBox renders an error result box with tips
func RenderErrorBox(title string, err error, tips []string, width int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var lines []string
	titleLine := ErrorTitleStyle.Render("   " + FailureMarker + "  FAILED  -  " + title)
	lines = append(lines, "", titleLine, "")

	if err != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+err.Error()), "")
	}

	if len(tips) > 0 {
		var tipLines []string
		tipLines = append(tipLines, TipTitleStyle.Render("Try:"), "")
		for _, tip := range tips {
			tipLines = append(tipLines, TipItemStyle.Render("  • "+tip))
		}
		lines = append(lines, TipBoxStyle(width).Render(strings.Join(tipLines, "\n")), "")
	}

	return ErrorBoxStyle(width).Render(strings.Join(lines, "\n"))
}
