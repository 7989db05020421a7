package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ToastDuration is how long a toast stays visible.
const ToastDuration = 3 * time.Second

// ToastLevel selects the toast's color treatment.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastError
)

// toastDismissMsg is sent when a toast's timer elapses. The seq guards
// against an old timer dismissing a newer toast shown in the meantime.
type toastDismissMsg struct {
	seq int
}

// showToastMsg asks the coordinator to display a toast. Screens emit it
// instead of touching the shared Toast directly.
type showToastMsg struct {
	message string
	level   ToastLevel
}

// showToast returns a command requesting a toast.
func showToast(message string, level ToastLevel) tea.Cmd {
	return func() tea.Msg {
		return showToastMsg{message: message, level: level}
	}
}

// Toast is a transient notification shown in the bottom-right corner.
// Showing a new toast replaces the current one and restarts the timer.
type Toast struct {
	message string
	level   ToastLevel
	visible bool
	seq     int
}

// NewToast creates an empty, hidden toast.
func NewToast() *Toast {
	return &Toast{}
}

// Show displays a toast and returns the command that dismisses it.
func (t *Toast) Show(msg string, level ToastLevel) tea.Cmd {
	t.message = msg
	t.level = level
	t.visible = true
	t.seq++
	seq := t.seq
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return toastDismissMsg{seq: seq}
	})
}

// Update handles dismiss messages. Ticks from replaced toasts are ignored.
func (t *Toast) Update(msg tea.Msg) tea.Cmd {
	if dismiss, ok := msg.(toastDismissMsg); ok {
		if dismiss.seq == t.seq {
			t.visible = false
			t.message = ""
		}
	}
	return nil
}

// IsVisible reports whether the toast is currently shown.
func (t *Toast) IsVisible() bool {
	return t.visible
}

// Message returns the current toast text, or "" when hidden.
func (t *Toast) Message() string {
	if !t.visible {
		return ""
	}
	return t.message
}

// View renders the toast bottom-right within the given dimensions.
// Returns "" when nothing is shown.
func (t *Toast) View(width, height int) string {
	if !t.visible || t.message == "" {
		return ""
	}

	bg := PrimaryColor
	switch t.level {
	case ToastSuccess:
		bg = SecondaryColor
	case ToastError:
		bg = ErrorColor
	}

	style := lipgloss.NewStyle().
		Foreground(TextColor).
		Background(bg).
		Padding(0, 1).
		Bold(true)

	content := style.Render(t.message)
	if lipgloss.Width(content) > width-2 {
		content = style.Width(width - 2).Render(t.message)
	}

	verticalPadding := height - 2
	if verticalPadding < 0 {
		verticalPadding = 0
	}

	var result string
	for i := 0; i < verticalPadding; i++ {
		result += "\n"
	}
	result += lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Right).
		PaddingRight(1).
		Render(content)

	return result
}
