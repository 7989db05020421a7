package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDebounce is the pause after the last keystroke before a
// suggestion search fires.
const DefaultDebounce = 300 * time.Millisecond

// debounceFiredMsg signals that a debounce timer elapsed. Only the
// message carrying the debouncer's latest sequence number is acted on;
// earlier timers are stale keystrokes.
type debounceFiredMsg struct {
	id  string
	seq int
}

// debouncer coalesces rapid input changes into a single deferred action.
// Every Trigger bumps the sequence number and schedules a tick; when a
// tick arrives, Current tells the model whether it is the latest one.
// The same sequence number is threaded through the async fetch it starts,
// so responses that were overtaken by newer input get dropped too.
type debouncer struct {
	id    string
	delay time.Duration
	seq   int
}

func newDebouncer(id string, delay time.Duration) debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return debouncer{id: id, delay: delay}
}

// Trigger schedules a new deferred firing, invalidating any pending one.
func (d *debouncer) Trigger() tea.Cmd {
	d.seq++
	seq := d.seq
	id := d.id
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return debounceFiredMsg{id: id, seq: seq}
	})
}

// Current reports whether the message is the latest firing for this
// debouncer. Stale firings and responses must be ignored.
func (d *debouncer) Current(msg debounceFiredMsg) bool {
	return msg.id == d.id && msg.seq == d.seq
}

// CurrentSeq reports whether a sequence number (threaded through an async
// result message) is still the latest.
func (d *debouncer) CurrentSeq(seq int) bool {
	return seq == d.seq
}

// Cancel invalidates any pending firing without scheduling a new one.
func (d *debouncer) Cancel() {
	d.seq++
}
