package tui

import (
	"strings"
	"testing"
)

func TestToastShowAndDismiss(t *testing.T) {
	toast := NewToast()
	if toast.IsVisible() {
		t.Fatal("new toast visible")
	}

	cmd := toast.Show("Report submitted", ToastSuccess)
	if cmd == nil {
		t.Fatal("Show returned nil dismiss command")
	}
	if !toast.IsVisible() || toast.Message() != "Report submitted" {
		t.Errorf("visible=%v message=%q", toast.IsVisible(), toast.Message())
	}

	toast.Update(toastDismissMsg{seq: toast.seq})
	if toast.IsVisible() {
		t.Error("toast still visible after dismiss")
	}
	if toast.Message() != "" {
		t.Errorf("Message = %q after dismiss", toast.Message())
	}
}

func TestToastReplacedKeepsNewMessage(t *testing.T) {
	toast := NewToast()
	_ = toast.Show("first", ToastInfo)
	staleSeq := toast.seq
	_ = toast.Show("second", ToastError)

	// the first toast's timer fires after the second was shown
	toast.Update(toastDismissMsg{seq: staleSeq})

	if !toast.IsVisible() || toast.Message() != "second" {
		t.Errorf("stale dismiss hid the replacement: visible=%v message=%q",
			toast.IsVisible(), toast.Message())
	}
}

func TestToastView(t *testing.T) {
	toast := NewToast()
	if got := toast.View(80, 24); got != "" {
		t.Errorf("hidden toast rendered %q", got)
	}

	_ = toast.Show("network error", ToastError)
	got := toast.View(80, 24)
	if !strings.Contains(got, "network error") {
		t.Errorf("view missing message:\n%s", got)
	}
}
