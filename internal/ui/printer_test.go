package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrinterList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(80)

	p.PrintList([]string{"Bellfield - Edinburgh", "Brass Castle - Malton"})

	out := buf.String()
	if !strings.Contains(out, "Bellfield") || !strings.Contains(out, "Brass Castle") {
		t.Errorf("output missing entries:\n%s", out)
	}
	if !strings.Contains(out, "2 results") {
		t.Errorf("output missing count:\n%s", out)
	}
}

func TestPrinterListSingular(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).SetWidth(80).PrintList([]string{"Bellfield"})

	if !strings.Contains(buf.String(), "1 result") {
		t.Errorf("want singular count:\n%s", buf.String())
	}
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader("Brewery search", "gfpint breweries", map[string]string{"Query": "bell"}, 80)

	if !strings.Contains(out, "BREWERY SEARCH") {
		t.Errorf("title not uppercased:\n%s", out)
	}
	if !strings.Contains(out, "gfpint breweries") || !strings.Contains(out, "bell") {
		t.Errorf("command or params missing:\n%s", out)
	}
}

func TestRenderSuccessBox(t *testing.T) {
	out := RenderSuccessBox("Report submitted", map[string]string{"Venue": "The Hop Inn"}, 80)

	if !strings.Contains(out, "SUCCESS") || !strings.Contains(out, "The Hop Inn") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRenderErrorBox(t *testing.T) {
	out := RenderErrorBox("Submission failed", errors.New("connection refused"), []string{"Check the server URL"}, 80)

	if !strings.Contains(out, "FAILED") || !strings.Contains(out, "connection refused") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "Check the server URL") {
		t.Errorf("tips missing:\n%s", out)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false}, // EOF
		{"maybe\n", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got := Confirm(&out, strings.NewReader(tt.input), "Submit this report?")
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "[y/N]") {
			t.Errorf("prompt missing from output: %q", out.String())
		}
	}
}

func TestConfirmSubmission(t *testing.T) {
	var out bytes.Buffer
	ok := ConfirmSubmission(&out, strings.NewReader("y\n"), "The Hop Inn", "Lawless Village IPA by Bellfield on tap")

	if !ok {
		t.Error("ConfirmSubmission = false on yes")
	}
	if !strings.Contains(out.String(), "The Hop Inn") {
		t.Errorf("summary box missing venue:\n%s", out.String())
	}
}
