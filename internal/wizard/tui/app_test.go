package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gfpint/gfpint/internal/api"
	"github.com/gfpint/gfpint/internal/config"
)

func newTestApp(venue *api.Venue) AppModel {
	client := api.NewClient("http://127.0.0.1:0")
	client.SetRetry(0, time.Millisecond)
	registry := config.NewRegistry()
	registry.SetIdentity("u-1", "alex")
	return NewAppModel(client, registry, venue)
}

func TestAppStartsAtVenueSearch(t *testing.T) {
	app := newTestApp(nil)
	if app.CurrentScreen != ScreenVenue {
		t.Errorf("CurrentScreen = %v, want ScreenVenue", app.CurrentScreen)
	}
}

func TestAppStartsAtReportWithVenueArg(t *testing.T) {
	app := newTestApp(&wizardVenue)
	if app.CurrentScreen != ScreenReport {
		t.Errorf("CurrentScreen = %v, want ScreenReport", app.CurrentScreen)
	}
	if app.SelectedVenue == nil || app.SelectedVenue.ID != "v-1" {
		t.Errorf("SelectedVenue = %+v", app.SelectedVenue)
	}
}

func TestAppVenueSelectionWithoutItemStaysPut(t *testing.T) {
	app := newTestApp(nil)

	// a selection flag with no selected item resets instead of transitioning
	app.VenueModel.Selected = true
	updated, _ := app.updateCurrentScreen(tea.KeyMsg{Type: tea.KeyEnter})
	app = updated.(AppModel)

	// no selected item exists, so the flag resets and we stay put
	if app.CurrentScreen != ScreenVenue {
		t.Errorf("CurrentScreen = %v, want ScreenVenue", app.CurrentScreen)
	}
}

func TestAppFailureTransitionPreservesReport(t *testing.T) {
	app := newTestApp(&wizardVenue)

	app.ReportModel.Failed = true
	app.ReportModel.ServerError = "duplicate report"
	updated, _ := app.updateCurrentScreen(struct{}{})
	app = updated.(AppModel)

	if app.CurrentScreen != ScreenFailure {
		t.Fatalf("CurrentScreen = %v, want ScreenFailure", app.CurrentScreen)
	}
	if app.ServerError != "duplicate report" {
		t.Errorf("ServerError = %q", app.ServerError)
	}

	// editing returns to the report screen with the same report value
	before := app.ReportModel.Report
	updated, _ = app.handleFailureScreen(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	app = updated.(AppModel)
	if app.CurrentScreen != ScreenReport {
		t.Errorf("CurrentScreen = %v, want ScreenReport", app.CurrentScreen)
	}
	if app.ReportModel.Report != before {
		t.Error("edit replaced the report state")
	}
}

func TestAppCompletionRecordsVenue(t *testing.T) {
	// recordReport saves the registry; point the config dir at a temp dir
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Setenv("LOCALAPPDATA", tmp)

	app := newTestApp(&wizardVenue)

	app.ReportModel.Completed = true
	updated, _ := app.updateCurrentScreen(struct{}{})
	app = updated.(AppModel)

	if app.CurrentScreen != ScreenSuccess {
		t.Fatalf("CurrentScreen = %v, want ScreenSuccess", app.CurrentScreen)
	}
	venue := app.Registry.GetVenue("v-1")
	if venue == nil || venue.LastReport.IsZero() {
		t.Errorf("venue bookmark = %+v, want last-report recorded", venue)
	}
}

func TestAppCompletionShowsToast(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Setenv("LOCALAPPDATA", tmp)

	app := newTestApp(&wizardVenue)
	app.ReportModel.Completed = true
	updated, _ := app.updateCurrentScreen(struct{}{})
	app = updated.(AppModel)

	if !app.Toast.IsVisible() {
		t.Fatal("success transition should show a toast")
	}
	if app.Toast.Message() != "Report submitted" {
		t.Errorf("toast = %q", app.Toast.Message())
	}
}

func TestAppFailureShowsServerErrorToast(t *testing.T) {
	app := newTestApp(&wizardVenue)
	app.ReportModel.Failed = true
	app.ReportModel.ServerError = "duplicate report"
	updated, _ := app.updateCurrentScreen(struct{}{})
	app = updated.(AppModel)

	if app.CurrentScreen != ScreenFailure {
		t.Fatalf("CurrentScreen = %v, want ScreenFailure", app.CurrentScreen)
	}
	if !app.Toast.IsVisible() || app.Toast.Message() != "duplicate report" {
		t.Errorf("toast visible=%v message=%q", app.Toast.IsVisible(), app.Toast.Message())
	}
}

func TestAppShowToastMsgWiring(t *testing.T) {
	app := newTestApp(nil)
	updated, cmd := app.Update(showToastMsg{message: "hello", level: ToastInfo})
	app = updated.(AppModel)

	if !app.Toast.IsVisible() || app.Toast.Message() != "hello" {
		t.Fatalf("toast visible=%v message=%q", app.Toast.IsVisible(), app.Toast.Message())
	}
	if cmd == nil {
		t.Error("expected the dismiss timer command")
	}

	// the footer line is taken over while the toast is up
	app.Width = 100
	app.Height = 30
	if !strings.Contains(app.View(), "hello") {
		t.Error("visible toast should appear in the rendered view")
	}
}
