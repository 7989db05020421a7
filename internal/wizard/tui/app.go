package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gfpint/gfpint/internal/api"
	"github.com/gfpint/gfpint/internal/config"
	"github.com/gfpint/gfpint/internal/report"
	"github.com/gfpint/gfpint/internal/urls"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenVenue   Screen = "venue"
	ScreenReport  Screen = "report"
	ScreenSuccess Screen = "success"
	ScreenFailure Screen = "failure"
)

// successKeyMap defines key bindings for the success screen
type successKeyMap struct {
	Again  key.Binding
	Venues key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k successKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Again, k.Venues, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k successKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Again, k.Venues, k.Quit},
	}
}

// failureKeyMap defines key bindings for the failure screen
type failureKeyMap struct {
	Retry key.Binding
	Edit  key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k failureKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Retry, k.Edit, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k failureKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Retry, k.Edit, k.Quit},
	}
}

// AppModel is the top-level coordinator model that manages screen
// transitions. All application state the screens share lives here: the
// API client, the config registry, and the venue being reported against.
type AppModel struct {
	// Current screen state
	CurrentScreen  Screen
	PreviousScreen Screen

	// Screen models
	VenueModel  VenueModel
	ReportModel ReportModel

	// Shared application state
	Client        *api.Client
	Registry      *config.Registry
	SelectedVenue *api.Venue
	LastError     error
	ServerError   string

	// startedWithVenue means the venue came from the command line, so
	// backing out of the wizard quits instead of returning to search
	startedWithVenue bool

	// UI state
	Width  int
	Height int
	Toast  *Toast

	// Help
	Help        help.Model
	SuccessKeys successKeyMap
	FailureKeys failureKeyMap
}

// NewAppModel creates the application model. With a non-nil venue the
// wizard starts directly on the report screen; otherwise it starts at
// venue search.
func NewAppModel(client *api.Client, registry *config.Registry, venue *api.Venue) AppModel {
	successKeys := successKeyMap{
		Again: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "report another beer"),
		),
		Venues: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "pick another venue"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}

	failureKeys := failureKeyMap{
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit report"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}

	model := AppModel{
		Client:      client,
		Registry:    registry,
		Toast:       NewToast(),
		Help:        help.New(),
		SuccessKeys: successKeys,
		FailureKeys: failureKeys,
	}

	if venue != nil {
		model.CurrentScreen = ScreenReport
		model.SelectedVenue = venue
		model.startedWithVenue = true
		model.ReportModel = model.newReportModel(*venue)
	} else {
		model.CurrentScreen = ScreenVenue
		model.VenueModel = NewVenueModel(client, registry.DebounceInterval())
	}

	return model
}

func (m AppModel) newReportModel(venue api.Venue) ReportModel {
	var userID, submittedBy string
	if m.Registry.Identity != nil {
		userID = m.Registry.Identity.UserID
		submittedBy = m.Registry.Identity.SubmittedBy
	}
	return NewReportModel(m.Client, venue, userID, submittedBy, m.Registry.DebounceInterval())
}

// Init initializes the starting screen
func (m AppModel) Init() tea.Cmd {
	switch m.CurrentScreen {
	case ScreenVenue:
		return m.VenueModel.Init()
	case ScreenReport:
		model, cmd := m.ReportModel.enterStep()
		m.ReportModel = model.(ReportModel)
		return tea.Batch(m.ReportModel.Init(), cmd)
	default:
		return nil
	}
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		// Propagate to all screens
		updatedVenue, _ := m.VenueModel.Update(msg)
		m.VenueModel = updatedVenue.(VenueModel)
		updatedReport, _ := m.ReportModel.Update(msg)
		m.ReportModel = updatedReport.(ReportModel)
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case toastDismissMsg:
		return m, m.Toast.Update(msg)

	case showToastMsg:
		return m, m.Toast.Show(msg.message, msg.level)
	}

	return m.updateCurrentScreen(msg)
}

// updateCurrentScreen routes updates to the currently active screen
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.CurrentScreen {
	case ScreenVenue:
		updated, c := m.VenueModel.Update(msg)
		m.VenueModel = updated.(VenueModel)
		cmd = c

		if m.VenueModel.Selected {
			if venue := m.VenueModel.GetSelectedVenue(); venue != nil {
				m.SelectedVenue = venue
				m.Registry.EnsureVenue(venue.ID, venue.Name)
				return m.transitionTo(ScreenReport)
			}
			m.VenueModel.Selected = false
		}

		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			return m, tea.Quit
		}

	case ScreenReport:
		updated, c := m.ReportModel.Update(msg)
		m.ReportModel = updated.(ReportModel)
		cmd = c

		if m.ReportModel.BackRequested {
			m.ReportModel.BackRequested = false
			if m.startedWithVenue {
				return m, tea.Quit
			}
			return m.transitionTo(ScreenVenue)
		}
		if m.ReportModel.Completed {
			m.ReportModel.Completed = false
			m.recordReport()
			model, c := m.transitionTo(ScreenSuccess)
			return model, tea.Batch(c, m.Toast.Show("Report submitted", ToastSuccess))
		}
		if m.ReportModel.Failed {
			m.LastError = m.ReportModel.SubmitErr
			m.ServerError = m.ReportModel.ServerError
			notice := m.ServerError
			if notice == "" && m.LastError != nil {
				notice = api.ShortMessage(m.LastError)
			}
			model, c := m.transitionTo(ScreenFailure)
			if notice == "" {
				return model, c
			}
			return model, tea.Batch(c, m.Toast.Show(notice, ToastError))
		}

	case ScreenSuccess:
		return m.handleSuccessScreen(msg)

	case ScreenFailure:
		return m.handleFailureScreen(msg)
	}

	return m, cmd
}

// recordReport bookmarks the venue and timestamps the report in the
// registry. A save failure is not worth interrupting the flow for.
func (m *AppModel) recordReport() {
	if m.SelectedVenue == nil {
		return
	}
	m.Registry.RecordReport(m.SelectedVenue.ID, m.SelectedVenue.Name)
	_ = m.Registry.Save()
}

// handleSuccessScreen handles user input on the success screen
func (m AppModel) handleSuccessScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "a", "enter":
			// Report another beer at the same venue
			m.ReportModel = m.newReportModel(*m.SelectedVenue)
			return m.transitionTo(ScreenReport)

		case "v":
			if m.startedWithVenue {
				return m, tea.Quit
			}
			return m.transitionTo(ScreenVenue)

		case "q", "esc":
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleFailureScreen handles user input on the failure screen. Retrying
// re-sends the identical submission: everything the user entered is still
// on the report.
func (m AppModel) handleFailureScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "r":
			updated, cmd := m.ReportModel.Retry()
			m.ReportModel = updated.(ReportModel)
			m.CurrentScreen = ScreenReport
			return m, cmd

		case "e", "esc":
			// Back to the details form with every field intact
			m.ReportModel.Failed = false
			m.CurrentScreen = ScreenReport
			return m, nil

		case "q":
			return m, tea.Quit
		}
	}

	return m, nil
}

// transitionTo transitions to a new screen
func (m AppModel) transitionTo(screen Screen) (tea.Model, tea.Cmd) {
	m.PreviousScreen = m.CurrentScreen
	m.CurrentScreen = screen

	var cmd tea.Cmd

	switch screen {
	case ScreenVenue:
		m.VenueModel = NewVenueModel(m.Client, m.Registry.DebounceInterval())
		venueUpdated, _ := m.VenueModel.Update(tea.WindowSizeMsg{Width: m.Width, Height: m.Height})
		m.VenueModel = venueUpdated.(VenueModel)
		cmd = m.VenueModel.Init()

	case ScreenReport:
		if m.ReportModel.Report == nil && m.SelectedVenue != nil {
			m.ReportModel = m.newReportModel(*m.SelectedVenue)
		}
		if m.PreviousScreen == ScreenVenue {
			m.ReportModel = m.newReportModel(*m.SelectedVenue)
		}
		m.ReportModel.Width = m.Width
		m.ReportModel.Height = m.Height
		model, stepCmd := m.ReportModel.enterStep()
		m.ReportModel = model.(ReportModel)
		cmd = tea.Batch(m.ReportModel.Init(), stepCmd)
	}

	return m, cmd
}

// View renders the current screen wrapped in the application container
func (m AppModel) View() string {
	var content, helpText string

	switch m.CurrentScreen {
	case ScreenVenue:
		content = m.VenueModel.View()
		helpText = m.VenueModel.HelpView()
	case ScreenReport:
		if m.ReportModel.StatusPrompt {
			// the status prompt modal replaces the whole frame
			return m.ReportModel.View()
		}
		content = m.ReportModel.View()
		helpText = m.ReportModel.HelpView()
	case ScreenSuccess:
		content = m.buildSuccessContent()
		helpText = m.Help.View(m.SuccessKeys)
	case ScreenFailure:
		content = m.buildFailureContent()
		helpText = m.Help.View(m.FailureKeys)
	default:
		content = "Unknown screen"
	}

	// A visible toast takes over the footer line until it expires
	if m.Toast.IsVisible() {
		helpText = m.Toast.Message()
	}

	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}

// buildSuccessContent builds the success screen content
func (m AppModel) buildSuccessContent() string {
	var b strings.Builder

	b.WriteString(RenderTitle("✓ Thanks - report submitted!"))
	b.WriteString("\n\n")

	if m.SelectedVenue != nil && m.ReportModel.Report != nil {
		r := m.ReportModel.Report
		b.WriteString(SuccessBoxStyle.Render("Now on the record:"))
		b.WriteString("\n\n")
		line := fmt.Sprintf("  %s by %s", r.BeerName(), r.Brewery())
		if r.Style() != "" {
			line += " (" + r.Style() + ")"
		}
		b.WriteString(line + " on " + report.FormatLabel(r.Format()) + "\n")
		b.WriteString(fmt.Sprintf("  at %s\n\n", m.SelectedVenue.Name))
	}

	b.WriteString("What would you like to do next?\n\n")
	b.WriteString(MenuItemStyle.Render("  a/Enter - Report another beer here"))
	b.WriteString("\n")
	b.WriteString(MenuItemStyle.Render("  v       - Pick another venue"))
	b.WriteString("\n")
	b.WriteString(MenuItemStyle.Render("  q       - Exit"))
	b.WriteString("\n")

	return b.String()
}

// buildFailureContent builds the failure screen content
func (m AppModel) buildFailureContent() string {
	var b strings.Builder

	b.WriteString(RenderTitle("✗ Submission failed"))
	b.WriteString("\n\n")

	switch {
	case m.ServerError != "":
		b.WriteString(ErrorBoxStyle.Render("Server said: " + m.ServerError))
		b.WriteString("\n\n")
	case m.LastError != nil:
		b.WriteString(ErrorBoxStyle.Render("Error: " + api.ShortMessage(m.LastError)))
		b.WriteString("\n\n")
	}

	b.WriteString("Your report is still filled in - nothing was lost.\n\n")

	b.WriteString("Troubleshooting:\n")
	b.WriteString("  • Check your network connection\n")
	b.WriteString("  • Verify the server URL with 'gfpint config show'\n")
	b.WriteString("  • Retry in a few seconds\n")
	b.WriteString("  • More help: " + urls.Troubleshooting + "\n\n")

	b.WriteString("What would you like to do?\n\n")
	b.WriteString(MenuItemStyle.Render("  r - Retry the submission"))
	b.WriteString("\n")
	b.WriteString(MenuItemStyle.Render("  e - Edit the report"))
	b.WriteString("\n")
	b.WriteString(MenuItemStyle.Render("  q - Exit"))
	b.WriteString("\n")

	return b.String()
}
