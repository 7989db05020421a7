package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gfpint/gfpint/internal/api"
)

// venueResultsMsg carries the outcome of an async venue search. The seq
// ties it to the keystroke that started it; overtaken results are dropped.
type venueResultsMsg struct {
	venues []api.Venue
	err    error
	seq    int
}

// venueKeyMap defines key bindings for the venue screen
type venueKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k venueKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k venueKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Quit},
	}
}

// venueItem wraps a Venue for use with bubbles/list
type venueItem struct {
	venue api.Venue
}

// Implement list.Item interface
func (v venueItem) FilterValue() string {
	return v.venue.Name + " " + v.venue.Address
}

// Title returns the venue name for list display
func (v venueItem) Title() string {
	return v.venue.Name
}

// Description returns venue details for list display
func (v venueItem) Description() string {
	if v.venue.Address == "" {
		return v.venue.StatusLabel()
	}
	return fmt.Sprintf("%s • %s", v.venue.Address, v.venue.StatusLabel())
}

// venueDelegate is a custom list delegate for rendering venue cards
type venueDelegate struct {
	width int
}

func (d venueDelegate) Height() int { return 6 } // Card height including borders

func (d venueDelegate) Spacing() int { return 1 }

func (d venueDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d venueDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	vi, ok := item.(venueItem)
	if !ok {
		return
	}

	venue := vi.venue
	selected := index == m.Index()

	var content strings.Builder
	if selected {
		content.WriteString(SelectedMenuItemStyle.Render("→ " + venue.Name))
	} else {
		content.WriteString("  " + venue.Name)
	}
	content.WriteString("\n\n")

	if venue.Address != "" {
		content.WriteString(fmt.Sprintf("  Address:  %s\n", venue.Address))
	}
	statusStyle := lipgloss.NewStyle().Foreground(SecondaryColor).Bold(true)
	content.WriteString(fmt.Sprintf("  GF beer:  %s", statusStyle.Render(venue.StatusLabel())))

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 2).
		MarginLeft(2)

	cardWidth := d.width - 6 // 2 for margin-left, 4 for border + padding
	if cardWidth < MinTerminalWidth-6 {
		cardWidth = MinTerminalWidth - 6
	}
	if cardWidth > MaxContentWidth-6 {
		cardWidth = MaxContentWidth - 6
	}
	cardStyle = cardStyle.Width(cardWidth)

	if selected {
		cardStyle = cardStyle.BorderForeground(HighlightColor)
	}

	fmt.Fprint(w, cardStyle.Render(content.String()))
}

// VenueModel is the venue search screen: a search box over the venue
// endpoint with debounced queries and a card list of results.
type VenueModel struct {
	client *api.Client

	SearchInput textinput.Model
	VenueList   list.Model
	Searching   bool
	Selected    bool
	Err         error

	debounce debouncer

	// UI state
	Width   int
	Height  int
	Spinner spinner.Model
	Help    help.Model
	Keys    venueKeyMap
}

// NewVenueModel creates a venue search screen backed by the given client.
func NewVenueModel(client *api.Client, debounceDelay time.Duration) VenueModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	searchInput := textinput.New()
	searchInput.Placeholder = "Search venues by name or town..."
	searchInput.CharLimit = 80
	searchInput.Width = 50
	searchInput.Focus()

	delegate := venueDelegate{width: MinTerminalWidth}
	venueList := list.New([]list.Item{}, delegate, 0, 0)
	venueList.Title = "Venues"
	venueList.SetShowStatusBar(false)
	venueList.SetFilteringEnabled(false)
	venueList.SetShowHelp(false)
	venueList.Styles.Title = TitleStyle

	keys := venueKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "move down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "report a beer here"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}

	return VenueModel{
		client:      client,
		SearchInput: searchInput,
		VenueList:   venueList,
		debounce:    newDebouncer("venue", debounceDelay),
		Spinner:     s,
		Help:        help.New(),
		Keys:        keys,
	}
}

// Init starts the spinner.
func (m VenueModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.Spinner.Tick)
}

// Update handles messages and updates the model
func (m VenueModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "down":
			m.VenueList, cmd = m.VenueList.Update(msg)
			return m, cmd

		case "enter":
			if m.VenueList.SelectedItem() != nil {
				m.Selected = true
			}
			return m, nil

		default:
			before := m.SearchInput.Value()
			m.SearchInput, cmd = m.SearchInput.Update(msg)
			if m.SearchInput.Value() != before {
				return m, tea.Batch(cmd, m.debounce.Trigger())
			}
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.VenueList.SetDelegate(venueDelegate{width: msg.Width})
		m.VenueList.SetWidth(msg.Width - 4)
		m.VenueList.SetHeight(msg.Height - 12) // Leave room for header/search/footer

	case debounceFiredMsg:
		if m.debounce.Current(msg) {
			query := strings.TrimSpace(m.SearchInput.Value())
			if query == "" {
				m.VenueList.SetItems([]list.Item{})
				m.Err = nil
				return m, nil
			}
			m.Searching = true
			return m, searchVenues(m.client, query, msg.seq)
		}

	case venueResultsMsg:
		if !m.debounce.CurrentSeq(msg.seq) {
			return m, nil // overtaken by newer input
		}
		m.Searching = false
		m.Err = msg.err
		items := make([]list.Item, len(msg.venues))
		for i, v := range msg.venues {
			items[i] = venueItem{venue: v}
		}
		m.VenueList.SetItems(items)
		m.VenueList.Select(0)

	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	return m, cmd
}

// View renders the venue screen content (the app container is applied by
// the coordinator).
func (m VenueModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(RenderTitle("  Where are you drinking?"))
	b.WriteString("\n")
	b.WriteString("  Search: " + m.SearchInput.View())
	b.WriteString("\n\n")

	switch {
	case m.Searching:
		b.WriteString(SpinnerStyle.Render(fmt.Sprintf("  %s Searching venues...", m.Spinner.View())))
		b.WriteString("\n")

	case m.Err != nil:
		b.WriteString(RenderError(fmt.Sprintf("Search failed: %v", api.ShortMessage(m.Err))))
		b.WriteString("\n\n")
		b.WriteString("  Troubleshooting:\n")
		b.WriteString("    • Check your network connection\n")
		b.WriteString("    • Verify the server URL with 'gfpint config show'\n")

	case strings.TrimSpace(m.SearchInput.Value()) == "":
		b.WriteString(RenderSubtitle("  Start typing to find a venue"))
		b.WriteString("\n")

	case len(m.VenueList.Items()) == 0:
		warningStyle := lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
		b.WriteString("  ")
		b.WriteString(warningStyle.Render("⚠ No venues matched your search"))
		b.WriteString("\n\n")
		b.WriteString(RenderSubtitle("  Try a shorter name or the town instead"))
		b.WriteString("\n")

	default:
		b.WriteString(m.VenueList.View())
	}

	return b.String()
}

// HelpView renders the context help line for the footer.
func (m VenueModel) HelpView() string {
	return m.Help.View(m.Keys)
}

// GetSelectedVenue returns the venue the user picked, if any.
func (m VenueModel) GetSelectedVenue() *api.Venue {
	if !m.Selected {
		return nil
	}
	if item, ok := m.VenueList.SelectedItem().(venueItem); ok {
		venue := item.venue
		return &venue
	}
	return nil
}

// searchVenues queries the venue endpoint off the UI goroutine.
func searchVenues(client *api.Client, query string, seq int) tea.Cmd {
	return func() tea.Msg {
		venues, err := client.SearchVenues(query)
		return venueResultsMsg{venues: venues, err: err, seq: seq}
	}
}
