package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gfpint/gfpint/internal/api"
	"github.com/gfpint/gfpint/internal/report"
	"github.com/gfpint/gfpint/internal/suggest"
)

// suggestResultsMsg carries an async suggestion fetch back to the wizard.
// The seq ties it to the keystroke that started it; results overtaken by
// newer input are dropped, so a slow early response can never clobber the
// dropdown for a later query.
type suggestResultsMsg struct {
	field string // "brewery" or "beer"
	list  suggest.List
	err   error
	seq   int
}

// submitResultMsg carries the outcome of the report POST.
type submitResultMsg struct {
	resp *api.SubmitResponse
	err  error
}

// statusUpdateResultMsg carries the outcome of the GF status POST.
type statusUpdateResultMsg struct {
	err error
}

// reportKeyMap defines key bindings for the report wizard screen
type reportKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k reportKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k reportKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back, k.Quit},
	}
}

// statusChoice pairs a backend status identifier with its display label.
type statusChoice struct {
	value string
	label string
}

// statusChoices are offered in the post-submission GF status prompt.
var statusChoices = []statusChoice{
	{"always_tap", "Always has GF beer on tap"},
	{"always_bottle", "Always has GF bottles"},
	{"currently", "Currently has GF beer"},
	{"not_currently", "No GF beer right now"},
}

// detailsFields indexes the focusable elements of the details step.
const (
	fieldBeerName = iota
	fieldStyle
	fieldABV
	fieldSubmit
)

// ReportModel drives the report wizard for one venue. The wizard state
// itself lives in report.Report; this model owns the rendering and the
// async plumbing (debounced suggestion fetches, the final POST, and the
// optional GF status prompt).
type ReportModel struct {
	client *api.Client
	Report *report.Report

	userID      string
	submittedBy string

	// Format and brewery-question cursors
	formatCursor   int
	questionCursor int

	// Shared search input for the brewery and beer steps
	SearchInput textinput.Model

	// Suggestion dropdown state
	dropdown        suggest.List
	dropdownCursor  int
	dropdownLoading bool

	breweryDebounce debouncer
	beerDebounce    debouncer

	// Details step inputs
	NameInput    textinput.Model
	StyleInput   textinput.Model
	ABVInput     textinput.Model
	detailsFocus int

	// Submission state
	Submitting    bool
	Completed     bool
	Failed        bool
	SubmitErr     error
	ServerError   string
	StatusPrompt  bool
	statusCursor  int
	BackRequested bool

	// UI state
	Width   int
	Height  int
	Spinner spinner.Model
	Help    help.Model
	Keys    reportKeyMap
}

// NewReportModel creates the wizard for a venue.
func NewReportModel(client *api.Client, venue api.Venue, userID, submittedBy string, debounceDelay time.Duration) ReportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	searchInput := textinput.New()
	searchInput.CharLimit = 80
	searchInput.Width = 50

	nameInput := textinput.New()
	nameInput.Placeholder = "Beer name"
	nameInput.CharLimit = 80
	nameInput.Width = 40

	styleInput := textinput.New()
	styleInput.Placeholder = "Style (optional)"
	styleInput.CharLimit = 40
	styleInput.Width = 40

	abvInput := textinput.New()
	abvInput.Placeholder = "ABV % (optional)"
	abvInput.CharLimit = 5
	abvInput.Width = 10

	keys := reportKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}

	return ReportModel{
		client:          client,
		Report:          report.New(venue),
		userID:          userID,
		submittedBy:     submittedBy,
		SearchInput:     searchInput,
		NameInput:       nameInput,
		StyleInput:      styleInput,
		ABVInput:        abvInput,
		breweryDebounce: newDebouncer("brewery", debounceDelay),
		beerDebounce:    newDebouncer("beer", debounceDelay),
		Spinner:         s,
		Help:            help.New(),
		Keys:            keys,
	}
}

// Init starts the spinner.
func (m ReportModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.Spinner.Tick)
}

// Update handles messages and updates the model
func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Submitting {
			return m, nil // ignore input while the POST is in flight
		}
		if m.StatusPrompt {
			return m.updateStatusPrompt(msg)
		}
		return m.updateStep(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case debounceFiredMsg:
		return m.handleDebounceFired(msg)

	case suggestResultsMsg:
		return m.handleSuggestResults(msg)

	case submitResultMsg:
		return m.handleSubmitResult(msg)

	case statusUpdateResultMsg:
		// the venue status is best-effort; either way the report succeeded
		m.StatusPrompt = false
		m.Completed = true
		return m, nil

	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	return m, cmd
}

// updateStep routes a key press to the current wizard step.
func (m ReportModel) updateStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		return m.goBack()
	}

	switch m.Report.Step() {
	case report.StepFormat:
		return m.updateFormatStep(msg)
	case report.StepBreweryQuestion:
		return m.updateQuestionStep(msg)
	case report.StepBrewerySelect, report.StepBeerSearch:
		return m.updateSearchStep(msg)
	case report.StepBeerDetails:
		return m.updateDetailsStep(msg)
	}
	return m, nil
}

// goBack steps the wizard backwards and reconfigures the UI for the step
// it lands on. At the first step it asks the coordinator to leave.
func (m ReportModel) goBack() (tea.Model, tea.Cmd) {
	if m.Report.Step() == report.StepFormat {
		m.BackRequested = true
		return m, nil
	}
	m.Report.Back()
	return m.enterStep()
}

// updateFormatStep handles the serving format menu.
func (m ReportModel) updateFormatStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		if m.formatCursor > 0 {
			m.formatCursor--
		}
	case "down":
		if m.formatCursor < len(report.Formats)-1 {
			m.formatCursor++
		}
	case "enter":
		if err := m.Report.SelectFormat(report.Formats[m.formatCursor]); err != nil {
			return m, nil
		}
		return m.enterStep()
	}
	return m, nil
}

// updateQuestionStep handles the "do you know the brewery?" question.
func (m ReportModel) updateQuestionStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "down", "left", "right", "tab":
		m.questionCursor = 1 - m.questionCursor
	case "y":
		return m.answerQuestion(true)
	case "n":
		return m.answerQuestion(false)
	case "enter":
		return m.answerQuestion(m.questionCursor == 0)
	}
	return m, nil
}

func (m ReportModel) answerQuestion(knows bool) (tea.Model, tea.Cmd) {
	if err := m.Report.AnswerKnowsBrewery(knows); err != nil {
		return m, nil
	}
	return m.enterStep()
}

// updateSearchStep handles the brewery-select and beer-search steps, which
// share the text input and suggestion dropdown.
func (m ReportModel) updateSearchStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		if m.dropdownCursor > 0 {
			m.dropdownCursor--
		}
		return m, nil

	case "down":
		if m.dropdownCursor < m.dropdown.Len()-1 {
			m.dropdownCursor++
		}
		return m, nil

	case "enter":
		return m.selectDropdownItem()

	default:
		before := m.SearchInput.Value()
		var cmd tea.Cmd
		m.SearchInput, cmd = m.SearchInput.Update(msg)
		if m.SearchInput.Value() != before {
			if m.Report.Step() == report.StepBrewerySelect {
				return m, tea.Batch(cmd, m.breweryDebounce.Trigger())
			}
			return m, tea.Batch(cmd, m.beerDebounce.Trigger())
		}
		return m, cmd
	}
}

// selectDropdownItem applies the highlighted suggestion to the wizard.
func (m ReportModel) selectDropdownItem() (tea.Model, tea.Cmd) {
	if m.dropdownLoading || m.dropdownCursor >= m.dropdown.Len() {
		return m, nil
	}
	item := m.dropdown.Items[m.dropdownCursor]
	query := strings.TrimSpace(m.SearchInput.Value())

	switch m.Report.Step() {
	case report.StepBrewerySelect:
		name := item.Brewery
		isNew := false
		if item.IsNew {
			name = query
			isNew = true
		}
		if err := m.Report.SelectBrewery(name, isNew); err != nil {
			return m, nil
		}
		return m.enterStep()

	case report.StepBeerSearch:
		var err error
		if item.IsNew {
			err = m.Report.StartNewBeer(query)
		} else if item.Beer != nil {
			err = m.Report.SelectBeer(*item.Beer)
		} else {
			return m, nil
		}
		if err != nil {
			return m, nil
		}
		return m.enterStep()
	}
	return m, nil
}

// updateDetailsStep handles the final details form.
func (m ReportModel) updateDetailsStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "shift+tab":
		if m.detailsFocus > fieldBeerName {
			m.detailsFocus--
		}
		m.syncDetailsFocus()
		return m, nil

	case "down", "tab":
		if m.detailsFocus < fieldSubmit {
			m.detailsFocus++
		}
		m.syncDetailsFocus()
		return m, nil

	case "enter":
		if m.detailsFocus == fieldSubmit {
			return m.submit()
		}
		m.detailsFocus++
		m.syncDetailsFocus()
		return m, nil

	default:
		var cmd tea.Cmd
		switch m.detailsFocus {
		case fieldBeerName:
			m.NameInput, cmd = m.NameInput.Update(msg)
		case fieldStyle:
			m.StyleInput, cmd = m.StyleInput.Update(msg)
		case fieldABV:
			m.ABVInput, cmd = m.ABVInput.Update(msg)
		}
		return m, cmd
	}
}

// submit validates the form, records it on the wizard, and fires the POST.
// A validation problem surfaces as a failed submission the user can fix by
// going back; the wizard state is never cleared.
func (m ReportModel) submit() (tea.Model, tea.Cmd) {
	if m.userID == "" {
		m.SubmitErr = fmt.Errorf("no identity configured. Run 'gfpint config set-user <user-id>' first")
		return m, showToast(m.SubmitErr.Error(), ToastError)
	}

	if err := m.Report.SetDetails(
		strings.TrimSpace(m.NameInput.Value()),
		strings.TrimSpace(m.StyleInput.Value()),
		strings.TrimSpace(m.ABVInput.Value()),
	); err != nil {
		m.SubmitErr = err
		return m, nil
	}

	sub, err := m.Report.Submission(m.userID, m.submittedBy)
	if err != nil {
		m.SubmitErr = err
		return m, nil
	}
	if err := sub.Validate(); err != nil {
		m.SubmitErr = err
		return m, nil
	}

	m.Submitting = true
	m.SubmitErr = nil
	client := m.client
	return m, func() tea.Msg {
		resp, err := client.SubmitReport(sub)
		return submitResultMsg{resp: resp, err: err}
	}
}

// Retry re-sends the same submission after a failure. Everything entered
// is still in place, so this is just submit again.
func (m ReportModel) Retry() (tea.Model, tea.Cmd) {
	m.Failed = false
	m.SubmitErr = nil
	m.ServerError = ""
	return m.submit()
}

// handleSubmitResult routes the POST outcome.
func (m ReportModel) handleSubmitResult(msg submitResultMsg) (tea.Model, tea.Cmd) {
	m.Submitting = false

	if msg.err != nil {
		m.Failed = true
		m.SubmitErr = msg.err
		return m, nil
	}
	if !msg.resp.Success {
		m.Failed = true
		m.ServerError = msg.resp.Error
		return m, nil
	}

	if msg.resp.ShowStatusPrompt {
		m.StatusPrompt = true
		m.statusCursor = 0
		return m, nil
	}

	m.Completed = true
	return m, nil
}

// updateStatusPrompt handles the GF status modal shown after a successful
// submission when the server does not know the venue's status yet.
func (m ReportModel) updateStatusPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		if m.statusCursor > 0 {
			m.statusCursor--
		}
	case "down":
		if m.statusCursor < len(statusChoices)-1 {
			m.statusCursor++
		}
	case "esc", "s":
		// skip: the beer report already went through
		m.StatusPrompt = false
		m.Completed = true
	case "enter":
		choice := statusChoices[m.statusCursor]
		update := &api.StatusUpdate{
			VenueID:     m.Report.Venue().ID,
			Status:      choice.value,
			UserID:      m.userID,
			SubmittedBy: m.submittedBy,
		}
		client := m.client
		return m, func() tea.Msg {
			return statusUpdateResultMsg{err: client.UpdateGFStatus(update)}
		}
	}
	return m, nil
}

// handleDebounceFired starts the suggestion fetch for the input that went
// quiet, unless it has been overtaken by more typing.
func (m ReportModel) handleDebounceFired(msg debounceFiredMsg) (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(m.SearchInput.Value())

	switch msg.id {
	case "brewery":
		if !m.breweryDebounce.Current(msg) || m.Report.Step() != report.StepBrewerySelect {
			return m, nil
		}
		m.dropdownLoading = true
		return m, fetchBreweries(m.client, query, msg.seq)

	case "beer":
		if !m.beerDebounce.Current(msg) || m.Report.Step() != report.StepBeerSearch {
			return m, nil
		}
		m.dropdownLoading = true
		if brewery := m.Report.Brewery(); brewery != "" {
			return m, fetchBreweryBeers(m.client, brewery, query, msg.seq)
		}
		return m, fetchBeers(m.client, query, msg.seq)
	}
	return m, nil
}

// handleSuggestResults installs a fetched dropdown, dropping stale results.
func (m ReportModel) handleSuggestResults(msg suggestResultsMsg) (tea.Model, tea.Cmd) {
	switch msg.field {
	case "brewery":
		if !m.breweryDebounce.CurrentSeq(msg.seq) || m.Report.Step() != report.StepBrewerySelect {
			return m, nil
		}
	case "beer":
		if !m.beerDebounce.CurrentSeq(msg.seq) || m.Report.Step() != report.StepBeerSearch {
			return m, nil
		}
	default:
		return m, nil
	}

	m.dropdownLoading = false
	if msg.err != nil {
		m.SubmitErr = nil
		// A dead backend must not trap the user on this step; keep the
		// create-new row for whatever they have typed so far.
		query := strings.TrimSpace(m.SearchInput.Value())
		var fallback suggest.List
		if msg.field == "beer" {
			fallback = suggest.Beers(nil, query)
		} else {
			fallback = suggest.Breweries(nil, query)
		}
		fallback.Header = "search failed: " + api.ShortMessage(msg.err)
		m.dropdown = fallback
		m.dropdownCursor = 0
		return m, nil
	}
	m.dropdown = msg.list
	if m.dropdownCursor >= m.dropdown.Len() {
		m.dropdownCursor = 0
	}
	return m, nil
}

// enterStep configures the UI for whatever step the wizard moved to, and
// kicks off any initial fetch the step wants.
func (m ReportModel) enterStep() (tea.Model, tea.Cmd) {
	m.dropdown = suggest.List{}
	m.dropdownCursor = 0
	m.dropdownLoading = false

	switch m.Report.Step() {
	case report.StepFormat, report.StepBreweryQuestion:
		return m, nil

	case report.StepBrewerySelect:
		m.SearchInput.Placeholder = "Brewery name..."
		m.SearchInput.SetValue("")
		m.SearchInput.Focus()
		// show the default brewery list right away
		m.dropdownLoading = true
		m.breweryDebounce.Cancel()
		return m, fetchBreweries(m.client, "", m.breweryDebounce.seq)

	case report.StepBeerSearch:
		m.SearchInput.SetValue("")
		m.SearchInput.Focus()
		if brewery := m.Report.Brewery(); brewery != "" {
			m.SearchInput.Placeholder = fmt.Sprintf("Beer from %s...", brewery)
			m.dropdownLoading = true
			m.beerDebounce.Cancel()
			return m, fetchBreweryBeers(m.client, brewery, "", m.beerDebounce.seq)
		}
		m.SearchInput.Placeholder = "Beer name (at least 2 characters)..."
		return m, nil

	case report.StepBeerDetails:
		m.NameInput.SetValue(m.Report.BeerName())
		m.StyleInput.SetValue(m.Report.Style())
		m.ABVInput.SetValue(m.Report.ABV())
		m.detailsFocus = fieldBeerName
		m.syncDetailsFocus()
		return m, nil
	}
	return m, nil
}

func (m *ReportModel) syncDetailsFocus() {
	m.NameInput.Blur()
	m.StyleInput.Blur()
	m.ABVInput.Blur()
	switch m.detailsFocus {
	case fieldBeerName:
		m.NameInput.Focus()
	case fieldStyle:
		m.StyleInput.Focus()
	case fieldABV:
		m.ABVInput.Focus()
	}
}

// View renders the wizard content for the current step.
func (m ReportModel) View() string {
	if m.StatusPrompt {
		return m.renderStatusPrompt()
	}

	var b strings.Builder
	venue := m.Report.Venue()

	b.WriteString("\n")
	b.WriteString(RenderTitle("  Report a gluten free beer"))
	b.WriteString("\n")
	b.WriteString(RenderSubtitle(fmt.Sprintf("  at %s", venue.Name)))
	b.WriteString("\n\n")

	if m.Submitting {
		b.WriteString(SpinnerStyle.Render(fmt.Sprintf("  %s Submitting report...", m.Spinner.View())))
		b.WriteString("\n")
		return b.String()
	}

	switch m.Report.Step() {
	case report.StepFormat:
		b.WriteString(m.renderFormatStep())
	case report.StepBreweryQuestion:
		b.WriteString(m.renderQuestionStep())
	case report.StepBrewerySelect:
		b.WriteString(m.renderSearchStep("Which brewery?"))
	case report.StepBeerSearch:
		b.WriteString(m.renderSearchStep("Which beer?"))
	case report.StepBeerDetails:
		b.WriteString(m.renderDetailsStep())
	}

	return b.String()
}

func (m ReportModel) renderFormatStep() string {
	var b strings.Builder
	b.WriteString("  How is it served?\n\n")
	for i, f := range report.Formats {
		b.WriteString(RenderMenuItem(report.FormatLabel(f), i == m.formatCursor))
		b.WriteString("\n")
	}
	return b.String()
}

func (m ReportModel) renderQuestionStep() string {
	var b strings.Builder
	b.WriteString("  Do you know which brewery makes it?\n\n")
	b.WriteString(RenderMenuItem("Yes - pick the brewery first", m.questionCursor == 0))
	b.WriteString("\n")
	b.WriteString(RenderMenuItem("No - search all beers", m.questionCursor == 1))
	b.WriteString("\n")
	return b.String()
}

func (m ReportModel) renderSearchStep(prompt string) string {
	var b strings.Builder
	b.WriteString("  " + prompt + "\n\n")
	b.WriteString("  " + m.SearchInput.View())
	b.WriteString("\n\n")

	if m.dropdownLoading {
		b.WriteString(SpinnerStyle.Render(fmt.Sprintf("  %s Searching...", m.Spinner.View())))
		b.WriteString("\n")
		return b.String()
	}

	if m.dropdown.Header != "" {
		b.WriteString(DropdownHeaderStyle.Render(m.dropdown.Header))
		b.WriteString("\n")
	}
	for i, item := range m.dropdown.Items {
		switch {
		case i == m.dropdownCursor:
			b.WriteString(SelectedDropdownItemStyle.Render("→ " + item.Label))
		case item.IsNew:
			b.WriteString(CreateNewItemStyle.Render("+ " + item.Label))
		default:
			b.WriteString(DropdownItemStyle.Render(item.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m ReportModel) renderDetailsStep() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("  %s on %s\n\n",
		m.Report.Brewery(), report.FormatLabel(m.Report.Format())))

	label := func(text string, focused bool) string {
		if focused {
			return FocusedInputStyle.Render("  " + text)
		}
		return BlurredInputStyle.Render("  " + text)
	}

	b.WriteString(label("Beer name:", m.detailsFocus == fieldBeerName))
	b.WriteString("  " + m.NameInput.View() + "\n")
	b.WriteString(label("Style:", m.detailsFocus == fieldStyle))
	b.WriteString("      " + m.StyleInput.View() + "\n")
	b.WriteString(label("ABV:", m.detailsFocus == fieldABV))
	b.WriteString("        " + m.ABVInput.View() + "\n\n")

	if m.detailsFocus == fieldSubmit {
		b.WriteString(SelectedMenuItemStyle.Render("→ [ Submit report ]"))
	} else {
		b.WriteString(MenuItemStyle.Render("  [ Submit report ]"))
	}
	b.WriteString("\n")

	if m.SubmitErr != nil && !m.Failed {
		b.WriteString("\n")
		b.WriteString(RenderError(m.SubmitErr.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

func (m ReportModel) renderStatusPrompt() string {
	var lines []string
	lines = append(lines, TitleStyle.Render("One more thing"))
	lines = append(lines, "Does this venue usually have gluten free beer?")
	lines = append(lines, "")
	for i, c := range statusChoices {
		lines = append(lines, RenderMenuItem(c.label, i == m.statusCursor))
	}
	lines = append(lines, "")
	lines = append(lines, SubtitleStyle.Render("s to skip"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(1, 3).
		Width(SafeModalWidth(60, m.Width)).
		Render(strings.Join(lines, "\n"))

	return RenderModal(m.Width, m.Height, modal)
}

// HelpView renders the context help line for the footer.
func (m ReportModel) HelpView() string {
	return m.Help.View(m.Keys)
}

// fetchBreweries queries the brewery endpoint and renders the dropdown.
func fetchBreweries(client *api.Client, query string, seq int) tea.Cmd {
	return func() tea.Msg {
		names, err := client.SearchBreweries(query)
		if err != nil {
			return suggestResultsMsg{field: "brewery", err: err, seq: seq}
		}
		return suggestResultsMsg{field: "brewery", list: suggest.Breweries(names, query), seq: seq}
	}
}

// fetchBreweryBeers queries the per-brewery beer list.
func fetchBreweryBeers(client *api.Client, brewery, query string, seq int) tea.Cmd {
	return func() tea.Msg {
		beers, err := client.BreweryBeers(brewery, query)
		if err != nil {
			return suggestResultsMsg{field: "beer", err: err, seq: seq}
		}
		return suggestResultsMsg{field: "beer", list: suggest.Beers(beers, query), seq: seq}
	}
}

// fetchBeers queries the global beer search. Queries under the server's
// minimum length return no results without touching the network.
func fetchBeers(client *api.Client, query string, seq int) tea.Cmd {
	return func() tea.Msg {
		beers, err := client.SearchBeers(query)
		if err != nil {
			return suggestResultsMsg{field: "beer", err: err, seq: seq}
		}
		return suggestResultsMsg{field: "beer", list: suggest.Beers(beers, query), seq: seq}
	}
}
