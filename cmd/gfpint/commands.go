package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gfpint/gfpint/internal/api"
	"github.com/gfpint/gfpint/internal/config"
	"github.com/gfpint/gfpint/internal/feed"
	"github.com/gfpint/gfpint/internal/report"
	"github.com/gfpint/gfpint/internal/ui"
	"github.com/gfpint/gfpint/internal/urls"
	"github.com/gfpint/gfpint/internal/wizard/tui"
)

// Command flags
var (
	serverOverride string
	outputFormat   string
	venueQuery     string

	reportBrewery string
	reportBeer    string
	reportFormat  string
	reportStyle   string
	reportABV     string
	reportYes     bool

	beersBrewery string
)

func init() {
	// Common flags shared by every command (persistent on root)
	rootCmd.PersistentFlags().StringVar(&serverOverride, "server", "", "Backend base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")
	rootCmd.PersistentFlags().StringVar(&venueQuery, "venue", "", "Venue name (skips the venue search step)")

	// Add subcommands directly to root
	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(venuesCmd)
	rootCmd.AddCommand(breweriesCmd)
	rootCmd.AddCommand(beersCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(configCmd)
}

// loadClient builds the API client from the on-disk registry, applying the
// --server override when present.
func loadClient() (*api.Client, *config.Registry, error) {
	registry, err := config.LoadRegistry()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	baseURL := registry.BaseURL()
	if serverOverride != "" {
		baseURL = serverOverride
	}

	return api.NewClient(baseURL), registry, nil
}

// wizardCmd launches the interactive TUI wizard
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Launch the interactive report wizard",
	Long: `Launch an interactive TUI wizard for reporting gluten free beer.

The wizard walks through:
- Finding the venue you're at
- Picking the serving format (tap, cask, bottle, can, keg-keykeg)
- Identifying the brewery and beer, with typo-tolerant suggestions
- Confirming details and submitting the report

This is the recommended way to file reports for most users.`,
	Example: `  # Launch the wizard
  gfpint wizard
  # Or simply (wizard is default):
  gfpint

  # Skip the venue search step
  gfpint wizard --venue "The Crown"
  gfpint --venue "The Crown"`,
	RunE: runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	client, registry, err := loadClient()
	if err != nil {
		return err
	}

	var venue *api.Venue
	if venueQuery != "" {
		venue, err = resolveVenue(client, venueQuery)
		if err != nil {
			return err
		}
	}

	model := tui.NewAppModel(client, registry, venue)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard error: %w", err)
	}

	return nil
}

// venuesCmd searches the venue directory
var venuesCmd = &cobra.Command{
	Use:   "venues <query>",
	Short: "Search for venues",
	Long: `Search the venue directory by name.

Results include the venue's address and its current gluten free status
where one has been reported.`,
	Example: `  # Find venues matching a name
  gfpint venues "crown"

  # Compact output format
  gfpint venues "crown" --format compact

  # JSON output for scripting
  gfpint venues "crown" --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runVenues,
}

func runVenues(cmd *cobra.Command, args []string) error {
	client, _, err := loadClient()
	if err != nil {
		return err
	}

	query := args[0]
	venues, err := client.SearchVenues(query)
	if err != nil {
		return fmt.Errorf("venue search failed: %w", err)
	}

	printer := ui.NewPrinter(os.Stdout)

	if len(venues) == 0 {
		printer.PrintError("No venues found", fmt.Errorf("no venues match %q", query), []string{
			"Try a shorter query",
			"Check the spelling of the venue name",
		})
		return nil
	}

	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(venues, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	case "compact":
		lines := make([]string, 0, len(venues))
		for _, v := range venues {
			lines = append(lines, v.Summary())
		}
		printer.PrintList(lines)
	case "detailed":
		fallthrough
	default:
		printer.PrintHeader("Venue search", "venues", map[string]string{"query": query})
		lines := make([]string, 0, len(venues))
		for _, v := range venues {
			lines = append(lines, v.FormatDetailed())
		}
		printer.PrintList(lines)
	}

	return nil
}

// breweriesCmd lists or searches breweries with gluten free beers
var breweriesCmd = &cobra.Command{
	Use:   "breweries [query]",
	Short: "List breweries with gluten free beers",
	Long: `List the breweries known to produce gluten free beer.

With no query the full brewery list is shown. With a query the list is
filtered with the same typo-tolerant matching the wizard uses.`,
	Example: `  # All known breweries
  gfpint breweries

  # Filter by name (typo tolerant)
  gfpint breweries "brass castel"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBreweries,
}

func runBreweries(cmd *cobra.Command, args []string) error {
	client, _, err := loadClient()
	if err != nil {
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	breweries, err := client.SearchBreweries(query)
	if err != nil {
		return fmt.Errorf("brewery search failed: %w", err)
	}

	printer := ui.NewPrinter(os.Stdout)

	if len(breweries) == 0 {
		printer.PrintError("No breweries found", fmt.Errorf("no breweries match %q", query), []string{
			"Run without a query to see the full list",
		})
		return nil
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(breweries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printer.PrintList(breweries)
	return nil
}

// beersCmd searches beers, either within a brewery or across all breweries
var beersCmd = &cobra.Command{
	Use:   "beers <query>",
	Short: "Search for gluten free beers",
	Long: `Search for gluten free beers by name.

By default the search runs across all breweries and requires at least two
characters. With --brewery the search is scoped to that brewery's beers
and an empty query lists them all.`,
	Example: `  # Search across all breweries
  gfpint beers "pale ale"

  # List everything one brewery makes
  gfpint beers "" --brewery "Bellfield"

  # Search within a brewery
  gfpint beers "lawless" --brewery "Bellfield"`,
	Args: cobra.ExactArgs(1),
	RunE: runBeers,
}

func init() {
	beersCmd.Flags().StringVar(&beersBrewery, "brewery", "", "Restrict the search to one brewery")
}

func runBeers(cmd *cobra.Command, args []string) error {
	client, _, err := loadClient()
	if err != nil {
		return err
	}

	query := args[0]

	var beers []api.Beer
	if beersBrewery != "" {
		beers, err = client.BreweryBeers(beersBrewery, query)
	} else {
		if len(strings.TrimSpace(query)) < 2 {
			return fmt.Errorf("global beer search needs at least 2 characters (or use --brewery)")
		}
		beers, err = client.SearchBeers(query)
	}
	if err != nil {
		return fmt.Errorf("beer search failed: %w", err)
	}

	printer := ui.NewPrinter(os.Stdout)

	if len(beers) == 0 {
		printer.PrintError("No beers found", fmt.Errorf("no beers match %q", query), []string{
			"Try a shorter query",
			"Use 'gfpint breweries' to browse by brewery instead",
		})
		return nil
	}

	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(beers, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	case "compact":
		lines := make([]string, 0, len(beers))
		for _, b := range beers {
			lines = append(lines, b.FormatCompact())
		}
		printer.PrintList(lines)
	case "detailed":
		fallthrough
	default:
		lines := make([]string, 0, len(beers))
		for _, b := range beers {
			lines = append(lines, b.FormatDetailed())
		}
		printer.PrintList(lines)
	}

	return nil
}

// reportCmd submits a report without the wizard
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Submit a beer report directly",
	Long: `Submit a gluten free beer report without the interactive wizard.

All of --venue, --brewery, --beer and --serving are required. The venue
name must match exactly one venue; run 'gfpint venues' first if unsure.

Requires a configured identity (see 'gfpint config set-user').`,
	Example: `  # Report a tap beer
  gfpint report --venue "The Crown" --brewery "Bellfield" --beer "Lawless Village IPA" --serving tap

  # Include style and ABV, skip the confirmation prompt
  gfpint report --venue "The Crown" --brewery "Bellfield" --beer "Lawless Village IPA" \
    --serving tap --style IPA --abv 4.5 --yes`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportBrewery, "brewery", "", "Brewery name")
	reportCmd.Flags().StringVar(&reportBeer, "beer", "", "Beer name")
	reportCmd.Flags().StringVar(&reportFormat, "serving", "", "Serving format (tap, cask, bottle, can, keg-keykeg; keg is accepted as shorthand)")
	reportCmd.Flags().StringVar(&reportStyle, "style", "", "Beer style (optional)")
	reportCmd.Flags().StringVar(&reportABV, "abv", "", "Beer ABV, e.g. 4.5 (optional)")
	reportCmd.Flags().BoolVar(&reportYes, "yes", false, "Skip the confirmation prompt")
}

func runReport(cmd *cobra.Command, args []string) error {
	client, registry, err := loadClient()
	if err != nil {
		return err
	}

	if !registry.HasIdentity() {
		return fmt.Errorf("no identity configured. Run 'gfpint config set-user <user-id> [display-name]' first")
	}
	if venueQuery == "" || reportBrewery == "" || reportBeer == "" || reportFormat == "" {
		return fmt.Errorf("--venue, --brewery, --beer and --serving are all required")
	}
	if reportFormat == "keg" {
		reportFormat = "keg-keykeg"
	}
	if !report.IsValidFormat(reportFormat) {
		return fmt.Errorf("invalid serving format %q (expected one of: %s)", reportFormat, strings.Join(report.Formats, ", "))
	}

	venue, err := resolveVenue(client, venueQuery)
	if err != nil {
		return err
	}

	sub := &api.Submission{
		VenueID:     venue.ID,
		Format:      reportFormat,
		BreweryName: reportBrewery,
		BeerName:    reportBeer,
		BeerStyle:   reportStyle,
		BeerABV:     reportABV,
		UserID:      registry.Identity.UserID,
		SubmittedBy: registry.Identity.SubmittedBy,
	}
	if err := sub.Validate(); err != nil {
		return err
	}

	printer := ui.NewPrinter(os.Stdout)

	if !reportYes {
		if !ui.ConfirmSubmission(os.Stdout, os.Stdin, venue.Name, sub.Summary()) {
			fmt.Println("Aborted.")
			return nil
		}
	}

	resp, err := client.SubmitReport(sub)
	if err != nil {
		printer.PrintError("Submission failed", err, []string{
			"Check your network connection",
			"Retry the same command; duplicate submissions are deduplicated server-side",
			"More help: " + urls.Troubleshooting,
		})
		return fmt.Errorf("submission failed: %s", api.ShortMessage(err))
	}
	if !resp.Success {
		return fmt.Errorf("server rejected the report: %s", resp.Error)
	}

	registry.RecordReport(venue.ID, venue.Name)
	if err := registry.Save(); err != nil {
		// The report went through; a stale bookmark is not worth failing over.
		fmt.Fprintf(os.Stderr, "warning: failed to save config: %v\n", err)
	}

	printer.PrintSuccess("Report submitted", map[string]string{
		"Venue": venue.Name,
		"Beer":  fmt.Sprintf("%s (%s)", reportBeer, reportBrewery),
	})

	if resp.ShowStatusPrompt {
		fmt.Println("This venue has no gluten free status yet.")
		fmt.Printf("Set one with: gfpint status --venue %q currently\n", venue.Name)
	}

	return nil
}

// statusCmd updates a venue's gluten free status
var statusCmd = &cobra.Command{
	Use:   "status <always_tap|always_bottle|currently|not_currently>",
	Short: "Update a venue's gluten free status",
	Long: `Set the gluten free availability status shown on a venue's page.

Requires a configured identity (see 'gfpint config set-user').
Status semantics are documented at ` + urls.StatusGuide + `.`,
	Example: `  # The venue always has GF beer on tap
  gfpint status --venue "The Crown" always_tap

  # GF beer available right now but not permanently
  gfpint status --venue "The Crown" currently`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, registry, err := loadClient()
	if err != nil {
		return err
	}

	if !registry.HasIdentity() {
		return fmt.Errorf("no identity configured. Run 'gfpint config set-user <user-id> [display-name]' first")
	}
	if venueQuery == "" {
		return fmt.Errorf("--venue is required")
	}

	status := args[0]
	switch status {
	case "always_tap", "always_bottle", "currently", "not_currently":
	default:
		return fmt.Errorf("invalid status %q (expected always_tap, always_bottle, currently or not_currently)", status)
	}

	venue, err := resolveVenue(client, venueQuery)
	if err != nil {
		return err
	}

	update := &api.StatusUpdate{
		VenueID:     venue.ID,
		Status:      status,
		UserID:      registry.Identity.UserID,
		SubmittedBy: registry.Identity.SubmittedBy,
	}
	if err := client.UpdateGFStatus(update); err != nil {
		return fmt.Errorf("status update failed: %w", err)
	}

	ui.NewPrinter(os.Stdout).PrintSuccess("Status updated", map[string]string{
		"Venue":  venue.Name,
		"Status": status,
	})
	return nil
}

// feedCmd streams live reports from other users
var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Follow the live report feed",
	Long: `Stream reports from other users as they come in.

The feed runs until interrupted (Ctrl+C) and reconnects automatically
with exponential backoff if the connection drops.`,
	Example: `  # Follow the live feed
  gfpint feed`,
	RunE: runFeed,
}

func runFeed(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Following live reports from %s (Ctrl+C to stop)...\n\n", registry.FeedURL())

	client := feed.NewClient(registry.FeedURL())
	err = client.Run(ctx, func(ev feed.Event) {
		fmt.Println(ev.Summary())
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// configCmd groups configuration subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage local configuration",
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetUserCmd)
	configCmd.AddCommand(configSetServerCmd)
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		path, _ := config.GetConfigPath()
		fmt.Printf("Config file: %s\n\n", path)
		fmt.Printf("Server:   %s\n", registry.BaseURL())
		fmt.Printf("Feed:     %s\n", registry.FeedURL())
		if registry.HasIdentity() {
			fmt.Printf("User:     %s", registry.Identity.UserID)
			if registry.Identity.SubmittedBy != "" {
				fmt.Printf(" (%s)", registry.Identity.SubmittedBy)
			}
			fmt.Println()
		} else {
			fmt.Println("User:     (not set)")
		}
		fmt.Printf("Debounce: %s\n", registry.DebounceInterval())
		if len(registry.Venues) > 0 {
			fmt.Printf("\nBookmarked venues: %d\n", len(registry.Venues))
			for id, v := range registry.Venues {
				line := fmt.Sprintf("  %s (%s)", v.Name, id)
				if !v.LastReport.IsZero() {
					line += fmt.Sprintf(", last report %s", v.LastReport.Format("2006-01-02"))
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}

var configSetUserCmd = &cobra.Command{
	Use:   "set-user <user-id> [display-name]",
	Short: "Set the identity attached to submitted reports",
	Example: `  gfpint config set-user a1b2c3
  gfpint config set-user a1b2c3 "Sam"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		submittedBy := ""
		if len(args) > 1 {
			submittedBy = args[1]
		}
		registry.SetIdentity(args[0], submittedBy)

		if err := registry.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Println("Identity saved.")
		return nil
	},
}

var configSetServerCmd = &cobra.Command{
	Use:   "set-server <base-url> [feed-url]",
	Short: "Set the backend endpoints",
	Example: `  gfpint config set-server https://gfpint.example.com
  gfpint config set-server https://gfpint.example.com wss://gfpint.example.com/ws/updates`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if registry.Server == nil {
			registry.Server = &config.ServerPrefs{}
		}
		registry.Server.BaseURL = args[0]
		if len(args) > 1 {
			registry.Server.FeedURL = args[1]
		}

		if err := registry.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Println("Server configuration saved.")
		return nil
	},
}

// resolveVenue turns a venue name into exactly one venue via the search API.
func resolveVenue(client *api.Client, query string) (*api.Venue, error) {
	venues, err := client.SearchVenues(query)
	if err != nil {
		return nil, fmt.Errorf("venue search failed: %w", err)
	}

	if len(venues) == 0 {
		return nil, fmt.Errorf("no venues match %q. Try 'gfpint venues' with a shorter query", query)
	}

	// An exact name match wins even when the search returns siblings.
	if len(venues) > 1 {
		for i := range venues {
			if strings.EqualFold(venues[i].Name, query) {
				return &venues[i], nil
			}
		}
		fmt.Printf("Found %d venues:\n", len(venues))
		for i, v := range venues {
			fmt.Printf("%d. %s\n", i+1, v.Summary())
		}
		return nil, fmt.Errorf("multiple venues match %q. Use the exact venue name", query)
	}

	return &venues[0], nil
}
