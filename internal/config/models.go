package config

import "time"

// Registry represents the entire user configuration file.
// This stores the user's identity, server settings, and venue bookmarks.
type Registry struct {
	Version     int               `yaml:"version"`
	Server      *ServerPrefs      `yaml:"server,omitempty"`
	Identity    *Identity         `yaml:"identity,omitempty"`
	Venues      map[string]*Venue `yaml:"venues,omitempty"` // Keyed by venue id
	Preferences *Preferences      `yaml:"preferences,omitempty"`
}

// ServerPrefs holds the backend endpoint configuration.
type ServerPrefs struct {
	BaseURL string `yaml:"base_url"`           // e.g. "https://gfpint.example.com"
	FeedURL string `yaml:"feed_url,omitempty"` // Websocket endpoint for the live feed
}

// Identity is the submitter identity attached to every beer report.
// Reports without a user id are rejected client-side before any network call.
type Identity struct {
	UserID      string `yaml:"user_id"`
	SubmittedBy string `yaml:"submitted_by,omitempty"` // Display name shown in the public feed
}

// Venue represents a bookmarked venue the user has reported against.
// This is purely client-side metadata - the canonical venue record lives server-side.
type Venue struct {
	Name       string    `yaml:"name"`
	Address    string    `yaml:"address,omitempty"`
	LastReport time.Time `yaml:"last_report,omitempty"` // When the user last filed a report here
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	DefaultFormat  string `yaml:"default_format,omitempty"` // Pre-selected serving format in the wizard
	DebounceMillis int    `yaml:"debounce_millis"`          // Suggestion debounce interval
	MaxSuggestions int    `yaml:"max_suggestions"`          // Dropdown result cap
}

// DefaultBaseURL is the production backend endpoint.
const DefaultBaseURL = "https://api.gfpint.com"

// DefaultFeedURL is the production live feed endpoint.
const DefaultFeedURL = "wss://api.gfpint.com/ws/updates"

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Server: &ServerPrefs{
			BaseURL: DefaultBaseURL,
			FeedURL: DefaultFeedURL,
		},
		Venues: make(map[string]*Venue),
		Preferences: &Preferences{
			DebounceMillis: 300,
			MaxSuggestions: 20,
		},
	}
}

// GetVenue retrieves venue metadata by id.
// Returns nil if the venue doesn't exist in the registry.
func (r *Registry) GetVenue(id string) *Venue {
	return r.Venues[id]
}

// EnsureVenue ensures a venue entry exists in the registry.
// If the venue doesn't exist, creates a new entry with the given name.
// Returns the venue entry (existing or newly created).
func (r *Registry) EnsureVenue(id, name string) *Venue {
	if r.Venues == nil {
		r.Venues = make(map[string]*Venue)
	}

	if venue, exists := r.Venues[id]; exists {
		if venue.Name == "" {
			venue.Name = name
		}
		return venue
	}

	venue := &Venue{Name: name}
	r.Venues[id] = venue
	return venue
}

// RecordReport updates the last-report timestamp for a venue.
func (r *Registry) RecordReport(id, name string) {
	venue := r.EnsureVenue(id, name)
	venue.LastReport = time.Now()
}

// SetIdentity sets the submitter identity used for reports.
func (r *Registry) SetIdentity(userID, submittedBy string) {
	r.Identity = &Identity{
		UserID:      userID,
		SubmittedBy: submittedBy,
	}
}

// HasIdentity reports whether a usable user id is configured.
func (r *Registry) HasIdentity() bool {
	return r.Identity != nil && r.Identity.UserID != ""
}

// BaseURL returns the configured backend endpoint, falling back to the default.
func (r *Registry) BaseURL() string {
	if r.Server != nil && r.Server.BaseURL != "" {
		return r.Server.BaseURL
	}
	return DefaultBaseURL
}

// FeedURL returns the configured live feed endpoint, falling back to the default.
func (r *Registry) FeedURL() string {
	if r.Server != nil && r.Server.FeedURL != "" {
		return r.Server.FeedURL
	}
	return DefaultFeedURL
}

// DebounceInterval returns the configured suggestion debounce interval.
func (r *Registry) DebounceInterval() time.Duration {
	if r.Preferences != nil && r.Preferences.DebounceMillis > 0 {
		return time.Duration(r.Preferences.DebounceMillis) * time.Millisecond
	}
	return 300 * time.Millisecond
}
