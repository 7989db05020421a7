package api

import (
	"fmt"
	"strconv"
	"strings"
)

// Venue represents a venue returned by GET /api/venues.
type Venue struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	GFStatus string `json:"gf_status,omitempty"` // e.g. "always_tap", "currently", "unknown"
}

// Beer represents a beer record returned by the search endpoints.
// BreweryName is only populated by the global search (GET /api/beers/search);
// the per-brewery listing omits it because the brewery is implied.
type Beer struct {
	Name        string  `json:"beer_name"`
	Style       string  `json:"style,omitempty"`
	ABV         float64 `json:"abv,omitempty"`
	BreweryName string  `json:"brewery_name,omitempty"`
}

// ABVString formats the ABV for display and form prefill.
// Returns "" for an unknown (zero) ABV.
func (b Beer) ABVString() string {
	if b.ABV == 0 {
		return ""
	}
	return strconv.FormatFloat(b.ABV, 'f', -1, 64)
}

// Submission is the payload for POST /api/submit_beer_update.
//
// BeerABV is a string because it carries the raw form input; the backend
// parses and validates it. SubmissionToken is a client-generated uuid that
// makes retries of the same report idempotent server-side.
type Submission struct {
	VenueID         string `json:"venue_id"`
	Format          string `json:"format"`
	BreweryName     string `json:"brewery_name"`
	BeerName        string `json:"beer_name"`
	BeerStyle       string `json:"beer_style,omitempty"`
	BeerABV         string `json:"beer_abv,omitempty"`
	UserID          string `json:"user_id"`
	SubmittedBy     string `json:"submitted_by,omitempty"`
	SubmissionToken string `json:"submission_token,omitempty"`
}

// Validate checks that the submission carries everything the backend requires.
func (s *Submission) Validate() error {
	if strings.TrimSpace(s.VenueID) == "" {
		return NewValidationError("venue is required")
	}
	if strings.TrimSpace(s.Format) == "" {
		return NewValidationError("serving format is required")
	}
	if strings.TrimSpace(s.BreweryName) == "" {
		return NewValidationError("brewery name is required")
	}
	if strings.TrimSpace(s.BeerName) == "" {
		return NewValidationError("beer name is required")
	}
	if strings.TrimSpace(s.UserID) == "" {
		return NewValidationError("not logged in - run 'gfpint config set-user' first")
	}
	if s.BeerABV != "" {
		abv, err := strconv.ParseFloat(s.BeerABV, 64)
		if err != nil {
			return NewValidationError(fmt.Sprintf("ABV %q is not a number", s.BeerABV))
		}
		if abv < 0 || abv > 25 {
			return NewValidationError(fmt.Sprintf("ABV %v%% is out of range", abv))
		}
	}
	return nil
}

// SubmitResponse is the backend's answer to a submission.
type SubmitResponse struct {
	Success          bool   `json:"success"`
	Error            string `json:"error,omitempty"`
	ShowStatusPrompt bool   `json:"show_status_prompt,omitempty"`
}

// StatusUpdate is the payload for POST /api/update_gf_status, the follow-up
// prompt after a successful report.
type StatusUpdate struct {
	VenueID     string `json:"venue_id"`
	Status      string `json:"status"` // "always_tap", "always_bottle", "currently", "not_currently"
	UserID      string `json:"user_id"`
	SubmittedBy string `json:"submitted_by,omitempty"`
}
