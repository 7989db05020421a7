package report

import (
	"fmt"

	"github.com/gfpint/gfpint/internal/api"
)

// Step identifies the wizard step a report is currently on.
type Step int

const (
	StepFormat Step = iota
	StepBreweryQuestion
	StepBrewerySelect
	StepBeerSearch
	StepBeerDetails
)

// String returns the step name for logging and errors.
func (s Step) String() string {
	switch s {
	case StepFormat:
		return "format"
	case StepBreweryQuestion:
		return "brewery question"
	case StepBrewerySelect:
		return "brewery select"
	case StepBeerSearch:
		return "beer search"
	case StepBeerDetails:
		return "beer details"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Answer is the tri-state reply to "do you know the brewery?". It starts
// unanswered so the wizard can distinguish "not asked yet" from "no".
type Answer int

const (
	AnswerUnknown Answer = iota
	AnswerYes
	AnswerNo
)

// Formats lists the serving formats a beer can be reported in, in display
// order. These are the wire values the backend expects; keykeg dispense is
// reported as "keg-keykeg" even though it is shown to the user as "keg".
var Formats = []string{"tap", "cask", "bottle", "can", "keg-keykeg"}

// IsValidFormat reports whether f is one of Formats.
func IsValidFormat(f string) bool {
	for _, v := range Formats {
		if v == f {
			return true
		}
	}
	return false
}

// FormatLabel returns the user-facing label for a wire format value.
func FormatLabel(f string) string {
	if f == "keg-keykeg" {
		return "keg"
	}
	return f
}

// Report is the in-progress state of a single beer report. It is a plain
// value with no I/O: the TUI drives it with the Select* transitions and
// reads Step to decide what to render. A failed submission leaves the
// Report untouched so the user can retry without re-entering anything.
type Report struct {
	venue api.Venue
	step  Step

	format       string
	knowsBrewery Answer

	brewery    string
	newBrewery bool

	beerName string
	style    string
	abv      string
	newBeer  bool

	// pendingBeerName carries the typed beer name across the detour into
	// brewery selection when a new beer is created from the global search
	pendingBeerName string

	history []Step
}

// New starts a report for the given venue at the format step.
func New(venue api.Venue) *Report {
	return &Report{venue: venue, step: StepFormat}
}

// Venue returns the venue the report is for.
func (r *Report) Venue() api.Venue { return r.venue }

// Step returns the current wizard step.
func (r *Report) Step() Step { return r.step }

// Format returns the selected serving format, or "" before StepFormat completes.
func (r *Report) Format() string { return r.format }

// Brewery returns the selected brewery name, or "" if none chosen yet.
func (r *Report) Brewery() string { return r.brewery }

// IsNewBrewery reports whether the brewery was created rather than selected.
func (r *Report) IsNewBrewery() bool { return r.newBrewery }

// BeerName returns the beer name entered or selected so far.
func (r *Report) BeerName() string { return r.beerName }

// Style returns the beer style, prefilled from a selected beer or entered by hand.
func (r *Report) Style() string { return r.style }

// ABV returns the ABV as entered, still unparsed.
func (r *Report) ABV() string { return r.abv }

// IsNewBeer reports whether the beer was created rather than selected.
func (r *Report) IsNewBeer() bool { return r.newBeer }

// PendingBeerName returns the beer name typed before the brewery detour, if any.
func (r *Report) PendingBeerName() string { return r.pendingBeerName }

func (r *Report) advance(to Step) {
	r.history = append(r.history, r.step)
	r.step = to
}

// Back returns to the previous step. Entered values are kept so going
// forward again does not lose work. At the first step it is a no-op.
func (r *Report) Back() {
	if len(r.history) == 0 {
		return
	}
	r.step = r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
}

// SelectFormat records the serving format and moves to the brewery question.
func (r *Report) SelectFormat(format string) error {
	if r.step != StepFormat {
		return fmt.Errorf("cannot select format at the %s step", r.step)
	}
	if !IsValidFormat(format) {
		return fmt.Errorf("unknown format %q", format)
	}
	r.format = format
	r.advance(StepBreweryQuestion)
	return nil
}

// AnswerKnowsBrewery records whether the user knows the brewery and
// branches: yes goes to brewery selection, no goes straight to the
// global beer search.
func (r *Report) AnswerKnowsBrewery(knows bool) error {
	if r.step != StepBreweryQuestion {
		return fmt.Errorf("cannot answer the brewery question at the %s step", r.step)
	}
	if knows {
		r.knowsBrewery = AnswerYes
		r.advance(StepBrewerySelect)
	} else {
		r.knowsBrewery = AnswerNo
		r.advance(StepBeerSearch)
	}
	return nil
}

// KnowsBrewery returns the recorded answer to the brewery question.
func (r *Report) KnowsBrewery() Answer { return r.knowsBrewery }

// SelectBrewery records the brewery. When a beer name is pending from the
// global search detour the wizard skips straight to the details step;
// otherwise it moves on to searching that brewery's beers.
func (r *Report) SelectBrewery(name string, isNew bool) error {
	if r.step != StepBrewerySelect {
		return fmt.Errorf("cannot select a brewery at the %s step", r.step)
	}
	if name == "" {
		return fmt.Errorf("brewery name is required")
	}
	r.brewery = name
	r.newBrewery = isNew

	if r.pendingBeerName != "" {
		r.beerName = r.pendingBeerName
		r.newBeer = true
		r.pendingBeerName = ""
		r.advance(StepBeerDetails)
	} else {
		r.advance(StepBeerSearch)
	}
	return nil
}

// SelectBeer records an existing beer from the search results and moves to
// the details step with style and ABV prefilled. When the result carries a
// brewery name (the global search path) the brewery is set in the same
// transition, so the report is never left with a beer but no brewery.
func (r *Report) SelectBeer(beer api.Beer) error {
	if r.step != StepBeerSearch {
		return fmt.Errorf("cannot select a beer at the %s step", r.step)
	}
	if beer.Name == "" {
		return fmt.Errorf("beer name is required")
	}
	if beer.BreweryName != "" {
		r.brewery = beer.BreweryName
		r.newBrewery = false
	}
	if r.brewery == "" {
		return fmt.Errorf("search result for %q has no brewery", beer.Name)
	}
	r.beerName = beer.Name
	r.style = beer.Style
	if beer.ABV > 0 {
		r.abv = beer.ABVString()
	}
	r.newBeer = false
	r.advance(StepBeerDetails)
	return nil
}

// StartNewBeer begins reporting a beer the server does not know. With a
// brewery already selected it goes straight to the details step; from the
// global search it detours through brewery selection first, carrying the
// typed name along.
func (r *Report) StartNewBeer(name string) error {
	if r.step != StepBeerSearch {
		return fmt.Errorf("cannot create a beer at the %s step", r.step)
	}
	if name == "" {
		return fmt.Errorf("beer name is required")
	}
	if r.brewery != "" {
		r.beerName = name
		r.newBeer = true
		r.advance(StepBeerDetails)
	} else {
		r.pendingBeerName = name
		r.advance(StepBrewerySelect)
	}
	return nil
}

// SetDetails records the editable fields of the details step. The beer
// name may be corrected here; style and ABV are optional.
func (r *Report) SetDetails(name, style, abv string) error {
	if r.step != StepBeerDetails {
		return fmt.Errorf("cannot edit details at the %s step", r.step)
	}
	if name == "" {
		return fmt.Errorf("beer name is required")
	}
	r.beerName = name
	r.style = style
	r.abv = abv
	return nil
}

// CanSubmit reports whether the report has everything a submission needs.
func (r *Report) CanSubmit() bool {
	return r.step == StepBeerDetails &&
		r.format != "" &&
		r.brewery != "" &&
		r.beerName != ""
}

// Submission builds the API payload for the completed report. It does not
// modify the report, so a failed POST can be retried with identical state.
func (r *Report) Submission(userID, submittedBy string) (*api.Submission, error) {
	if !r.CanSubmit() {
		return nil, fmt.Errorf("report is incomplete at the %s step", r.step)
	}
	return &api.Submission{
		VenueID:     r.venue.ID,
		Format:      r.format,
		BreweryName: r.brewery,
		BeerName:    r.beerName,
		BeerStyle:   r.style,
		BeerABV:     r.abv,
		UserID:      userID,
		SubmittedBy: submittedBy,
	}, nil
}

// Reset clears everything except the venue and returns to the format step.
func (r *Report) Reset() {
	*r = Report{venue: r.venue, step: StepFormat}
}
