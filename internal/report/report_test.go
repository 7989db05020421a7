package report

import (
	"strings"
	"testing"

	"github.com/gfpint/gfpint/internal/api"
)

var testVenue = api.Venue{ID: "v-42", Name: "The Hop Inn", GFStatus: "currently"}

func TestNewStartsAtFormat(t *testing.T) {
	r := New(testVenue)
	if r.Step() != StepFormat {
		t.Errorf("Step = %v, want StepFormat", r.Step())
	}
	if r.Venue().ID != "v-42" {
		t.Errorf("Venue = %+v", r.Venue())
	}
	if r.KnowsBrewery() != AnswerUnknown {
		t.Errorf("KnowsBrewery = %v, want AnswerUnknown", r.KnowsBrewery())
	}
}

func TestSelectFormat(t *testing.T) {
	r := New(testVenue)

	if err := r.SelectFormat("growler"); err == nil {
		t.Error("invalid format accepted")
	}
	if r.Step() != StepFormat {
		t.Errorf("failed transition moved the step to %v", r.Step())
	}

	if err := r.SelectFormat("tap"); err != nil {
		t.Fatalf("SelectFormat: %v", err)
	}
	if r.Step() != StepBreweryQuestion {
		t.Errorf("Step = %v, want StepBreweryQuestion", r.Step())
	}
	if r.Format() != "tap" {
		t.Errorf("Format = %q", r.Format())
	}
}

func TestBreweryQuestionBranches(t *testing.T) {
	r := New(testVenue)
	mustFormat(t, r, "bottle")

	if err := r.AnswerKnowsBrewery(true); err != nil {
		t.Fatalf("AnswerKnowsBrewery: %v", err)
	}
	if r.Step() != StepBrewerySelect {
		t.Errorf("yes branch: Step = %v, want StepBrewerySelect", r.Step())
	}

	r = New(testVenue)
	mustFormat(t, r, "bottle")
	if err := r.AnswerKnowsBrewery(false); err != nil {
		t.Fatalf("AnswerKnowsBrewery: %v", err)
	}
	if r.Step() != StepBeerSearch {
		t.Errorf("no branch: Step = %v, want StepBeerSearch", r.Step())
	}
}

func TestKnownBreweryPath(t *testing.T) {
	r := New(testVenue)
	mustFormat(t, r, "tap")
	mustAnswer(t, r, true)

	if err := r.SelectBrewery("Bellfield", false); err != nil {
		t.Fatalf("SelectBrewery: %v", err)
	}
	if r.Step() != StepBeerSearch {
		t.Errorf("Step = %v, want StepBeerSearch", r.Step())
	}

	beer := api.Beer{Name: "Lawless Village IPA", Style: "IPA", ABV: 4.5}
	if err := r.SelectBeer(beer); err != nil {
		t.Fatalf("SelectBeer: %v", err)
	}
	if r.Step() != StepBeerDetails {
		t.Errorf("Step = %v, want StepBeerDetails", r.Step())
	}
	if r.Style() != "IPA" || r.ABV() != "4.5" {
		t.Errorf("details not prefilled: style=%q abv=%q", r.Style(), r.ABV())
	}
}

// Selecting a beer from the global search must set beer and brewery in
// one transition, never leaving a beer without its brewery.
func TestGlobalSearchSetsBreweryAtomically(t *testing.T) {
	r := New(testVenue)
	mustFormat(t, r, "can")
	mustAnswer(t, r, false)

	beer := api.Beer{Name: "Session Ale", Style: "Pale Ale", ABV: 3.8, BreweryName: "Vagabond"}
	if err := r.SelectBeer(beer); err != nil {
		t.Fatalf("SelectBeer: %v", err)
	}
	if r.Brewery() != "Vagabond" {
		t.Errorf("Brewery = %q, want set together with the beer", r.Brewery())
	}
	if r.BeerName() != "Session Ale" || r.Step() != StepBeerDetails {
		t.Errorf("beer=%q step=%v", r.BeerName(), r.Step())
	}
}

func TestGlobalSearchResultWithoutBreweryRejected(t *testing.T) {
	r := New(testVenue)
	mustFormat(t, r, "can")
	mustAnswer(t, r, false)

	if err := r.SelectBeer(api.Beer{Name: "Orphan Ale"}); err == nil {
		t.Error("result with no brewery accepted on the global path")
	}
	if r.Step() != StepBeerSearch {
		t.Errorf("failed selection moved the step to %v", r.Step())
	}
}

// Creating a new beer from the global search detours through brewery
// selection and carries the typed name into the details step.
func TestNewBeerDetoursThroughBrewerySelect(t *testing.T) {
	r := New(testVenue)
	mustFormat(t, r, "cask")
	mustAnswer(t, r, false)

	if err := r.StartNewBeer("Midnight Porter"); err != nil {
		t.Fatalf("StartNewBeer: %v", err)
	}
	if r.Step() != StepBrewerySelect {
		t.Fatalf("Step = %v, want StepBrewerySelect", r.Step())
	}
	if r.PendingBeerName() != "Midnight Porter" {
		t.Errorf("PendingBeerName = %q", r.PendingBeerName())
	}

	if err := r.SelectBrewery("Brass Castle", true); err != nil {
		t.Fatalf("SelectBrewery: %v", err)
	}
	if r.Step() != StepBeerDetails {
		t.Errorf("Step = %v, want StepBeerDetails", r.Step())
	}
	if r.BeerName() != "Midnight Porter" || !r.IsNewBeer() {
		t.Errorf("name=%q isNew=%v, want the typed name carried through", r.BeerName(), r.IsNewBeer())
	}
	if !r.IsNewBrewery() {
		t.Error("IsNewBrewery = false, want true")
	}
}

func TestNewBeerWithBreweryAlreadyChosen(t *testing.T) {
	r := New(testVenue)
	mustFormat(t, r, "tap")
	mustAnswer(t, r, true)
	if err := r.SelectBrewery("Bellfield", false); err != nil {
		t.Fatalf("SelectBrewery: %v", err)
	}

	if err := r.StartNewBeer("Dry Stout"); err != nil {
		t.Fatalf("StartNewBeer: %v", err)
	}
	if r.Step() != StepBeerDetails {
		t.Errorf("Step = %v, want StepBeerDetails with no detour", r.Step())
	}
	if r.PendingBeerName() != "" {
		t.Errorf("PendingBeerName = %q, want empty", r.PendingBeerName())
	}
}

func TestSubmissionPayload(t *testing.T) {
	r := completedReport(t)
	if err := r.SetDetails("Lawless Village IPA", "IPA", "4.5"); err != nil {
		t.Fatalf("SetDetails: %v", err)
	}

	sub, err := r.Submission("u-1", "alex")
	if err != nil {
		t.Fatalf("Submission: %v", err)
	}
	if sub.VenueID != "v-42" || sub.Format != "tap" {
		t.Errorf("payload = %+v", sub)
	}
	if sub.BreweryName != "Bellfield" || sub.BeerName != "Lawless Village IPA" {
		t.Errorf("payload = %+v", sub)
	}
	if sub.UserID != "u-1" || sub.SubmittedBy != "alex" {
		t.Errorf("identity = %q/%q", sub.UserID, sub.SubmittedBy)
	}
}

// Building a submission must not change the report, so a failed POST can
// be retried without re-entering anything.
func TestSubmissionLeavesReportIntact(t *testing.T) {
	r := completedReport(t)

	first, err := r.Submission("u-1", "alex")
	if err != nil {
		t.Fatalf("Submission: %v", err)
	}
	if r.Step() != StepBeerDetails || !r.CanSubmit() {
		t.Fatalf("report mutated: step=%v", r.Step())
	}

	second, err := r.Submission("u-1", "alex")
	if err != nil {
		t.Fatalf("retry Submission: %v", err)
	}
	if *first != *second {
		t.Errorf("retry payload differs:\n%+v\n%+v", first, second)
	}
}

func TestSubmissionIncomplete(t *testing.T) {
	r := New(testVenue)
	if _, err := r.Submission("u-1", "alex"); err == nil {
		t.Error("incomplete report produced a submission")
	}
	if r.CanSubmit() {
		t.Error("CanSubmit = true at the format step")
	}
}

func TestBack(t *testing.T) {
	r := New(testVenue)
	mustFormat(t, r, "tap")
	mustAnswer(t, r, true)

	r.Back()
	if r.Step() != StepBreweryQuestion {
		t.Errorf("Step = %v, want StepBreweryQuestion", r.Step())
	}
	r.Back()
	if r.Step() != StepFormat {
		t.Errorf("Step = %v, want StepFormat", r.Step())
	}
	if r.Format() != "tap" {
		t.Errorf("Back dropped the format: %q", r.Format())
	}
	r.Back() // already at the first step
	if r.Step() != StepFormat {
		t.Errorf("Back at the first step moved to %v", r.Step())
	}
}

func TestBackFromBreweryDetour(t *testing.T) {
	r := New(testVenue)
	mustFormat(t, r, "tap")
	mustAnswer(t, r, false)
	if err := r.StartNewBeer("Midnight Porter"); err != nil {
		t.Fatalf("StartNewBeer: %v", err)
	}

	r.Back()
	if r.Step() != StepBeerSearch {
		t.Errorf("Step = %v, want back at the global beer search", r.Step())
	}
}

func TestReset(t *testing.T) {
	r := completedReport(t)
	r.Reset()

	if r.Step() != StepFormat {
		t.Errorf("Step = %v, want StepFormat", r.Step())
	}
	if r.Format() != "" || r.Brewery() != "" || r.BeerName() != "" {
		t.Errorf("Reset left values behind: %q %q %q", r.Format(), r.Brewery(), r.BeerName())
	}
	if r.Venue().ID != "v-42" {
		t.Errorf("Reset dropped the venue: %+v", r.Venue())
	}
}

func TestStepString(t *testing.T) {
	for _, s := range []Step{StepFormat, StepBreweryQuestion, StepBrewerySelect, StepBeerSearch, StepBeerDetails} {
		if strings.HasPrefix(s.String(), "step(") {
			t.Errorf("missing name for step %d", int(s))
		}
	}
}

func TestKeykegWireValue(t *testing.T) {
	r := New(testVenue)
	mustFormat(t, r, "keg-keykeg")
	mustAnswer(t, r, true)
	if err := r.SelectBrewery("Bellfield", false); err != nil {
		t.Fatalf("SelectBrewery: %v", err)
	}
	if err := r.SelectBeer(api.Beer{Name: "Lawless Village IPA"}); err != nil {
		t.Fatalf("SelectBeer: %v", err)
	}

	sub, err := r.Submission("u-1", "alex")
	if err != nil {
		t.Fatalf("Submission: %v", err)
	}
	if sub.Format != "keg-keykeg" {
		t.Errorf("Format = %q, want keg-keykeg on the wire", sub.Format)
	}
}

func TestFormatLabel(t *testing.T) {
	if got := FormatLabel("keg-keykeg"); got != "keg" {
		t.Errorf("FormatLabel(keg-keykeg) = %q, want keg", got)
	}
	if got := FormatLabel("cask"); got != "cask" {
		t.Errorf("FormatLabel(cask) = %q, want cask", got)
	}
	if IsValidFormat("keg") {
		t.Error("bare \"keg\" is a display label, not a wire value")
	}
}

func mustFormat(t *testing.T, r *Report, format string) {
	t.Helper()
	if err := r.SelectFormat(format); err != nil {
		t.Fatalf("SelectFormat(%q): %v", format, err)
	}
}

func mustAnswer(t *testing.T, r *Report, knows bool) {
	t.Helper()
	if err := r.AnswerKnowsBrewery(knows); err != nil {
		t.Fatalf("AnswerKnowsBrewery(%v): %v", knows, err)
	}
}

func completedReport(t *testing.T) *Report {
	t.Helper()
	r := New(testVenue)
	mustFormat(t, r, "tap")
	mustAnswer(t, r, true)
	if err := r.SelectBrewery("Bellfield", false); err != nil {
		t.Fatalf("SelectBrewery: %v", err)
	}
	if err := r.SelectBeer(api.Beer{Name: "Lawless Village IPA", Style: "IPA", ABV: 4.5}); err != nil {
		t.Fatalf("SelectBeer: %v", err)
	}
	return r
}
