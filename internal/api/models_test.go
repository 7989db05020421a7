package api

import (
	"encoding/json"
	"testing"
)

func TestSubmissionValidate(t *testing.T) {
	valid := func() *Submission {
		return &Submission{
			VenueID:     "1182",
			Format:      "tap",
			BreweryName: "Bellfield",
			BeerName:    "Lawless Village IPA",
			UserID:      "u-42",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Submission)
		wantErr bool
	}{
		{"complete submission", func(s *Submission) {}, false},
		{"missing venue", func(s *Submission) { s.VenueID = "" }, true},
		{"missing format", func(s *Submission) { s.Format = "" }, true},
		{"missing brewery", func(s *Submission) { s.BreweryName = "" }, true},
		{"whitespace brewery", func(s *Submission) { s.BreweryName = "  " }, true},
		{"missing beer name", func(s *Submission) { s.BeerName = "" }, true},
		{"missing user id", func(s *Submission) { s.UserID = "" }, true},
		{"valid abv", func(s *Submission) { s.BeerABV = "4.5" }, false},
		{"non-numeric abv", func(s *Submission) { s.BeerABV = "four" }, true},
		{"negative abv", func(s *Submission) { s.BeerABV = "-1" }, true},
		{"absurd abv", func(s *Submission) { s.BeerABV = "90" }, true},
		{"empty abv allowed", func(s *Submission) { s.BeerABV = "" }, false},
		{"style optional", func(s *Submission) { s.BeerStyle = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := valid()
			tt.mutate(sub)
			err := sub.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !IsValidationError(err) {
				t.Errorf("Validate() should return a validation error, got %T", err)
			}
		})
	}
}

func TestBeerJSONFieldNames(t *testing.T) {
	data := []byte(`{"beer_name":"Haze","style":"Pale","abv":4.0,"brewery_name":"Brass Castle"}`)

	var beer Beer
	if err := json.Unmarshal(data, &beer); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if beer.Name != "Haze" || beer.BreweryName != "Brass Castle" {
		t.Errorf("Beer = %+v", beer)
	}
}

func TestBeerABVString(t *testing.T) {
	tests := []struct {
		abv  float64
		want string
	}{
		{4.5, "4.5"},
		{5, "5"},
		{3.85, "3.85"},
		{0, ""},
	}

	for _, tt := range tests {
		beer := Beer{ABV: tt.abv}
		if got := beer.ABVString(); got != tt.want {
			t.Errorf("ABVString(%v) = %q, want %q", tt.abv, got, tt.want)
		}
	}
}

func TestVenueStatusLabel(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"always_tap", "Always (tap)"},
		{"currently", "Currently available"},
		{"", "Unknown"},
		{"custom_status", "custom_status"},
	}

	for _, tt := range tests {
		v := Venue{GFStatus: tt.status}
		if got := v.StatusLabel(); got != tt.want {
			t.Errorf("StatusLabel(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestSubmissionSummary(t *testing.T) {
	sub := &Submission{
		Format:      "tap",
		BreweryName: "Bellfield",
		BeerName:    "Lawless Village IPA",
		BeerStyle:   "IPA",
		BeerABV:     "4.5",
	}

	want := "Lawless Village IPA by Bellfield (IPA, 4.5%) on tap"
	if got := sub.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}

	bare := &Submission{Format: "can", BreweryName: "First Chop", BeerName: "POD"}
	want = "POD by First Chop on can"
	if got := bare.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}
