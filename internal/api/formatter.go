package api

import (
	"fmt"
	"strings"
)

// GFStatusLabel maps backend gf_status identifiers to display text.
var GFStatusLabel = map[string]string{
	"always_tap":    "Always (tap)",
	"always_bottle": "Always (bottled)",
	"currently":     "Currently available",
	"not_currently": "Not currently",
	"unknown":       "Unknown",
}

// StatusLabel returns the display text for the venue's gluten-free status.
func (v Venue) StatusLabel() string {
	if label, ok := GFStatusLabel[v.GFStatus]; ok {
		return label
	}
	if v.GFStatus == "" {
		return "Unknown"
	}
	return v.GFStatus
}

// Summary returns a one-line summary of the venue
func (v Venue) Summary() string {
	if v.Address == "" {
		return fmt.Sprintf("%s [%s]", v.Name, v.StatusLabel())
	}
	return fmt.Sprintf("%s - %s [%s]", v.Name, v.Address, v.StatusLabel())
}

// FormatDetailed returns a multi-line block describing the venue
func (v Venue) FormatDetailed() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Venue:     %s\n", v.Name))
	if v.Address != "" {
		b.WriteString(fmt.Sprintf("Address:   %s\n", v.Address))
	}
	b.WriteString(fmt.Sprintf("GF beer:   %s\n", v.StatusLabel()))
	b.WriteString(fmt.Sprintf("Venue ID:  %s\n", v.ID))

	return b.String()
}

// Summary returns a one-line summary of the beer
func (b Beer) Summary() string {
	parts := []string{b.Name}
	if b.BreweryName != "" {
		parts = append(parts, "("+b.BreweryName+")")
	}
	if b.Style != "" {
		parts = append(parts, "- "+b.Style)
	}
	if b.ABV > 0 {
		parts = append(parts, fmt.Sprintf("%s%%", b.ABVString()))
	}
	return strings.Join(parts, " ")
}

// FormatDetailed returns a multi-line block describing the beer
func (b Beer) FormatDetailed() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Beer:     %s\n", b.Name))
	if b.BreweryName != "" {
		sb.WriteString(fmt.Sprintf("Brewery:  %s\n", b.BreweryName))
	}
	if b.Style != "" {
		sb.WriteString(fmt.Sprintf("Style:    %s\n", b.Style))
	}
	if b.ABV > 0 {
		sb.WriteString(fmt.Sprintf("ABV:      %s%%\n", b.ABVString()))
	}

	return sb.String()
}

// FormatCompact returns a compact single-line per-beer format for lists
func (b Beer) FormatCompact() string {
	style := b.Style
	if style == "" {
		style = "?"
	}
	abv := b.ABVString()
	if abv == "" {
		abv = "?"
	}
	return fmt.Sprintf("%-30s %-18s %s%%", b.Name, style, abv)
}

// Summary returns a one-line description of the submission for confirmation prompts
func (s *Submission) Summary() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s by %s", s.BeerName, s.BreweryName))
	if s.BeerStyle != "" {
		b.WriteString(" (" + s.BeerStyle)
		if s.BeerABV != "" {
			b.WriteString(", " + s.BeerABV + "%")
		}
		b.WriteString(")")
	} else if s.BeerABV != "" {
		b.WriteString(" (" + s.BeerABV + "%)")
	}
	b.WriteString(" on " + s.Format)

	return b.String()
}
