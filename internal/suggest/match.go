package suggest

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/sahilm/fuzzy"
)

const (
	// MaxResults caps the suggestion dropdown size
	MaxResults = 20

	// wholePrefixMaxDist is the edit-distance budget against the whole
	// candidate prefix (catches missing spaces and fat-fingered typos)
	wholePrefixMaxDist = 2

	// wordPrefixMaxDist is the stricter budget against individual word prefixes
	wordPrefixMaxDist = 1
)

// corrections maps a few known common misspellings to canonical brewery
// names. Corrected matches are pinned to the top of the result list.
var corrections = map[string]string{
	"belfield":    "Bellfield",
	"bellfields":  "Bellfield",
	"brewdog":     "BrewDog",
	"greens":      "Green's",
	"jumpship":    "Jump Ship",
	"firstchop":   "First Chop",
	"brasscastle": "Brass Castle",
	"abbydale":    "Abbeydale",
}

// normalize lowercases and trims a query or candidate for comparison.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// squash removes spaces and apostrophes so "first chop" and "firstchop"
// hit the same correction-table key.
func squash(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "'", "")
}

// prefixDistance returns the smallest edit distance between the query and a
// prefix of the candidate, considering prefixes one rune shorter and longer
// than the query so a single missing or extra character still lines up.
func prefixDistance(query, candidate string) int {
	qr := []rune(query)
	cr := []rune(candidate)

	best := -1
	for _, w := range []int{len(qr) - 1, len(qr), len(qr) + 1} {
		if w < 1 {
			continue
		}
		if w > len(cr) {
			w = len(cr)
		}
		d := levenshtein.ComputeDistance(query, string(cr[:w]))
		if best == -1 || d < best {
			best = d
		}
	}
	if best == -1 {
		return len(qr)
	}
	return best
}

// nearMatch reports whether the candidate is a near-typo of the query:
// within wholePrefixMaxDist of the candidate's whole-string prefix, or
// within wordPrefixMaxDist of any individual word's prefix.
func nearMatch(query, candidate string) bool {
	if prefixDistance(query, candidate) <= wholePrefixMaxDist {
		return true
	}
	for _, word := range strings.Fields(candidate) {
		if prefixDistance(query, word) <= wordPrefixMaxDist {
			return true
		}
	}
	return false
}

// Match ranks candidates against a free-text query.
//
// The result always includes exact case-insensitive substring matches
// (ranked by fuzzy score), preceded by any correction-table hit, followed
// by bounded edit-distance near-typos. Results are de-duplicated and
// capped at MaxResults. An empty query returns the candidates as-is
// (capped) - the default list shown on focus.
func Match(candidates []string, query string) []string {
	qn := normalize(query)

	if qn == "" {
		if len(candidates) > MaxResults {
			return candidates[:MaxResults]
		}
		return candidates
	}

	results := make([]string, 0, MaxResults)
	seen := make(map[string]bool)
	add := func(c string) {
		key := normalize(c)
		if !seen[key] && len(results) < MaxResults {
			seen[key] = true
			results = append(results, c)
		}
	}

	// 1. Correction-table hit, pinned first
	if canonical, ok := corrections[squash(qn)]; ok {
		for _, c := range candidates {
			if strings.EqualFold(c, canonical) {
				add(c)
				break
			}
		}
	}

	// 2. Substring matches, ranked by fuzzy score
	var substr []string
	for _, c := range candidates {
		if strings.Contains(normalize(c), qn) {
			substr = append(substr, c)
		}
	}
	for _, m := range fuzzy.Find(qn, substr) {
		add(m.Str)
	}

	// 3. Near-typos within the edit-distance budget
	for _, c := range candidates {
		if nearMatch(qn, normalize(c)) {
			add(c)
		}
	}

	return results
}

// HasExact reports whether any candidate equals the query case-insensitively.
// Used to decide whether a "create new" row is offered.
func HasExact(candidates []string, query string) bool {
	qn := normalize(query)
	for _, c := range candidates {
		if normalize(c) == qn {
			return true
		}
	}
	return false
}
