package suggest

import (
	"fmt"

	"github.com/gfpint/gfpint/internal/api"
)

// Suggestion is a single dropdown row. Exactly one of Brewery or Beer is
// populated for existing entries; IsNew rows carry the raw query so the
// wizard can branch into the create-new flow.
type Suggestion struct {
	Label   string
	Brewery string
	Beer    *api.Beer
	IsNew   bool
}

// List is a rendered suggestion dropdown: a header line plus rows.
type List struct {
	Header string
	Items  []Suggestion
	Query  string
}

// Len returns the number of selectable rows.
func (l List) Len() int { return len(l.Items) }

func header(n int) string {
	if n == 1 {
		return "1 match"
	}
	return fmt.Sprintf("%d matches", n)
}

// Breweries builds the dropdown for a brewery query. Matching existing
// breweries come first; when the query names no existing brewery exactly,
// a create-new row is appended so unknown breweries can still be reported.
func Breweries(candidates []string, query string) List {
	matched := Match(candidates, query)

	items := make([]Suggestion, 0, len(matched)+1)
	for _, name := range matched {
		items = append(items, Suggestion{Label: name, Brewery: name})
	}

	if query != "" && !HasExact(candidates, query) {
		items = append(items, Suggestion{
			Label: fmt.Sprintf("Add %q as a new brewery", query),
			IsNew: true,
		})
	}

	return List{Header: header(len(matched)), Items: items, Query: query}
}

// Beers builds the dropdown for a beer-name query over server search
// results. Rows are de-duplicated by beer and brewery name, and a
// create-new row is appended when no result matches the query exactly.
func Beers(beers []api.Beer, query string) List {
	names := make([]string, 0, len(beers))
	byName := make(map[string][]api.Beer, len(beers))
	for _, b := range beers {
		key := normalize(b.Name)
		if _, ok := byName[key]; !ok {
			names = append(names, b.Name)
		}
		byName[key] = append(byName[key], b)
	}

	matched := Match(names, query)

	items := make([]Suggestion, 0, len(matched)+1)
	seen := make(map[string]bool)
	count := 0
	for _, name := range matched {
		for _, b := range byName[normalize(name)] {
			key := normalize(b.Name) + "\x00" + normalize(b.BreweryName)
			if seen[key] {
				continue
			}
			seen[key] = true
			beer := b
			items = append(items, Suggestion{Label: beer.Summary(), Beer: &beer})
			count++
		}
	}

	if query != "" && !HasExact(names, query) {
		items = append(items, Suggestion{
			Label: fmt.Sprintf("Add %q as a new beer", query),
			IsNew: true,
		})
	}

	return List{Header: header(count), Items: items, Query: query}
}
