package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gfpint/gfpint/internal/api"
)

func newTestVenueModel() VenueModel {
	client := api.NewClient("http://127.0.0.1:0")
	client.SetRetry(0, time.Millisecond)
	return NewVenueModel(client, 10*time.Millisecond)
}

func updateVenue(t *testing.T, m VenueModel, msg tea.Msg) (VenueModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(VenueModel), cmd
}

func TestVenueTypingTriggersDebounce(t *testing.T) {
	m := newTestVenueModel()

	m, cmd := updateVenue(t, m, keyMsg("c"))
	if cmd == nil {
		t.Fatal("expected a debounce command after typing")
	}
	if m.Searching {
		t.Error("search should not start until the debounce fires")
	}
}

func TestVenueStaleDebounceIgnored(t *testing.T) {
	m := newTestVenueModel()

	m, _ = updateVenue(t, m, keyMsg("c"))
	staleSeq := m.debounce.seq
	m, _ = updateVenue(t, m, keyMsg("r")) // invalidates the first timer

	m, cmd := updateVenue(t, m, debounceFiredMsg{id: "venue", seq: staleSeq})
	if cmd != nil {
		t.Error("stale debounce firing must not start a search")
	}
	if m.Searching {
		t.Error("Searching set by a stale firing")
	}
}

func TestVenueCurrentDebounceStartsSearch(t *testing.T) {
	m := newTestVenueModel()

	m, _ = updateVenue(t, m, keyMsg("c"))
	m, cmd := updateVenue(t, m, debounceFiredMsg{id: "venue", seq: m.debounce.seq})
	if cmd == nil {
		t.Fatal("current debounce firing should start a search")
	}
	if !m.Searching {
		t.Error("Searching not set")
	}
}

func TestVenueEmptyQueryClearsResults(t *testing.T) {
	m := newTestVenueModel()
	m, _ = updateVenue(t, m, venueResultsMsg{
		venues: []api.Venue{{ID: "v-1", Name: "The Crown"}},
		seq:    m.debounce.seq,
	})
	if len(m.VenueList.Items()) != 1 {
		t.Fatalf("items = %d, want 1", len(m.VenueList.Items()))
	}

	m, _ = updateVenue(t, m, debounceFiredMsg{id: "venue", seq: m.debounce.seq})
	if len(m.VenueList.Items()) != 0 {
		t.Error("empty query should clear the result list")
	}
}

func TestVenueStaleResultsDropped(t *testing.T) {
	m := newTestVenueModel()

	m, _ = updateVenue(t, m, keyMsg("c"))
	staleSeq := m.debounce.seq
	m, _ = updateVenue(t, m, keyMsg("r"))

	m, _ = updateVenue(t, m, venueResultsMsg{
		venues: []api.Venue{{ID: "v-old", Name: "Old Result"}},
		seq:    staleSeq,
	})
	if len(m.VenueList.Items()) != 0 {
		t.Error("overtaken response should be dropped")
	}

	m, _ = updateVenue(t, m, venueResultsMsg{
		venues: []api.Venue{{ID: "v-new", Name: "New Result"}},
		seq:    m.debounce.seq,
	})
	if len(m.VenueList.Items()) != 1 {
		t.Fatal("current response should populate the list")
	}
	item := m.VenueList.Items()[0].(venueItem)
	if item.venue.ID != "v-new" {
		t.Errorf("venue = %q, want v-new", item.venue.ID)
	}
}

func TestVenueEnterSelects(t *testing.T) {
	m := newTestVenueModel()
	m, _ = updateVenue(t, m, venueResultsMsg{
		venues: []api.Venue{{ID: "v-1", Name: "The Crown", Address: "1 High St"}},
		seq:    m.debounce.seq,
	})

	m, _ = updateVenue(t, m, keyMsg("enter"))
	if !m.Selected {
		t.Fatal("enter on a result should mark the venue selected")
	}

	venue := m.GetSelectedVenue()
	if venue == nil || venue.ID != "v-1" {
		t.Fatalf("GetSelectedVenue = %+v, want v-1", venue)
	}
}

func TestVenueEnterWithoutResultsDoesNothing(t *testing.T) {
	m := newTestVenueModel()
	m, _ = updateVenue(t, m, keyMsg("enter"))
	if m.Selected {
		t.Error("enter with no results should not select")
	}
	if m.GetSelectedVenue() != nil {
		t.Error("GetSelectedVenue should be nil without a selection")
	}
}
