package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{}

// feedServer serves a websocket endpoint that sends each payload in turn,
// then keeps the connection open until the client goes away.
func feedServer(t *testing.T, payloads []string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer func() { _ = conn.Close() }()

		for _, p := range payloads {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(p)); err != nil {
				return
			}
		}
		// hold the connection open; ReadMessage returns when the client closes
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func wsURL(s *httptest.Server) string {
	return "ws" + strings.TrimPrefix(s.URL, "http")
}

func TestRunReceivesEvents(t *testing.T) {
	server := feedServer(t, []string{
		`{"type":"beer_report","venue_id":"v-1","venue_name":"The Hop Inn","beer_name":"Lawless Village IPA","brewery_name":"Bellfield","format":"tap"}`,
		`{"type":"status_change","venue_id":"v-2","venue_name":"Crafty Fox","status":"currently"}`,
	})
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events := make(chan Event, 2)
	go func() {
		_ = NewClient(wsURL(server)).Run(ctx, func(e Event) {
			events <- e
			if len(events) == cap(events) {
				cancel()
			}
		})
	}()

	first := waitEvent(t, events)
	if first.Type != "beer_report" || first.BeerName != "Lawless Village IPA" {
		t.Errorf("first event = %+v", first)
	}
	second := waitEvent(t, events)
	if second.Type != "status_change" || second.Status != "currently" {
		t.Errorf("second event = %+v", second)
	}
}

func TestRunSkipsMalformedEvents(t *testing.T) {
	server := feedServer(t, []string{
		`{not json`,
		`{"type":"beer_report","venue_id":"v-1","venue_name":"The Hop Inn","beer_name":"Session Ale","brewery_name":"Vagabond"}`,
	})
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events := make(chan Event, 1)
	go func() {
		_ = NewClient(wsURL(server)).Run(ctx, func(e Event) {
			events <- e
			cancel()
		})
	}()

	got := waitEvent(t, events)
	if got.BeerName != "Session Ale" {
		t.Errorf("event after malformed payload = %+v, want the valid one", got)
	}
}

func TestRunReconnects(t *testing.T) {
	connects := make(chan struct{}, 4)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		connects <- struct{}{}
		// drop the connection immediately to force a redial
		_ = conn.Close()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	go func() {
		_ = NewClient(wsURL(server)).Run(ctx, func(Event) {})
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-connects:
		case <-ctx.Done():
			t.Fatalf("saw %d connections before timeout, want at least 2", i)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	server := feedServer(t, nil)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewClient(wsURL(server)).Run(ctx, func(Event) {})
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestEventSummary(t *testing.T) {
	report := Event{Type: "beer_report", VenueName: "The Hop Inn", BeerName: "Session Ale", BreweryName: "Vagabond", Format: "can"}
	if got := report.Summary(); !strings.Contains(got, "Session Ale") || !strings.Contains(got, "(can)") {
		t.Errorf("Summary = %q", got)
	}

	status := Event{Type: "status_change", VenueName: "Crafty Fox", Status: "not_currently"}
	if got := status.Summary(); !strings.Contains(got, "Crafty Fox") {
		t.Errorf("Summary = %q", got)
	}
}

func waitEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for feed event")
		return Event{}
	}
}
