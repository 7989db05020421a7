package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/gfpint/gfpint/internal/logging"
)

const (
	// Time allowed to complete the websocket handshake
	dialTimeout = 10 * time.Second

	// Time allowed to read the next message or pong from the server
	pongWait = 60 * time.Second

	// Send pings to the server with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Time allowed to write a ping to the server
	writeWait = 10 * time.Second

	// Reconnect backoff ceiling
	maxReconnectDelay = 2 * time.Minute
)

// Event is a single live update pushed by the server: someone reported a
// gluten-free beer or changed a venue's status.
type Event struct {
	Type        string    `json:"type"`
	VenueID     string    `json:"venue_id"`
	VenueName   string    `json:"venue_name"`
	BeerName    string    `json:"beer_name,omitempty"`
	BreweryName string    `json:"brewery_name,omitempty"`
	Format      string    `json:"format,omitempty"`
	Status      string    `json:"status,omitempty"`
	SubmittedBy string    `json:"submitted_by,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Summary returns a one-line description of the event for display.
func (e Event) Summary() string {
	switch e.Type {
	case "status_change":
		return fmt.Sprintf("%s: GF status now %q", e.VenueName, e.Status)
	default:
		s := fmt.Sprintf("%s by %s reported at %s", e.BeerName, e.BreweryName, e.VenueName)
		if e.Format != "" {
			s += " (" + e.Format + ")"
		}
		return s
	}
}

// Handler receives each decoded feed event.
type Handler func(Event)

// Client maintains a websocket subscription to the live update feed,
// reconnecting with exponential backoff when the connection drops.
type Client struct {
	url    string
	dialer *websocket.Dialer
}

// NewClient creates a feed client for the given websocket URL.
func NewClient(url string) *Client {
	return &Client{
		url: url,
		dialer: &websocket.Dialer{
			HandshakeTimeout: dialTimeout,
		},
	}
}

// Run connects to the feed and calls handler for every event until the
// context is cancelled. Dropped connections are redialled with exponential
// backoff; the backoff resets after each successful connection.
func (c *Client) Run(ctx context.Context, handler Handler) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxInterval = maxReconnectDelay
	bo.MaxElapsedTime = 0 // keep retrying until the context is cancelled

	operation := func() error {
		if err := c.listen(ctx, handler, bo.Reset); err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			logging.Warn("Feed connection lost, reconnecting",
				zap.String("url", c.url),
				zap.Error(err),
			)
			return err
		}
		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(bo, ctx))
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// listen dials once and pumps events to the handler until the connection
// fails or the context is cancelled. onConnect fires after a successful
// dial so the caller can reset its reconnect backoff.
func (c *Client) listen(ctx context.Context, handler Handler, onConnect func()) error {
	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.url, err)
	}
	defer func() { _ = conn.Close() }()

	onConnect()
	logging.Info("Connected to live feed", zap.String("url", c.url))

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Close the connection when the context ends so ReadMessage unblocks
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	go pingLoop(conn, done)

	for {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			return err
		}
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read: %w", err)
		}

		var event Event
		if err := json.Unmarshal(data, &event); err != nil {
			logging.Warn("Skipping malformed feed event",
				zap.Error(err),
				zap.Int("length", len(data)),
			)
			continue
		}

		logging.LogFeedEvent(event.VenueName, event.BeerName, event.BreweryName)
		handler(event)
	}
}

func pingLoop(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			deadline := time.Now().Add(writeWait)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
