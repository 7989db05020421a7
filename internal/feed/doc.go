// Package feed subscribes to the server's live update websocket: new beer
// reports and venue status changes pushed as JSON events. The client
// redials dropped connections with exponential backoff and keeps the
// connection alive with periodic pings.
package feed
