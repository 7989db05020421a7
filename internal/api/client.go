package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gfpint/gfpint/internal/logging"
	"github.com/gfpint/gfpint/internal/version"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second

	// DefaultMaxRetries is the default number of retry attempts for failed requests
	DefaultMaxRetries = 3

	// DefaultRetryDelay is the default delay between retry attempts
	DefaultRetryDelay = 1 * time.Second

	// DefaultMaxRetryDelay is the maximum delay for exponential backoff
	DefaultMaxRetryDelay = 30 * time.Second

	// DefaultCacheDuration is how long the default brewery list stays fresh
	DefaultCacheDuration = 30 * time.Second

	// MinBeerQueryLen is the minimum query length for the global beer search.
	// Shorter queries return no results without touching the network.
	MinBeerQueryLen = 2
)

// Client is the HTTP client for the gfpint backend API.
type Client struct {
	// BaseURL is the backend endpoint (e.g. "https://api.gfpint.com")
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// MaxRetries is the maximum number of retry attempts for failed requests
	MaxRetries int

	// RetryDelay is the initial delay between retry attempts
	RetryDelay time.Duration

	// MaxRetryDelay is the maximum delay for exponential backoff
	MaxRetryDelay time.Duration

	// UseExponentialBackoff enables exponential backoff for retries
	UseExponentialBackoff bool

	// CacheDuration is how long to cache the default brewery list (0 = no cache)
	CacheDuration time.Duration

	// cachedBreweries is the cached default brewery list (empty-query result)
	cachedBreweries []string

	// cacheTime is when the cache was last updated
	cacheTime time.Time

	// cacheMutex protects the cache fields
	cacheMutex sync.RWMutex
}

// NewClient creates a new API client for the given backend endpoint.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:               strings.TrimRight(baseURL, "/"),
		HTTPClient:            &http.Client{Timeout: DefaultTimeout},
		MaxRetries:            DefaultMaxRetries,
		RetryDelay:            DefaultRetryDelay,
		MaxRetryDelay:         DefaultMaxRetryDelay,
		UseExponentialBackoff: true,
		CacheDuration:         DefaultCacheDuration,
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// SetRetry configures retry behavior
func (c *Client) SetRetry(maxRetries int, retryDelay time.Duration) {
	c.MaxRetries = maxRetries
	c.RetryDelay = retryDelay
}

// withRetry runs fn with the client's retry policy.
// Non-retryable errors abort immediately.
func (c *Client) withRetry(fn func() error) error {
	var lastErr error
	currentDelay := c.RetryDelay

	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(currentDelay)

			// Exponential backoff
			if c.UseExponentialBackoff {
				currentDelay *= 2
				if currentDelay > c.MaxRetryDelay {
					currentDelay = c.MaxRetryDelay
				}
			}
		}

		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err

		if !IsRetryable(err) {
			return err
		}
	}

	return lastErr
}

// getJSON performs a GET request and decodes the JSON response into out.
func (c *Client) getJSON(path string, query url.Values, out interface{}) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return NewNetworkError("failed to create GET request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "gfpint/"+version.Version)

	logging.LogAPIRequest(http.MethodGet, path, query.Get("q"))
	start := time.Now()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return NewNetworkError("GET request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return NewAuthError("server rejected credentials")
	}
	if resp.StatusCode != http.StatusOK {
		return NewHTTPError(resp.StatusCode, fmt.Sprintf("unexpected status code: %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewNetworkError("failed to read response body", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return NewParseError("failed to parse JSON response", err)
	}

	logging.LogAPIResponse(path, resp.StatusCode, time.Since(start), -1)
	return nil
}

// postJSON performs a POST request with a JSON body and decodes the response into out.
func (c *Client) postJSON(path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return NewParseError("failed to encode request body", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return NewNetworkError("failed to create POST request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "gfpint/"+version.Version)

	logging.LogAPIRequest(http.MethodPost, path, "")
	start := time.Now()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return NewNetworkError("POST request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return NewAuthError("server rejected credentials")
	}
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return NewHTTPError(resp.StatusCode, fmt.Sprintf("request failed with status %d: %s", resp.StatusCode, string(respBody)))
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewNetworkError("failed to read response body", err)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return NewParseError("failed to parse JSON response", err)
		}
	}

	logging.LogAPIResponse(path, resp.StatusCode, time.Since(start), -1)
	return nil
}

// SearchVenues looks up venues matching the query.
// An empty query returns the backend's default (nearby/popular) venue list.
func (c *Client) SearchVenues(query string) ([]Venue, error) {
	q := url.Values{}
	if strings.TrimSpace(query) != "" {
		q.Set("q", strings.TrimSpace(query))
	}

	var venues []Venue
	err := c.withRetry(func() error {
		return c.getJSON("/api/venues", q, &venues)
	})
	if err != nil {
		return nil, err
	}
	return venues, nil
}

// SearchBreweries looks up brewery names matching the query.
//
// An empty or whitespace-only query returns the default brewery list, which
// is cached briefly so that repeatedly focusing the brewery field doesn't
// hammer the backend.
func (c *Client) SearchBreweries(query string) ([]string, error) {
	query = strings.TrimSpace(query)

	if query == "" {
		return c.defaultBreweries()
	}

	q := url.Values{}
	q.Set("q", query)

	var breweries []string
	err := c.withRetry(func() error {
		return c.getJSON("/api/breweries", q, &breweries)
	})
	if err != nil {
		return nil, err
	}
	return breweries, nil
}

// defaultBreweries returns the empty-query brewery list, from cache when fresh.
func (c *Client) defaultBreweries() ([]string, error) {
	if c.CacheDuration > 0 {
		c.cacheMutex.RLock()
		if c.cachedBreweries != nil && time.Since(c.cacheTime) < c.CacheDuration {
			cached := make([]string, len(c.cachedBreweries))
			copy(cached, c.cachedBreweries)
			c.cacheMutex.RUnlock()
			return cached, nil
		}
		c.cacheMutex.RUnlock()
	}

	var breweries []string
	err := c.withRetry(func() error {
		return c.getJSON("/api/breweries", nil, &breweries)
	})
	if err != nil {
		return nil, err
	}

	if c.CacheDuration > 0 {
		c.cacheMutex.Lock()
		c.cachedBreweries = breweries
		c.cacheTime = time.Now()
		c.cacheMutex.Unlock()
	}

	return breweries, nil
}

// InvalidateCache clears the cached brewery list, forcing the next
// empty-query lookup to fetch fresh data.
func (c *Client) InvalidateCache() {
	c.cacheMutex.Lock()
	defer c.cacheMutex.Unlock()
	c.cachedBreweries = nil
	c.cacheTime = time.Time{}
}

// BreweryBeers lists a brewery's known beers, optionally filtered by query.
// Returns an empty list for an unknown (e.g. newly created) brewery.
func (c *Client) BreweryBeers(brewery, query string) ([]Beer, error) {
	brewery = strings.TrimSpace(brewery)
	if brewery == "" {
		return nil, NewValidationError("brewery name is required")
	}

	q := url.Values{}
	if strings.TrimSpace(query) != "" {
		q.Set("q", strings.TrimSpace(query))
	}

	var beers []Beer
	err := c.withRetry(func() error {
		return c.getJSON("/api/brewery/"+url.PathEscape(brewery)+"/beers", q, &beers)
	})
	if err != nil {
		return nil, err
	}
	return beers, nil
}

// SearchBeers performs a global beer search across all breweries.
// Results carry the brewery name so a hit resolves beer and brewery together.
// Queries shorter than MinBeerQueryLen return no results without a network call.
func (c *Client) SearchBeers(query string) ([]Beer, error) {
	query = strings.TrimSpace(query)
	if len(query) < MinBeerQueryLen {
		return nil, nil
	}

	q := url.Values{}
	q.Set("q", query)

	var beers []Beer
	err := c.withRetry(func() error {
		return c.getJSON("/api/beers/search", q, &beers)
	})
	if err != nil {
		return nil, err
	}
	return beers, nil
}

// SubmitReport posts a beer report.
//
// The submission is validated client-side first; a missing user id or beer
// name never reaches the network. A submission token is generated when absent
// so the backend can deduplicate retries of the same report. A response with
// Success=false is returned without error - the server's message is in
// resp.Error for the caller to surface.
func (c *Client) SubmitReport(sub *Submission) (*SubmitResponse, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	if sub.SubmissionToken == "" {
		sub.SubmissionToken = uuid.NewString()
	}

	logging.LogSubmission(sub.VenueID, sub.BreweryName, sub.BeerName, sub.Format)

	var resp SubmitResponse
	err := c.withRetry(func() error {
		return c.postJSON("/api/submit_beer_update", sub, &resp)
	})
	if err != nil {
		return nil, err
	}

	logging.LogSubmissionResult(sub.VenueID, resp.Success, resp.Error)
	return &resp, nil
}

// UpdateGFStatus posts the venue's current gluten-free availability, the
// follow-up question shown after a successful report.
func (c *Client) UpdateGFStatus(update *StatusUpdate) error {
	if strings.TrimSpace(update.VenueID) == "" {
		return NewValidationError("venue is required")
	}
	if strings.TrimSpace(update.Status) == "" {
		return NewValidationError("status is required")
	}

	var resp SubmitResponse
	err := c.withRetry(func() error {
		return c.postJSON("/api/update_gf_status", update, &resp)
	})
	if err != nil {
		return err
	}
	if !resp.Success && resp.Error != "" {
		return NewValidationError(resp.Error)
	}
	return nil
}
