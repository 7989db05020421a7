// Package api implements the HTTP client for the gfpint backend.
//
// The backend is a plain JSON-over-HTTPS REST API. This package provides
// typed calls for the endpoints the client consumes:
//
//	GET  /api/venues?q=                 venue search
//	GET  /api/breweries?q=              brewery name search (empty q = default list)
//	GET  /api/brewery/{name}/beers?q=   a brewery's known beers
//	GET  /api/beers/search?q=           global beer search (min 2 chars)
//	POST /api/submit_beer_update        file a beer report
//	POST /api/update_gf_status          venue availability follow-up
//
// # Retry and caching
//
// Transient failures (timeouts, connection refused, 5xx) are retried with
// exponential backoff; auth, validation, and parse errors are not. Report
// submissions carry a client-generated submission token, so retrying a POST
// cannot double-file a report.
//
// The default brewery list (the empty-query result shown when the brewery
// field gains focus) is cached for a short period to avoid refetching it on
// every focus change.
//
// # Errors
//
// All failures are returned as *APIError with a Type classifying them
// (network, auth, HTTP, parse, validation). ShortMessage produces a
// one-line user-facing rendering suitable for a toast.
package api
