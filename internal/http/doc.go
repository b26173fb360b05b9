// Package http provides a rate-limited HTTP client for the Discogs API.
//
// The Client in this package handles:
//   - A minimum inter-request delay shared by all callers (1s default)
//   - Exponential-backoff retry on HTTP 429 responses
//   - User-Agent and Discogs token Authorization headers
//
// # Basic Usage
//
//	client := http.NewClient(http.DefaultConfig())
//
//	resp, err := client.Get(ctx, "https://api.discogs.com/releases/249504", nil)
//
// # Status Handling
//
// HTTP-level failures are data, not errors. Callers must check the
// status explicitly:
//
//	resp, err := client.GetJSON(ctx, url, query, &out)
//	if err != nil {
//	    return err // transport failure or cancelled context
//	}
//	if !resp.OK() {
//	    // degraded path: the resource is unavailable, skip it
//	}
//
// A persistently throttled endpoint surfaces the same way: after the
// retry budget is spent, the last 429 response is returned as an
// ordinary unsuccessful Response.
package http
