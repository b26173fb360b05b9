package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// Config holds the knobs for a Client.
type Config struct {
	// UserAgent is sent as the User-Agent header on every request.
	UserAgent string

	// Token is the Discogs personal access token. When empty, requests
	// go out unauthenticated and the API applies its lower rate-limit
	// tier.
	Token string

	// MinDelay is the minimum time between the starts of two
	// consecutive outbound requests, shared across all callers of this
	// client.
	MinDelay time.Duration

	// MaxRetries caps the number of attempts for a throttled request.
	MaxRetries int

	// Timeout is the per-request timeout. Zero means no timeout.
	Timeout time.Duration
}

// DefaultConfig returns the production configuration: one request per
// second, five attempts on throttling, 30 second request timeout.
func DefaultConfig() Config {
	return Config{
		UserAgent:  "VinylOnlyFinder/1.0",
		MinDelay:   time.Second,
		MaxRetries: 5,
		Timeout:    30 * time.Second,
	}
}

// Client wraps HTTP GET calls with Discogs-specific behavior.
//
// Client provides:
//   - A process-wide minimum delay between consecutive requests,
//     measured from the start of the previous request regardless of
//     which logical operation issued it
//   - Exponential-backoff retry on HTTP 429 (2, 4, 8, 16, 32 seconds)
//   - Authorization and User-Agent headers on every request
//
// Non-success statuses other than 429 are not retried and not turned
// into errors: the Response is handed back and the caller decides how
// to treat it (typically as "resource unavailable, skip the item").
// Likewise, when all retries are exhausted while still throttled, the
// last 429 response is returned rather than an error.
//
// Example usage:
//
//	client := http.NewClient(http.DefaultConfig())
//
//	resp, err := client.Get(ctx, "https://api.discogs.com/releases/249504", nil)
//	if err != nil {
//	    // transport failure or cancelled context
//	}
//	if !resp.OK() {
//	    // lookup could not be completed, skip
//	}
//
// Client is not safe for concurrent use; the pipeline it serves is
// strictly sequential.
type Client struct {
	httpClient *http.Client
	userAgent  string
	token      string
	minDelay   time.Duration
	maxRetries int

	// lastRequest is the start time of the most recent attempt. It
	// advances on every attempt, including retries, never on a request
	// that was not issued.
	lastRequest time.Time

	// now and sleep are test seams; they default to the real clock.
	now   func() time.Time
	sleep func(time.Duration)
}

// NewClient creates a Client from cfg. A MaxRetries below 1 is treated
// as 1 (a single attempt, no retry).
func NewClient(cfg Config) *Client {
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		userAgent:  cfg.UserAgent,
		token:      cfg.Token,
		minDelay:   cfg.MinDelay,
		maxRetries: cfg.MaxRetries,
		now:        time.Now,
		sleep:      time.Sleep,
	}
}

// Authenticated reports whether the client carries an API token.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// Response is the outcome of a completed GET request. The body is fully
// read so the caller never needs to manage the connection.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

// OK reports whether the response status is 200.
func (r *Response) OK() bool {
	return r.StatusCode == http.StatusOK
}

// Get performs a GET request with rate limiting and throttle retry.
//
// The minimum-delay gate is applied before every attempt. On HTTP 429
// the client backs off 2·2^attempt seconds and retries, up to
// MaxRetries attempts in total; if still throttled after the last
// attempt, that 429 response is returned. Any other status, success or
// not, is returned immediately.
//
// An error is returned only for transport failures and cancelled
// contexts, never for HTTP-level statuses.
func (c *Client) Get(ctx context.Context, rawURL string, query url.Values) (*Response, error) {
	var resp *Response
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		c.rateLimit()

		var err error
		resp, err = c.do(ctx, rawURL, query)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		if attempt < c.maxRetries-1 {
			wait := time.Duration(2<<attempt) * time.Second
			fmt.Fprintf(os.Stderr, "Rate limited. Waiting %s before retry %d/%d...\n",
				wait, attempt+1, c.maxRetries)
			c.sleep(wait)
		}
	}
	return resp, nil
}

// GetJSON performs a Get and, when the response is 200, unmarshals the
// body into v. The response is returned in all cases so the caller can
// inspect non-success statuses.
func (c *Client) GetJSON(ctx context.Context, rawURL string, query url.Values, v any) (*Response, error) {
	resp, err := c.Get(ctx, rawURL, query)
	if err != nil {
		return nil, err
	}
	if resp.OK() {
		if err := json.Unmarshal(resp.Body, v); err != nil {
			return resp, fmt.Errorf("decoding %s: %w", rawURL, err)
		}
	}
	return resp, nil
}

// rateLimit blocks until at least minDelay has passed since the start
// of the previous attempt, then advances the last-request marker.
func (c *Client) rateLimit() {
	if elapsed := c.now().Sub(c.lastRequest); elapsed < c.minDelay {
		c.sleep(c.minDelay - elapsed)
	}
	c.lastRequest = c.now()
}

// do issues a single GET attempt and drains the body.
func (c *Client) do(ctx context.Context, rawURL string, query url.Values) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Discogs token="+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       body,
	}, nil
}
