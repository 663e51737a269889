package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/raphi011/tajweed/internal/log"
	"github.com/raphi011/tajweed/internal/quran"
)

// DefaultBaseURL is the quran.com endpoint serving uthmani tajweed markup.
const DefaultBaseURL = "https://api.quran.com/api/v4/quran/verses/uthmani_tajweed"

// DefaultTimeout bounds a single request.
const DefaultTimeout = 15 * time.Second

// DefaultUserAgent identifies the client to the remote service.
const DefaultUserAgent = "tajweed-cache (+https://github.com/raphi011/tajweed)"

// Client fetches verse markup from the API.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the endpoint. Used to point the client at a stub in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithHTTPClient replaces the underlying HTTP client. Its timeout is kept as is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a client with the default endpoint and a 15 second timeout.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		http:      &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// verseResponse mirrors the subset of the API response we read.
type verseResponse struct {
	Verses []struct {
		TextUthmaniTajweed *string `json:"text_uthmani_tajweed"`
	} `json:"verses"`
}

// VerseURL builds the request URL for key. The verse key is appended
// verbatim so the colon stays unescaped, matching the documented form.
func (c *Client) VerseURL(key quran.VerseKey) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", c.baseURL, err)
	}
	u.RawQuery = "verse_key=" + key.String()
	return u.String(), nil
}

// FetchTajweed downloads the tajweed markup for a single verse.
func (c *Client) FetchTajweed(ctx context.Context, key quran.VerseKey) (string, error) {
	l := log.FromContext(ctx)

	reqURL, err := c.VerseURL(key)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		l.Debug("request failed", "url", reqURL, "err", err)
		return "", &transportError{err: err}
	}
	defer resp.Body.Close()

	l.Debug("GET", "url", reqURL, "status", resp.StatusCode, "took", time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &transportError{err: err}
	}

	// The whole body must be one JSON document; trailing data is malformed.
	var body verseResponse
	if err := json.Unmarshal(data, &body); err != nil {
		return "", &formatError{err: err}
	}

	if len(body.Verses) == 0 || body.Verses[0].TextUthmaniTajweed == nil {
		return "", ErrMissingField
	}

	return *body.Verses[0].TextUthmaniTajweed, nil
}
