package wallhaven

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dixieflatline76/Wallfetch/util/log"
	"golang.org/x/time/rate"
)

// HTTPError is returned when the server answers with a non-2xx status.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("wallhaven: %s returned status %d (%s)", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Options configures a Client. The zero value is usable.
type Options struct {
	UserAgent         string
	Timeout           time.Duration // 0 means no client timeout
	RequestsPerMinute int           // 0 disables throttling
	Transport         http.RoundTripper
}

// Client performs blocking GETs against wallhaven and the image CDN.
// There is no retry: a failure is returned to the caller as is.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new Client.
func NewClient(opts Options) *Client {
	var transport http.RoundTripper = opts.Transport
	if opts.UserAgent != "" {
		transport = &UserAgentTransport{RoundTripper: opts.Transport, UserAgent: opts.UserAgent}
	}

	c := &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
		},
	}
	if opts.RequestsPerMinute > 0 {
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.RequestsPerMinute)), 1)
	}
	return c
}

// Fetch returns the body of rawURL as text.
func (c *Client) Fetch(ctx context.Context, rawURL string) (string, error) {
	body, err := c.FetchBytes(ctx, rawURL)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchBytes returns the raw body of rawURL.
func (c *Client) FetchBytes(ctx context.Context, rawURL string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting for rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	safeURL := redact(req.URL)
	log.Debugf("GET %s", safeURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = safeURL
		}
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: safeURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// redact returns u as a string with the API key masked so it never reaches
// logs or error messages.
func redact(u *url.URL) string {
	q := u.Query()
	if !q.Has(ParamAPIKey) {
		return u.String()
	}
	q.Set(ParamAPIKey, "REDACTED")
	clean := *u
	clean.RawQuery = q.Encode()
	return clean.String()
}
