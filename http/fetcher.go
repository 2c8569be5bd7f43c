// Package http provides HTTP-based implementations of pagemd.Fetcher
// and pagemd.SitemapService for retrieving pages from static sites.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/fwojciec/pagemd"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies fetch requests.
const DefaultUserAgent = "pagemd/1.0"

// Ensure Fetcher implements pagemd.Fetcher at compile time.
var _ pagemd.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It does not execute JavaScript and is suitable for static sites only.
// A cookie jar is kept across requests; some sites gate content behind
// session cookies set on the first response.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header for requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	jar, _ := cookiejar.New(nil)
	f.client = &http.Client{
		Timeout: f.timeout,
		Jar:     jar,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. A no-op for the HTTP fetcher since
// http.Client requires no explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
