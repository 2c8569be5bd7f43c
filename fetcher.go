package pagemd

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the HTML document at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
