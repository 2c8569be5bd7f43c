// Package batch fetches and converts many pages concurrently.
package batch

import (
	"context"
	"net/url"
	"sync/atomic"

	"github.com/fwojciec/pagemd"
	"github.com/fwojciec/pagemd/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages fetched in parallel when
// Runner.Concurrency is not set.
const DefaultConcurrency = 3

// Runner fetches a set of URLs and converts each to a result bundle.
// Duplicate URLs (including fragment-only variations) are converted
// once. Per-URL failures are reported through the progress callback and
// skipped; only context cancellation aborts the run.
type Runner struct {
	Fetcher   pagemd.Fetcher
	Converter pagemd.Converter

	// Extractor optionally pre-filters each page to its main content
	// before conversion and supplies page titles.
	Extractor pagemd.Extractor

	// Limiter throttles requests per domain. Optional.
	Limiter pagemd.DomainLimiter

	// Concurrency bounds parallel fetches. Defaults to DefaultConcurrency.
	Concurrency int

	// Options is applied to every conversion; BaseURL is overridden
	// with each page's own URL.
	Options pagemd.Options
}

// Run converts all URLs and returns the successful pages in input
// order. The progress callback, if non-nil, is invoked once per
// deduplicated URL, including failures.
func (r *Runner) Run(ctx context.Context, urls []string, progress pagemd.ProgressFunc) ([]*pagemd.Page, error) {
	seen := bloom.NewSeenSet(uint(max(len(urls), 1)), 0.01)
	var deduped []string
	for _, u := range urls {
		if seen.MarkSeen(u) {
			deduped = append(deduped, u)
		}
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	pages := make([]*pagemd.Page, len(deduped))
	var completed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, pageURL := range deduped {
		g.Go(func() error {
			page, err := r.convertOne(ctx, pageURL)
			if err != nil {
				// Context errors abort the whole run; anything else is
				// a per-page failure worth reporting but not fatal.
				if ctx.Err() != nil {
					return ctx.Err()
				}
			} else {
				pages[i] = page
			}

			if progress != nil {
				progress(pagemd.Progress{
					URL:       pageURL,
					Completed: int(completed.Add(1)),
					Total:     len(deduped),
					Err:       err,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*pagemd.Page, 0, len(pages))
	for _, p := range pages {
		if p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *Runner) convertOne(ctx context.Context, pageURL string) (*pagemd.Page, error) {
	if r.Limiter != nil {
		if err := r.Limiter.Wait(ctx, domainOf(pageURL)); err != nil {
			return nil, err
		}
	}

	html, err := r.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	title := ""
	if r.Extractor != nil {
		extracted, err := r.Extractor.Extract(html)
		if err == nil && extracted.ContentHTML != "" {
			html = extracted.ContentHTML
			title = extracted.Title
		}
	}

	opts := r.Options
	opts.BaseURL = pageURL
	result, err := r.Converter.Convert(html, opts)
	if err != nil {
		return nil, err
	}

	return &pagemd.Page{URL: pageURL, Title: title, Result: result}, nil
}

func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}
