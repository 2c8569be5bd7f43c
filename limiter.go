package pagemd

import "context"

// DomainLimiter provides per-domain rate limiting for batch fetching.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
