// Package mock provides function-field mock implementations of pagemd
// interfaces for use in tests.
package mock

import (
	"context"

	"github.com/fwojciec/pagemd"
)

var _ pagemd.Converter = (*Converter)(nil)

// Converter is a mock implementation of pagemd.Converter.
type Converter struct {
	ConvertFn func(html string, opts pagemd.Options) (*pagemd.Result, error)
}

func (c *Converter) Convert(html string, opts pagemd.Options) (*pagemd.Result, error) {
	return c.ConvertFn(html, opts)
}

var _ pagemd.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagemd.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pagemd.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*pagemd.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ pagemd.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of pagemd.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ pagemd.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of pagemd.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *pagemd.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *pagemd.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}

var _ pagemd.ConversionService = (*ConversionService)(nil)

// ConversionService is a mock implementation of pagemd.ConversionService.
type ConversionService struct {
	CreateConversionFn   func(ctx context.Context, c *pagemd.Conversion) error
	FindConversionByIDFn func(ctx context.Context, id string) (*pagemd.Conversion, error)
	FindConversionsFn    func(ctx context.Context, filter pagemd.ConversionFilter) ([]*pagemd.Conversion, error)
	DeleteConversionFn   func(ctx context.Context, id string) error
}

func (s *ConversionService) CreateConversion(ctx context.Context, c *pagemd.Conversion) error {
	return s.CreateConversionFn(ctx, c)
}

func (s *ConversionService) FindConversionByID(ctx context.Context, id string) (*pagemd.Conversion, error) {
	return s.FindConversionByIDFn(ctx, id)
}

func (s *ConversionService) FindConversions(ctx context.Context, filter pagemd.ConversionFilter) ([]*pagemd.Conversion, error) {
	return s.FindConversionsFn(ctx, filter)
}

func (s *ConversionService) DeleteConversion(ctx context.Context, id string) error {
	return s.DeleteConversionFn(ctx, id)
}

var _ pagemd.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of pagemd.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.WaitFn == nil {
		return nil
	}
	return d.WaitFn(ctx, domain)
}
