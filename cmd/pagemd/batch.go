package main

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/pagemd"
	"github.com/fwojciec/pagemd/batch"
	"github.com/fwojciec/pagemd/fs"
)

// BatchCmd fetches and converts many pages, writing one file per page
// and optionally persisting the full bundles.
type BatchCmd struct {
	URLs []string `arg:"" optional:"" name:"url" help:"Page URLs to convert"`

	Sitemap string   `help:"Discover page URLs from this site's sitemap"`
	Include []string `help:"Only convert URLs matching these patterns"`
	Exclude []string `help:"Skip URLs matching these patterns"`

	Out            string  `default:"." help:"Output directory for markdown files"`
	Format         string  `default:"raw" enum:"raw,readable,citations,references,full,plain" help:"Variant written to files"`
	Engine         string  `default:"dom" enum:"dom,library" help:"Conversion engine"`
	Extractor      string  `default:"none" enum:"none,trafilatura,readability" help:"Optional main-content pre-extractor"`
	NoDedupeTables bool    `help:"Keep naive rows from nested layout tables"`
	Concurrency    int     `short:"c" default:"3" help:"Concurrent fetch limit"`
	RPS            float64 `default:"1.0" help:"Max requests per second per domain"`
	DB             string  `help:"SQLite database to also persist conversions"`
}

// Run executes the batch command.
func (cmd *BatchCmd) Run(deps *Dependencies) error {
	urls, err := cmd.collectURLs(deps)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return pagemd.Errorf(pagemd.EINVALID, "no URLs to convert; pass URLs or --sitemap")
	}

	extractor, err := deps.extractor(cmd.Extractor)
	if err != nil {
		return err
	}
	converter, err := deps.converter(cmd.Engine)
	if err != nil {
		return err
	}

	runner := &batch.Runner{
		Fetcher:     deps.Fetcher,
		Converter:   converter,
		Extractor:   extractor,
		Limiter:     batch.NewDomainLimiter(cmd.RPS),
		Concurrency: cmd.Concurrency,
		Options: pagemd.Options{
			DedupeLayoutTables: !cmd.NoDedupeTables,
		},
	}

	pages, err := runner.Run(deps.Ctx, urls, func(p pagemd.Progress) {
		if p.Err != nil {
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %v\n", p.Completed, p.Total, p.URL, p.Err)
			return
		}
		fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", p.Completed, p.Total, p.URL)
	})
	if err != nil {
		return err
	}

	writer := fs.NewWriter(cmd.Out, cmd.Format)
	for _, page := range pages {
		if _, err := writer.WritePage(page); err != nil {
			return err
		}
	}

	if cmd.DB != "" {
		if err := cmd.persist(deps, pages); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "converted %d of %d pages\n", len(pages), len(urls))
	return nil
}

// collectURLs merges explicit URLs with sitemap discovery.
func (cmd *BatchCmd) collectURLs(deps *Dependencies) ([]string, error) {
	urls := cmd.URLs

	if cmd.Sitemap != "" {
		filter, err := cmd.filter()
		if err != nil {
			return nil, err
		}
		discovered, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, cmd.Sitemap, filter)
		if err != nil {
			return nil, err
		}
		urls = append(urls, discovered...)
	}

	return urls, nil
}

func (cmd *BatchCmd) filter() (*pagemd.URLFilter, error) {
	if len(cmd.Include) == 0 && len(cmd.Exclude) == 0 {
		return nil, nil
	}
	var filter pagemd.URLFilter
	for _, p := range cmd.Include {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, pagemd.Errorf(pagemd.EINVALID, "invalid include pattern %q: %v", p, err)
		}
		filter.Include = append(filter.Include, re)
	}
	for _, p := range cmd.Exclude {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, pagemd.Errorf(pagemd.EINVALID, "invalid exclude pattern %q: %v", p, err)
		}
		filter.Exclude = append(filter.Exclude, re)
	}
	return &filter, nil
}

func (cmd *BatchCmd) persist(deps *Dependencies, pages []*pagemd.Page) error {
	store, closeStore, err := deps.OpenConversions(cmd.DB)
	if err != nil {
		return err
	}
	defer closeStore()

	for _, page := range pages {
		err := store.CreateConversion(deps.Ctx, &pagemd.Conversion{
			SourceURL: page.URL,
			Title:     page.Title,
			Result:    page.Result,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
