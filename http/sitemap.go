package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/pagemd"
)

// Ensure SitemapService implements pagemd.SitemapService.
var _ pagemd.SitemapService = (*SitemapService)(nil)

// SitemapService discovers page URLs from website sitemaps via HTTP.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP
// client. If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs finds all URLs from a site's sitemap.
// Returns an empty slice (not nil) if no sitemaps are found.
//
// When baseURL has a non-root path (e.g., https://example.com/docs/),
// only URLs with paths under that prefix are returned.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *pagemd.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, pagemd.Errorf(pagemd.EINVALID, "invalid base URL: %v", err)
	}

	pathPrefix := base.Path
	if pathPrefix == "/" {
		pathPrefix = ""
	}

	// Sitemaps live at the domain root regardless of the base path.
	siteRoot := *base
	siteRoot.Path = ""

	sitemapURLs, err := s.findSitemapURLs(ctx, &siteRoot)
	if err != nil {
		return nil, err
	}
	if len(sitemapURLs) == 0 {
		return []string{}, nil
	}

	var all []string
	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)

	for _, sitemapURL := range sitemapURLs {
		urls, err := s.walkSitemap(ctx, sitemapURL, seenSitemaps)
		if err != nil {
			return nil, err
		}
		for _, u := range urls {
			if !seenURLs[u] {
				seenURLs[u] = true
				all = append(all, u)
			}
		}
	}

	var out []string
	for _, u := range all {
		if pathPrefix != "" && !underPathPrefix(u, pathPrefix) {
			continue
		}
		if !filter.Match(u) {
			continue
		}
		out = append(out, u)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// underPathPrefix checks if a URL's path starts with the given prefix at
// a path boundary: /docs matches /docs/intro but not /documentation.
func underPathPrefix(rawURL, prefix string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return strings.HasPrefix(parsed.Path, prefix)
}

// findSitemapURLs discovers sitemap URLs from robots.txt or falls back
// to /sitemap.xml.
func (s *SitemapService) findSitemapURLs(ctx context.Context, root *url.URL) ([]string, error) {
	robotsURL := root.ResolveReference(&url.URL{Path: "/robots.txt"})
	sitemaps, err := s.sitemapsFromRobots(ctx, robotsURL.String())
	if err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}

	sitemapURL := root.ResolveReference(&url.URL{Path: "/sitemap.xml"})
	exists, err := s.urlExists(ctx, sitemapURL.String())
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	if exists {
		return []string{sitemapURL.String()}, nil
	}

	return nil, nil
}

// sitemapsFromRobots extracts Sitemap: directives from robots.txt.
func (s *SitemapService) sitemapsFromRobots(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.get(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			if u := strings.TrimSpace(line[len("sitemap:"):]); u != "" {
				sitemaps = append(sitemaps, u)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}

	return sitemaps, nil
}

// walkSitemap fetches and parses a sitemap, recursing through sitemap
// indexes. Already-seen sitemaps are skipped to break cycles.
func (s *SitemapService) walkSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap XML")
	}

	if root.Tag == "sitemapindex" {
		var all []string
		for _, sm := range root.SelectElements("sitemap") {
			loc := sm.SelectElement("loc")
			if loc == nil {
				continue
			}
			child := strings.TrimSpace(loc.Text())
			if child == "" {
				continue
			}
			urls, err := s.walkSitemap(ctx, child, seen)
			if err != nil {
				return nil, err
			}
			all = append(all, urls...)
		}
		return all, nil
	}

	var urls []string
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}

// get fetches a URL and returns the response body.
func (s *SitemapService) get(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, targetURL)
	}

	return resp.Body, nil
}

// urlExists checks if a URL returns 200 OK to a HEAD request.
func (s *SitemapService) urlExists(ctx context.Context, targetURL string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, targetURL, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
