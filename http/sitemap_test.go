package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/fwojciec/pagemd"
	pmhttp "github.com/fwojciec/pagemd/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("from robots.txt directives", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{
			"/robots.txt": "User-agent: *\nDisallow: /private/\nSitemap: {{BASE}}/sitemap.xml\n",
			"/sitemap.xml": `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/docs/intro</loc></url>
  <url><loc>{{BASE}}/docs/guide</loc></url>
</urlset>`,
		})
		defer srv.Close()

		svc := pmhttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/docs/intro", srv.URL + "/docs/guide"}, urls)
	})

	t.Run("falls back to sitemap.xml without robots.txt", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{
			"/sitemap.xml": `<?xml version="1.0" encoding="UTF-8"?>
<urlset><url><loc>{{BASE}}/page1</loc></url></urlset>`,
		})
		defer srv.Close()

		svc := pmhttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/page1"}, urls)
	})

	t.Run("recurses through sitemap indexes", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{
			"/sitemap.xml": `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex>
  <sitemap><loc>{{BASE}}/sitemap-docs.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/sitemap-api.xml</loc></sitemap>
</sitemapindex>`,
			"/sitemap-docs.xml": `<urlset><url><loc>{{BASE}}/docs/intro</loc></url></urlset>`,
			"/sitemap-api.xml":  `<urlset><url><loc>{{BASE}}/api/reference</loc></url></urlset>`,
		})
		defer srv.Close()

		svc := pmhttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		assert.Contains(t, urls, srv.URL+"/docs/intro")
		assert.Contains(t, urls, srv.URL+"/api/reference")
	})

	t.Run("breaks sitemap index cycles", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{
			"/sitemap.xml": `<sitemapindex>
  <sitemap><loc>{{BASE}}/sitemap.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/sitemap-a.xml</loc></sitemap>
</sitemapindex>`,
			"/sitemap-a.xml": `<urlset><url><loc>{{BASE}}/page</loc></url></urlset>`,
		})
		defer srv.Close()

		svc := pmhttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/page"}, urls)
	})

	t.Run("deduplicates URLs across sitemaps", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{
			"/robots.txt":   "Sitemap: {{BASE}}/sitemap1.xml\nSitemap: {{BASE}}/sitemap2.xml\n",
			"/sitemap1.xml": `<urlset><url><loc>{{BASE}}/page</loc></url></urlset>`,
			"/sitemap2.xml": `<urlset><url><loc>{{BASE}}/page</loc></url><url><loc>{{BASE}}/other</loc></url></urlset>`,
		})
		defer srv.Close()

		svc := pmhttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/page", srv.URL + "/other"}, urls)
	})

	t.Run("restricts to the base path prefix", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{
			"/sitemap.xml": `<urlset>
  <url><loc>{{BASE}}/docs/intro</loc></url>
  <url><loc>{{BASE}}/documentation/other</loc></url>
  <url><loc>{{BASE}}/blog/post</loc></url>
</urlset>`,
		})
		defer srv.Close()

		svc := pmhttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL+"/docs", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/docs/intro"}, urls)
	})

	t.Run("applies include and exclude filters", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{
			"/sitemap.xml": `<urlset>
  <url><loc>{{BASE}}/docs/intro</loc></url>
  <url><loc>{{BASE}}/docs/internal/debug</loc></url>
  <url><loc>{{BASE}}/blog/post</loc></url>
</urlset>`,
		})
		defer srv.Close()

		filter := &pagemd.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/docs/`)},
			Exclude: []*regexp.Regexp{regexp.MustCompile(`/internal/`)},
		}

		svc := pmhttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, filter)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/docs/intro"}, urls)
	})

	t.Run("empty slice when no sitemap exists", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{})
		defer srv.Close()

		svc := pmhttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.NotNil(t, urls)
		assert.Empty(t, urls)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{
			"/sitemap.xml": `<urlset><url><loc>{{BASE}}/page1</loc></url></urlset>`,
		})
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		svc := pmhttp.NewSitemapService(srv.Client())
		_, err := svc.DiscoverURLs(ctx, srv.URL, nil)

		require.ErrorIs(t, err, context.Canceled)
	})
}

// newSitemapServer serves the given path->body map; bodies may contain
// {{BASE}}, replaced with the server's own URL.
func newSitemapServer(t *testing.T, content map[string]string) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := content[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		if r.URL.Path == "/robots.txt" {
			w.Header().Set("Content-Type", "text/plain")
		} else {
			w.Header().Set("Content-Type", "application/xml")
		}
		_, _ = w.Write([]byte(strings.ReplaceAll(body, "{{BASE}}", srv.URL)))
	}))

	return srv
}
