// Package goquery implements the DOM-walking conversion engine. It
// parses HTML into a node tree, pre-marks clutter and hidden subtrees,
// locates the main content root, and renders the tree into Markdown,
// re-walking the full document when the first pass comes up sparse.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemd"
	"golang.org/x/net/html"
)

// Ensure Converter implements pagemd.Converter at compile time.
var _ pagemd.Converter = (*Converter)(nil)

// Converter converts HTML documents to Markdown result bundles.
// It is stateless and safe for concurrent use; all per-conversion
// state lives on the stack of Convert.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert parses the HTML, renders Markdown from the main content, and
// assembles the full result bundle. Conversion is best-effort: any
// input, including the empty string, yields a bundle rather than an
// error.
func (c *Converter) Convert(rawHTML string, opts pagemd.Options) (*pagemd.Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagemd.Errorf(pagemd.EINVALID, "failed to parse HTML: %v", err)
	}

	base := pagemd.ParseBaseURL(opts.BaseURL)
	skip := buildSkipSet(doc)

	w := &walker{
		base:         base,
		dedupeTables: opts.DedupeLayoutTables,
		skip:         skip,
	}

	var buf strings.Builder
	if root := findMainContent(doc, skip); root != nil {
		w.walk(root, &buf)
	}
	raw := pagemd.CleanMarkdown(buf.String())

	// A sparse first pass usually means the clutter filter ate real
	// content. Re-walk the whole document with nothing skipped.
	fallback := shouldFallback(rawHTML, raw, opts.BaseURL)
	if fallback {
		w2 := &walker{
			base:         base,
			dedupeTables: opts.DedupeLayoutTables,
			skip:         map[*html.Node]struct{}{},
		}
		var full strings.Builder
		for n := doc.Get(0).FirstChild; n != nil; n = n.NextSibling {
			if n.Type == html.ElementNode {
				w2.walk(n, &full)
			}
		}
		raw = pagemd.CleanMarkdown(full.String())
	}

	return pagemd.BuildResult(raw, base, fallback), nil
}
