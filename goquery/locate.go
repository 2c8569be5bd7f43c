package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Content-root selectors in priority order. The body fallback makes
// "nothing found" practically impossible for any document with a body.
var mainSelectors = []string{
	"main",
	"article",
	".content",
	".main-content",
	".post-content",
	".entry-content",
	"#content",
	"#main",
	"body",
}

// findMainContent returns the best candidate root for the primary walk:
// the first match, in selector priority order then document order, that
// is not skip-marked. Returns nil only when every match is skipped or
// the document has no body at all.
func findMainContent(doc *goquery.Document, skip map[*html.Node]struct{}) *html.Node {
	for _, sel := range mainSelectors {
		for _, n := range doc.Find(sel).Nodes {
			if _, ok := skip[n]; !ok {
				return n
			}
		}
	}
	return nil
}
