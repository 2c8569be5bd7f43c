package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Tags whose entire subtree is never content.
var skipTags = map[string]struct{}{
	"script":   {},
	"style":    {},
	"noscript": {},
	"iframe":   {},
	"object":   {},
	"embed":    {},
	"form":     {},
	"input":    {},
	"button":   {},
	"select":   {},
	"textarea": {},
}

// Hidden / accessibility-only CSS classes.
var hiddenClasses = map[string]struct{}{
	"sr-only":            {},
	"sr_only":            {},
	"srOnly":             {},
	"visually-hidden":    {},
	"visually_hidden":    {},
	"screen-reader-only": {},
	"screen_reader_only": {},
	"a11y-only":          {},
	"a11y_only":          {},
}

// Navigation / clutter tags removed before main-content detection.
var clutterTags = map[string]struct{}{
	"nav":    {},
	"header": {},
	"footer": {},
	"aside":  {},
}

// Navigation / ad / social / modal CSS classes removed alongside them.
var clutterClasses = map[string]struct{}{
	"nav":           {},
	"navigation":    {},
	"sidebar":       {},
	"menu":          {},
	"ads":           {},
	"advertisement": {},
	"social":        {},
	"share":         {},
	"comments":      {},
	"related":       {},
	"popup":         {},
	"modal":         {},
}

// shouldSkip reports whether an element renders nothing under any
// circumstances: script-like tags, the hidden attribute, or an
// accessibility-only class.
func shouldSkip(n *html.Node) bool {
	if _, ok := skipTags[n.Data]; ok {
		return true
	}
	if _, ok := attr(n, "hidden"); ok {
		return true
	}
	return hasClassIn(n, hiddenClasses)
}

// isClutter reports whether an element is navigation chrome or similar
// page furniture.
func isClutter(n *html.Node) bool {
	if _, ok := clutterTags[n.Data]; ok {
		return true
	}
	return hasClassIn(n, clutterClasses)
}

func hasClassIn(n *html.Node, classes map[string]struct{}) bool {
	cls, ok := attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(cls) {
		if _, ok := classes[c]; ok {
			return true
		}
	}
	return false
}

// buildSkipSet pre-marks every clutter, hidden, or script-like subtree
// in the document. Once an element matches, its whole subtree is added
// and no predicates are evaluated below it, so the set is closed under
// descent. The set is built once per document and never mutated after.
func buildSkipSet(doc *goquery.Document) map[*html.Node]struct{} {
	skip := make(map[*html.Node]struct{})
	// Start below the root <html> element; the root itself is never a
	// skip candidate.
	for n := doc.Get(0).FirstChild; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				collectSkipped(c, skip)
			}
		}
	}
	return skip
}

func collectSkipped(n *html.Node, skip map[*html.Node]struct{}) {
	if shouldSkip(n) || isClutter(n) {
		addSubtree(n, skip)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			collectSkipped(c, skip)
		}
	}
}

func addSubtree(n *html.Node, skip map[*html.Node]struct{}) {
	skip[n] = struct{}{}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		addSubtree(c, skip)
	}
}
