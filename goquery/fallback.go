package goquery

import "strings"

// Fallback thresholds. A short HTML input is trusted outright; larger
// inputs that convert to almost nothing get a second, unrestricted pass.
const (
	minHTMLLen     = 5000
	minMarkdownLen = 400
	minRatio       = 0.01
)

// shouldFallback decides whether the primary, main-content-restricted
// pass under-extracted and the whole document should be re-walked.
// Checks run in order; the first match wins.
func shouldFallback(html, md, baseURL string) bool {
	htmlLen := len(html)
	mdLen := len(md)

	if mdLen == 0 {
		return true
	}
	if htmlLen < minHTMLLen {
		return false
	}
	if mdLen < minMarkdownLen {
		return true
	}
	if float64(mdLen)/float64(htmlLen) < minRatio {
		return true
	}

	// Hacker News threads render almost entirely outside semantic
	// content containers; missing permalinks means the comments were
	// filtered away.
	if strings.Contains(baseURL, "news.ycombinator.com") && !strings.Contains(md, "item?id=") {
		return true
	}

	return false
}
