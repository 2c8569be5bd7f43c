package pagemd

import (
	"regexp"
	"strings"
)

// Compiled once and shared; all are read-only after init.
var (
	reMultiNewline = regexp.MustCompile(`\n{3,}`)
	reMultiSpace   = regexp.MustCompile(` {2,}`)
	reEmptyBullet  = regexp.MustCompile(`\n- \n`)
	reEmptyNumber  = regexp.MustCompile(`\n\d+\. \n`)
	reHeadingLead  = regexp.MustCompile(`\n+(#{1,6})`)
	reHeadingTail  = regexp.MustCompile(`(#{1,6}.*)\n+`)
)

// CleanMarkdown normalizes freshly rendered Markdown: runs of three or
// more newlines collapse to two, runs of two or more spaces collapse to
// one, empty bullet lines are dropped, and the whole text is trimmed.
// The function is idempotent.
func CleanMarkdown(md string) string {
	s := reMultiNewline.ReplaceAllString(md, "\n\n")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reEmptyBullet.ReplaceAllString(s, "\n")
	s = reEmptyNumber.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// CleanMarkdownReadable normalizes Markdown for human reading. It
// collapses newline runs and drops empty bullets like CleanMarkdown,
// and additionally forces every heading onto its own paragraph.
// Multi-space runs are intentionally left intact in this variant.
func CleanMarkdownReadable(md string) string {
	s := reMultiNewline.ReplaceAllString(md, "\n\n")
	s = reEmptyBullet.ReplaceAllString(s, "\n")
	s = reHeadingLead.ReplaceAllString(s, "\n\n${1}")
	s = reHeadingTail.ReplaceAllString(s, "${1}\n\n")
	return strings.TrimSpace(s)
}
