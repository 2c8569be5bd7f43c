package pagemd

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Markdown link/image syntax. The link pattern tolerates a leading "!"
// so image matches can be recognized and skipped during citation
// extraction; the image pattern requires it and allows empty alt text.
var (
	reLink  = regexp.MustCompile(`!?\[([^\]]+)\]\(([^)]+?)(?:\s+"([^"]*)")?\)`)
	reImage = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+?)(?:\s+"([^"]*)")?\)`)

	reStripLink  = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	reStripImage = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
)

// ResolveURL resolves a potentially-relative URL against a base.
// Unparsable references degrade to the raw input rather than erroring;
// a nil base disables resolution entirely.
func ResolveURL(raw string, base *url.URL) string {
	if raw == "" {
		return ""
	}
	if base == nil {
		return raw
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return base.ResolveReference(ref).String()
}

// ParseBaseURL parses an absolute base URL. Empty, unparsable, or
// relative input yields nil, which disables URL resolution downstream.
func ParseBaseURL(s string) *url.URL {
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		return nil
	}
	return u
}

// ExtractCitations scans Markdown text left-to-right for inline links,
// assigns each a sequential 1-based citation number, and rewrites the
// link as "text[n]". Image syntax is left untouched. Returns the
// collected links and the rewritten text.
func ExtractCitations(md string, base *url.URL) ([]Link, string) {
	var links []Link
	result := md
	counter := 1

	for _, m := range reLink.FindAllStringSubmatch(md, -1) {
		full, text, rawURL, title := m[0], m[1], m[2], m[3]
		if strings.HasPrefix(full, "!") {
			continue
		}

		links = append(links, Link{
			Text:           text,
			URL:            ResolveURL(rawURL, base),
			Title:          title,
			CitationNumber: counter,
		})

		citation := fmt.Sprintf("%s[%d]", text, counter)
		result = strings.Replace(result, full, citation, 1)
		counter++
	}

	return links, result
}

// BuildReferences renders the "## References" block for the given
// links. Returns an empty string when there are none.
func BuildReferences(links []Link) string {
	if len(links) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("## References\n")
	for _, link := range links {
		fmt.Fprintf(&b, "[%d]: %s", link.CitationNumber, link.URL)
		if link.Title != "" {
			fmt.Fprintf(&b, " %q", link.Title)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// StripLinks removes link and image syntax from Markdown, leaving only
// the visible text and alt text.
func StripLinks(md string) string {
	s := reStripLink.ReplaceAllString(md, "${1}")
	return reStripImage.ReplaceAllString(s, "${1}")
}

// ExtractImages collects image references from Markdown in occurrence
// order.
func ExtractImages(md string) []Image {
	var images []Image
	for _, m := range reImage.FindAllStringSubmatch(md, -1) {
		images = append(images, Image{Alt: m[1], URL: m[2], Title: m[3]})
	}
	return images
}

// BuildResult runs the post-processing passes over cleaned raw Markdown
// and assembles the full Result bundle. Shared by every conversion
// engine so all bundles have identical shape and invariants.
func BuildResult(raw string, base *url.URL, fallback bool) *Result {
	links, withCitations := ExtractCitations(raw, base)
	references := BuildReferences(links)

	withReferences := withCitations
	if references != "" {
		withReferences = withCitations + "\n\n" + references
	}

	urls := make([]string, 0, len(links))
	for _, link := range links {
		urls = append(urls, link.URL)
	}

	return &Result{
		Markdown:       raw,
		Readable:       CleanMarkdownReadable(raw),
		WithCitations:  withCitations,
		References:     references,
		WithReferences: withReferences,
		Plain:          StripLinks(raw),
		Links:          links,
		Images:         ExtractImages(raw),
		URLs:           urls,
		Fallback:       fallback,
	}
}
