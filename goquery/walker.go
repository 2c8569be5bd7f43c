package goquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/pagemd"
	"golang.org/x/net/html"
)

// walker renders one document subtree into Markdown. One instance per
// walk; it is never shared between walks.
type walker struct {
	base         *url.URL
	dedupeTables bool
	layoutDepth  int
	skip         map[*html.Node]struct{}
}

// walk renders a single element and everything below it into buf.
func (w *walker) walk(n *html.Node, buf *strings.Builder) {
	if shouldSkip(n) {
		return
	}
	if _, ok := w.skip[n]; ok {
		return
	}

	switch tag := n.Data; tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(tag[1] - '0')
		if text := textContent(n); text != "" {
			buf.WriteByte('\n')
			buf.WriteString(strings.Repeat("#", level))
			buf.WriteByte(' ')
			buf.WriteString(text)
			buf.WriteString("\n\n")
		}

	case "p":
		start := buf.Len()
		w.walkChildren(n, buf)
		if buf.Len() > start {
			buf.WriteString("\n\n")
		}

	case "br":
		buf.WriteByte('\n')

	case "strong", "b":
		if content := w.childrenToString(n); content != "" {
			buf.WriteString("**")
			buf.WriteString(content)
			buf.WriteString("**")
		}

	case "em", "i":
		if content := w.childrenToString(n); content != "" {
			buf.WriteByte('*')
			buf.WriteString(content)
			buf.WriteByte('*')
		}

	case "a":
		w.walkLink(n, buf)

	case "img":
		w.walkImage(n, buf)

	case "ul":
		w.walkList(n, false, buf)

	case "ol":
		w.walkList(n, true, buf)

	case "li":
		// Only reached when <li> appears outside <ul>/<ol>.
		if content := strings.TrimSpace(w.childrenToString(n)); content != "" {
			buf.WriteString("- ")
			buf.WriteString(content)
			buf.WriteByte('\n')
		}

	case "blockquote":
		content := w.childrenToString(n)
		for _, line := range strings.Split(content, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				buf.WriteString("> ")
				buf.WriteString(trimmed)
				buf.WriteByte('\n')
			}
		}
		buf.WriteByte('\n')

	case "code", "tt":
		// Inside <pre> the fence supplies the formatting, so emit the
		// text verbatim with no backticks.
		if n.Parent != nil && n.Parent.Type == html.ElementNode && n.Parent.Data == "pre" {
			buf.WriteString(rawText(n))
		} else if text := textContent(n); text != "" {
			buf.WriteByte('`')
			buf.WriteString(text)
			buf.WriteByte('`')
		}

	case "pre":
		if text := strings.TrimSpace(rawText(n)); text != "" {
			buf.WriteString("```\n")
			buf.WriteString(text)
			buf.WriteString("\n```\n\n")
		}

	case "table", "thead", "tbody", "tfoot":
		w.walkTable(n, buf)

	case "tr":
		// A bare row only shows up while recursing inside a table
		// already classified as layout.
		if w.dedupeTables && w.layoutDepth > 0 {
			w.walkChildren(n, buf)
		} else if cells := directCells(n); len(cells) > 0 {
			buf.WriteString("| ")
			for i, cell := range cells {
				if i > 0 {
					buf.WriteString(" | ")
				}
				buf.WriteString(textContent(cell))
			}
			buf.WriteString(" |\n")
		}

	default:
		// Container elements just recurse.
		w.walkChildren(n, buf)
	}
}

// walkChildren walks element children and appends normalized text nodes
// directly, with no added separators.
func (w *walker) walkChildren(n *html.Node, buf *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			w.walk(c, buf)
		case html.TextNode:
			if s := normalizeSpace(c.Data); s != "" {
				buf.WriteString(s)
			}
		}
	}
}

// childrenToString walks children into a temporary buffer, for inline
// contexts that only emit when the rendered content is non-empty.
func (w *walker) childrenToString(n *html.Node) string {
	var tmp strings.Builder
	w.walkChildren(n, &tmp)
	return tmp.String()
}

func (w *walker) walkLink(n *html.Node, buf *strings.Builder) {
	text := textContent(n)
	href, _ := attr(n, "href")
	if text == "" && href == "" {
		return
	}
	if text == "" || href == "" {
		buf.WriteString(text)
		return
	}
	buf.WriteByte('[')
	buf.WriteString(text)
	buf.WriteString("](")
	buf.WriteString(pagemd.ResolveURL(href, w.base))
	buf.WriteByte(')')
}

func (w *walker) walkImage(n *html.Node, buf *strings.Builder) {
	src, _ := attr(n, "src")
	if src == "" {
		return
	}
	alt, ok := attr(n, "alt")
	if !ok {
		alt = "Image"
	}
	title, _ := attr(n, "title")
	buf.WriteString("![")
	buf.WriteString(alt)
	buf.WriteString("](")
	buf.WriteString(pagemd.ResolveURL(src, w.base))
	if title != "" {
		buf.WriteString(" \"")
		buf.WriteString(title)
		buf.WriteByte('"')
	}
	buf.WriteByte(')')
}

// walkList renders direct <li> children only; nested lists are handled
// when their own <li> is visited, avoiding double counting. Ordered
// item numbers advance only for items that actually emit.
func (w *walker) walkList(n *html.Node, ordered bool, buf *strings.Builder) {
	counter := 1
	for _, li := range directChildren(n, "li") {
		content := strings.TrimSpace(w.childrenToString(li))
		if content == "" {
			continue
		}
		if ordered {
			buf.WriteString(strconv.Itoa(counter))
			buf.WriteString(". ")
			counter++
		} else {
			buf.WriteString("- ")
		}
		buf.WriteString(content)
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
}

// attr returns the value of the named attribute and whether it exists.
func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// directChildren returns direct element children matching any of the
// given tag names, in document order.
func directChildren(n *html.Node, tags ...string) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		for _, tag := range tags {
			if c.Data == tag {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func directCells(n *html.Node) []*html.Node {
	return directChildren(n, "td", "th")
}

// textContent returns the whitespace-normalized text of a subtree: all
// text nodes concatenated, with every whitespace run collapsed to a
// single space and the ends trimmed.
func textContent(n *html.Node) string {
	var parts []string
	collectText(n, &parts)
	return normalizeSpace(strings.Join(parts, ""))
}

// rawText returns the whitespace-preserving text of a subtree, for
// <pre> blocks.
func rawText(n *html.Node) string {
	var parts []string
	collectText(n, &parts)
	return strings.Join(parts, "")
}

func collectText(n *html.Node, parts *[]string) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			*parts = append(*parts, c.Data)
		case html.ElementNode:
			collectText(c, parts)
		}
	}
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
