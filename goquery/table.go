package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// Block-level tags that signal a table cell is used for layout rather
// than data.
var blockTags = map[string]struct{}{
	"div":     {},
	"p":       {},
	"ul":      {},
	"ol":      {},
	"table":   {},
	"article": {},
	"section": {},
	"header":  {},
	"footer":  {},
	"nav":     {},
	"aside":   {},
}

// walkTable renders a table subtree. Data tables become pipe-delimited
// grids; layout tables (nested tables, block-level cell content, or
// long narrow shapes) are recursed into as ordinary content instead.
func (w *walker) walkTable(n *html.Node, buf *strings.Builder) {
	// thead/tbody/tfoot reached directly just recurse into their rows.
	if n.Data != "table" {
		w.walkChildren(n, buf)
		return
	}

	hasNested := hasDescendantTable(n)
	rows := directChildren(n, "tr")
	if len(rows) == 0 {
		// Rows may sit one level down inside section wrappers. The
		// search stops there; deeper rows belong to nested tables.
		for _, sec := range directChildren(n, "thead", "tbody", "tfoot") {
			rows = append(rows, directChildren(sec, "tr")...)
		}
	}
	if len(rows) == 0 {
		if hasNested {
			w.walkChildren(n, buf)
		}
		return
	}

	firstCells := directCells(rows[0])

	hasBlockChildren := false
	for _, cell := range firstCells {
		for c := cell.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if _, ok := blockTags[c.Data]; ok {
				hasBlockChildren = true
				break
			}
		}
		if hasBlockChildren {
			break
		}
	}

	looksLikeLayout := len(firstCells) >= 1 && len(firstCells) <= 2 && len(rows) >= 15

	if hasNested || hasBlockChildren || looksLikeLayout {
		if w.dedupeTables {
			w.layoutDepth++
			w.walkChildren(n, buf)
			w.layoutDepth--
		} else {
			w.walkChildren(n, buf)
		}
		return
	}

	// Data table.
	var mdRows []string
	firstHasTH := false
	firstCellCount := 0

	for _, row := range rows {
		cells := directCells(row)
		if len(cells) == 0 {
			continue
		}
		parts := make([]string, 0, len(cells))
		hasTH := false
		for _, cell := range cells {
			parts = append(parts, textContent(cell))
			if cell.Data == "th" {
				hasTH = true
			}
		}
		if len(mdRows) == 0 {
			firstHasTH = hasTH
			firstCellCount = len(parts)
		}
		mdRows = append(mdRows, "| "+strings.Join(parts, " | ")+" |")
	}

	if len(mdRows) == 0 {
		return
	}

	if firstHasTH && firstCellCount > 0 {
		sep := make([]string, firstCellCount)
		for i := range sep {
			sep[i] = "---"
		}
		sepRow := "| " + strings.Join(sep, " | ") + " |"
		mdRows = append(mdRows[:1], append([]string{sepRow}, mdRows[1:]...)...)
	}

	for _, row := range mdRows {
		buf.WriteString(row)
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
}

// hasDescendantTable reports whether any descendant of n (excluding n
// itself) is a table element.
func hasDescendantTable(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			if c.Data == "table" {
				return true
			}
			if hasDescendantTable(c) {
				return true
			}
		}
	}
	return false
}
