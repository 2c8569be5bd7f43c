// Package fs provides file-based output for converted pages.
package fs

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagemd"
)

// URLToPath converts a page URL to a relative markdown file path.
// Example: https://example.com/docs/api/users → docs/api/users.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Root or trailing slash → index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	path = strings.TrimPrefix(path, "/")

	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	return path + ".md", nil
}

// Writer writes one output variant of converted pages under a base
// directory, mirroring the source site's path structure.
type Writer struct {
	dir     string
	variant string
}

// NewWriter creates a Writer that writes the named result variant
// (pagemd.VariantRaw etc.) under dir.
func NewWriter(dir, variant string) *Writer {
	return &Writer{dir: dir, variant: variant}
}

// WritePage writes the page's selected variant to its URL-derived path,
// creating parent directories as needed. Returns the path written.
func (w *Writer) WritePage(page *pagemd.Page) (string, error) {
	if page.Result == nil {
		return "", pagemd.Errorf(pagemd.EINVALID, "page has no conversion result")
	}

	content, err := page.Result.Variant(w.variant)
	if err != nil {
		return "", err
	}

	rel, err := URLToPath(page.URL)
	if err != nil {
		return "", pagemd.Errorf(pagemd.EINVALID, "invalid page URL: %v", err)
	}

	path := filepath.Join(w.dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
