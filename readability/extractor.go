// Package readability implements pagemd.Extractor using go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/pagemd"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagemd.Extractor at compile time.
var _ pagemd.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*pagemd.ExtractResult, error) {
	if rawHTML == "" {
		return nil, pagemd.Errorf(pagemd.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &pagemd.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
