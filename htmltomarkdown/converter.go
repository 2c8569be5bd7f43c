// Package htmltomarkdown provides an alternative conversion engine
// backed by the html-to-markdown library. It produces the same result
// bundle shape as the DOM-walking engine by sharing the pagemd
// post-processing passes.
package htmltomarkdown

import (
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/pagemd"
)

// Ensure Converter implements pagemd.Converter at compile time.
var _ pagemd.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown. Unlike the DOM engine it performs
// no main-content restriction and no fallback pass; the library has its
// own tolerance for boilerplate.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML into a full result bundle. The library output
// is cleaned and post-processed with the same passes as the DOM engine,
// so citation numbering and whitespace invariants hold here too.
func (c *Converter) Convert(html string, opts pagemd.Options) (*pagemd.Result, error) {
	md, err := c.conv.ConvertString(html)
	if err != nil {
		return nil, err
	}

	base := pagemd.ParseBaseURL(opts.BaseURL)
	raw := pagemd.CleanMarkdown(md)
	return pagemd.BuildResult(raw, base, false), nil
}
