package pagemd

// ExtractResult holds the extracted main content of an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML with boilerplate
	// (nav, footer, sidebar, ads) removed.
	ContentHTML string
}

// Extractor reduces a raw HTML page to its main content. It can be run
// ahead of a Converter to pre-filter boilerplate with an independent
// heuristic.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
