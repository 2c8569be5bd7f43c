package pagemd

// Options controls a single conversion.
type Options struct {
	// BaseURL is the absolute URL relative hrefs and srcs are resolved
	// against. Empty or non-absolute values disable resolution and
	// attribute values are used verbatim.
	BaseURL string

	// DedupeLayoutTables suppresses naive pipe rows emitted from table
	// rows encountered inside a detected layout table. Deeply nested
	// layout markup otherwise cascades into meaningless single-column
	// rows.
	DedupeLayoutTables bool
}

// Link is a hyperlink discovered in the converted Markdown. Citation
// numbers are dense, 1-based, and assigned in first-occurrence order
// within a single conversion.
type Link struct {
	Text           string `json:"text"`
	URL            string `json:"url"`
	Title          string `json:"title"`
	CitationNumber int    `json:"citationNumber"`
}

// Image is an image discovered in the converted Markdown, in occurrence
// order. Images are not numbered.
type Image struct {
	Alt   string `json:"alt"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Result is the complete output bundle of one conversion. It is owned
// by the caller once returned and shares no state with the converter.
type Result struct {
	// Markdown is the cleaned raw conversion.
	Markdown string `json:"markdown"`

	// Readable is the human-readable variant: headings forced onto
	// their own paragraphs, multi-space runs left intact.
	Readable string `json:"readable"`

	// WithCitations replaces every inline link with text[n] markers.
	WithCitations string `json:"withCitations"`

	// References is the "## References" block listing each citation,
	// or empty when no links were found.
	References string `json:"references"`

	// WithReferences is WithCitations followed by the References block.
	WithReferences string `json:"withReferences"`

	// Plain strips every link and image construct, leaving visible
	// text and alt text only.
	Plain string `json:"plain"`

	Links  []Link  `json:"links"`
	Images []Image `json:"images"`

	// URLs is the flat list of resolved citation URLs, in citation order.
	URLs []string `json:"urls"`

	// Fallback reports whether the sparse-output fallback re-walked the
	// full document.
	Fallback bool `json:"fallback"`
}

// Named output variants of a Result.
const (
	VariantRaw        = "raw"
	VariantReadable   = "readable"
	VariantCitations  = "citations"
	VariantReferences = "references"
	VariantFull       = "full"
	VariantPlain      = "plain"
)

// Variant returns the named output variant of the result.
// Returns EINVALID for unknown names.
func (r *Result) Variant(name string) (string, error) {
	switch name {
	case VariantRaw:
		return r.Markdown, nil
	case VariantReadable:
		return r.Readable, nil
	case VariantCitations:
		return r.WithCitations, nil
	case VariantReferences:
		return r.References, nil
	case VariantFull:
		return r.WithReferences, nil
	case VariantPlain:
		return r.Plain, nil
	}
	return "", Errorf(EINVALID, "unknown variant %q", name)
}

// Converter converts an HTML document into a Result bundle.
//
// Conversion is best-effort by design: malformed HTML still yields some
// result, unresolvable URLs degrade to the raw attribute value, and
// degenerate inputs produce empty-ish bundles rather than errors.
type Converter interface {
	Convert(html string, opts Options) (*Result, error)
}
