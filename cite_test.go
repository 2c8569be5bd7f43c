package pagemd_test

import (
	"net/url"
	"testing"

	"github.com/fwojciec/pagemd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseURL(t *testing.T, s string) *url.URL {
	t.Helper()
	u, err := url.Parse(s)
	require.NoError(t, err)
	return u
}

func TestExtractCitations(t *testing.T) {
	t.Parallel()

	t.Run("assigns dense sequential numbers in occurrence order", func(t *testing.T) {
		t.Parallel()

		md := "[A](https://a.com) and [B](https://b.com) and [C](https://c.com)"

		links, result := pagemd.ExtractCitations(md, nil)

		require.Len(t, links, 3)
		for i, link := range links {
			assert.Equal(t, i+1, link.CitationNumber)
		}
		assert.Equal(t, "A[1] and B[2] and C[3]", result)
	})

	t.Run("skips image syntax", func(t *testing.T) {
		t.Parallel()

		md := "![pic](https://img.com/a.png) then [link](https://a.com)"

		links, result := pagemd.ExtractCitations(md, nil)

		require.Len(t, links, 1)
		assert.Equal(t, "link", links[0].Text)
		assert.Equal(t, 1, links[0].CitationNumber)
		assert.Contains(t, result, "![pic](https://img.com/a.png)")
		assert.Contains(t, result, "link[1]")
	})

	t.Run("resolves relative URLs against the base", func(t *testing.T) {
		t.Parallel()

		base := mustParseURL(t, "https://example.com/docs/")

		links, _ := pagemd.ExtractCitations("[guide](/guide)", base)

		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/guide", links[0].URL)
	})

	t.Run("captures titles", func(t *testing.T) {
		t.Parallel()

		links, _ := pagemd.ExtractCitations(`[a](https://a.com "Site A")`, nil)

		require.Len(t, links, 1)
		assert.Equal(t, "Site A", links[0].Title)
		assert.Equal(t, "https://a.com", links[0].URL)
	})

	t.Run("duplicate links each get their own number", func(t *testing.T) {
		t.Parallel()

		md := "[x](https://a.com) [x](https://a.com)"

		links, result := pagemd.ExtractCitations(md, nil)

		require.Len(t, links, 2)
		assert.Equal(t, "x[1] x[2]", result)
	})

	t.Run("no links yields no citations", func(t *testing.T) {
		t.Parallel()

		links, result := pagemd.ExtractCitations("just text", nil)

		assert.Empty(t, links)
		assert.Equal(t, "just text", result)
	})
}

func TestBuildReferences(t *testing.T) {
	t.Parallel()

	t.Run("renders one line per citation", func(t *testing.T) {
		t.Parallel()

		refs := pagemd.BuildReferences([]pagemd.Link{
			{Text: "A", URL: "https://a.com", CitationNumber: 1},
			{Text: "B", URL: "https://b.com", Title: "Site B", CitationNumber: 2},
		})

		assert.Contains(t, refs, "## References\n")
		assert.Contains(t, refs, "[1]: https://a.com\n")
		assert.Contains(t, refs, "[2]: https://b.com \"Site B\"\n")
	})

	t.Run("empty for no links", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, pagemd.BuildReferences(nil))
	})
}

func TestStripLinks(t *testing.T) {
	t.Parallel()

	t.Run("keeps visible text only", func(t *testing.T) {
		t.Parallel()

		result := pagemd.StripLinks("go to [the docs](https://docs.example.com) now")

		assert.Equal(t, "go to the docs now", result)
	})

	t.Run("never leaves link syntax behind", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"[a](https://a.com)",
			"![img](https://a.com/x.png)",
			"mixed [a](https://a.com) and ![b](https://b.com/y.png) text",
			`[t](https://a.com "title")`,
		}
		for _, input := range inputs {
			assert.NotContains(t, pagemd.StripLinks(input), "](")
		}
	})
}

func TestExtractImages(t *testing.T) {
	t.Parallel()

	t.Run("collects images in occurrence order", func(t *testing.T) {
		t.Parallel()

		md := `![first](https://a.com/1.png) text ![second](https://a.com/2.png "Two")`

		images := pagemd.ExtractImages(md)

		require.Len(t, images, 2)
		assert.Equal(t, "first", images[0].Alt)
		assert.Equal(t, "https://a.com/1.png", images[0].URL)
		assert.Equal(t, "second", images[1].Alt)
		assert.Equal(t, "Two", images[1].Title)
	})

	t.Run("allows empty alt", func(t *testing.T) {
		t.Parallel()

		images := pagemd.ExtractImages("![](https://a.com/1.png)")

		require.Len(t, images, 1)
		assert.Empty(t, images[0].Alt)
	})

	t.Run("ignores plain links", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, pagemd.ExtractImages("[a](https://a.com)"))
	})
}

func TestBuildResult(t *testing.T) {
	t.Parallel()

	t.Run("assembles all variants", func(t *testing.T) {
		t.Parallel()

		raw := "# Title\n\n[A](https://a.com) and ![pic](https://a.com/p.png)"

		result := pagemd.BuildResult(raw, nil, false)

		assert.Equal(t, raw, result.Markdown)
		assert.Contains(t, result.WithCitations, "A[1]")
		assert.Contains(t, result.References, "[1]: https://a.com")
		assert.Contains(t, result.WithReferences, "A[1]")
		assert.Contains(t, result.WithReferences, "## References")
		assert.NotContains(t, result.Plain, "](")
		assert.Equal(t, []string{"https://a.com"}, result.URLs)
		require.Len(t, result.Images, 1)
		assert.Equal(t, "pic", result.Images[0].Alt)
		assert.False(t, result.Fallback)
	})

	t.Run("no references block when there are no links", func(t *testing.T) {
		t.Parallel()

		result := pagemd.BuildResult("plain text", nil, false)

		assert.Empty(t, result.References)
		assert.Equal(t, result.WithCitations, result.WithReferences)
		assert.Empty(t, result.URLs)
	})
}

func TestResultVariant(t *testing.T) {
	t.Parallel()

	result := pagemd.BuildResult("text [a](https://a.com)", nil, false)

	t.Run("returns each named variant", func(t *testing.T) {
		t.Parallel()

		for name, want := range map[string]string{
			pagemd.VariantRaw:        result.Markdown,
			pagemd.VariantReadable:   result.Readable,
			pagemd.VariantCitations:  result.WithCitations,
			pagemd.VariantReferences: result.References,
			pagemd.VariantFull:       result.WithReferences,
			pagemd.VariantPlain:      result.Plain,
		} {
			got, err := result.Variant(name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		t.Parallel()

		_, err := result.Variant("bogus")

		assert.Equal(t, pagemd.EINVALID, pagemd.ErrorCode(err))
	})
}
