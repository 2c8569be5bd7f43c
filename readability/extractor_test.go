package readability_test

import (
	"testing"

	"github.com/fwojciec/pagemd"
	"github.com/fwojciec/pagemd/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts article content and title", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>A Long Read</title></head>
<body>
<nav>Home About Contact</nav>
<article>
<h1>A Long Read</h1>
<p>The first paragraph of a reasonably substantial article body that the
readability heuristics will score as primary content.</p>
<p>A second paragraph continuing the article with more prose so the
content scoring has enough text to work with.</p>
</article>
<footer>Copyright</footer>
</body>
</html>`

		ext := readability.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
		assert.Contains(t, result.ContentHTML, "first paragraph")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		ext := readability.NewExtractor()
		_, err := ext.Extract("")

		assert.Equal(t, pagemd.EINVALID, pagemd.ErrorCode(err))
	})
}
