package pagemd_test

import (
	"testing"

	"github.com/fwojciec/pagemd"
	"github.com/stretchr/testify/assert"
)

func TestConversion_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid conversion passes", func(t *testing.T) {
		t.Parallel()

		c := &pagemd.Conversion{
			SourceURL: "https://example.com/page",
			Result:    pagemd.BuildResult("text", nil, false),
		}

		assert.NoError(t, c.Validate())
	})

	t.Run("requires a source URL", func(t *testing.T) {
		t.Parallel()

		c := &pagemd.Conversion{Result: pagemd.BuildResult("text", nil, false)}

		assert.Equal(t, pagemd.EINVALID, pagemd.ErrorCode(c.Validate()))
	})

	t.Run("requires a result", func(t *testing.T) {
		t.Parallel()

		c := &pagemd.Conversion{SourceURL: "https://example.com/page"}

		assert.Equal(t, pagemd.EINVALID, pagemd.ErrorCode(c.Validate()))
	})
}
