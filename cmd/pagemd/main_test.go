package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	main "github.com/fwojciec/pagemd/cmd/pagemd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("converts stdin end to end", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		stdin := strings.NewReader(`<html><body><h1>Hello</h1><p>World.</p></body></html>`)

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"convert"}, stdin, &stdout, &stderr)

		require.NoError(t, err)
		assert.Equal(t, "# Hello\n\nWorld.\n", stdout.String())
	})

	t.Run("selects the library engine", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		stdin := strings.NewReader(`<html><body><h1>Hello</h1></body></html>`)

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"convert", "--engine", "library"}, stdin, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# Hello")
	})

	t.Run("verbose logs conversion details to stderr", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		stdin := strings.NewReader(`<html><body><p>text</p></body></html>`)

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"--verbose", "convert"}, stdin, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "markdownBytes")
	})

	t.Run("rejects unknown flags", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"convert", "--bogus"}, strings.NewReader(""), &stdout, &stderr)

		assert.Error(t, err)
	})
}
