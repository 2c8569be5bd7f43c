package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/pagemd"
)

// ConvertCmd converts one HTML document read from a file, a URL, or
// stdin.
type ConvertCmd struct {
	Input string `arg:"" optional:"" help:"File path or URL to convert (default: stdin)"`

	BaseURL        string `help:"Base URL for resolving relative links"`
	Format         string `default:"raw" enum:"raw,readable,citations,references,full,plain,json" help:"Output variant"`
	Engine         string `default:"dom" enum:"dom,library" help:"Conversion engine"`
	Extractor      string `default:"none" enum:"none,trafilatura,readability" help:"Optional main-content pre-extractor"`
	NoDedupeTables bool   `help:"Keep naive rows from nested layout tables"`
	DB             string `help:"SQLite database to also persist the conversion"`
}

// Run executes the convert command.
func (cmd *ConvertCmd) Run(deps *Dependencies) error {
	html, sourceURL, err := cmd.readInput(deps)
	if err != nil {
		return err
	}

	baseURL := cmd.BaseURL
	if baseURL == "" {
		baseURL = sourceURL
	}

	title := ""
	if extractor, err := deps.extractor(cmd.Extractor); err != nil {
		return err
	} else if extractor != nil {
		extracted, err := extractor.Extract(html)
		if err == nil && extracted.ContentHTML != "" {
			html = extracted.ContentHTML
			title = extracted.Title
		}
	}

	converter, err := deps.converter(cmd.Engine)
	if err != nil {
		return err
	}

	result, err := converter.Convert(html, pagemd.Options{
		BaseURL:            baseURL,
		DedupeLayoutTables: !cmd.NoDedupeTables,
	})
	if err != nil {
		return err
	}

	if cmd.DB != "" {
		if err := cmd.persist(deps, sourceURL, title, result); err != nil {
			return err
		}
	}

	return cmd.write(deps.Stdout, result)
}

// readInput loads the HTML to convert. URLs are fetched; anything else
// is treated as a file path; with no argument stdin is read.
func (cmd *ConvertCmd) readInput(deps *Dependencies) (html, sourceURL string, err error) {
	switch {
	case cmd.Input == "":
		b, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), "", nil

	case strings.HasPrefix(cmd.Input, "http://"), strings.HasPrefix(cmd.Input, "https://"):
		html, err := deps.Fetcher.Fetch(deps.Ctx, cmd.Input)
		if err != nil {
			return "", "", err
		}
		return html, cmd.Input, nil

	default:
		b, err := os.ReadFile(cmd.Input)
		if err != nil {
			return "", "", err
		}
		return string(b), "", nil
	}
}

func (cmd *ConvertCmd) persist(deps *Dependencies, sourceURL, title string, result *pagemd.Result) error {
	if sourceURL == "" {
		sourceURL = cmd.BaseURL
	}
	if sourceURL == "" {
		return pagemd.Errorf(pagemd.EINVALID, "persisting requires a URL input or --base-url")
	}

	store, closeStore, err := deps.OpenConversions(cmd.DB)
	if err != nil {
		return err
	}
	defer closeStore()

	return store.CreateConversion(deps.Ctx, &pagemd.Conversion{
		SourceURL: sourceURL,
		Title:     title,
		Result:    result,
	})
}

func (cmd *ConvertCmd) write(w io.Writer, result *pagemd.Result) error {
	if cmd.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	out, err := result.Variant(cmd.Format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
