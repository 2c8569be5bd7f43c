package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/pagemd"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool          `short:"v" help:"Log fetch and conversion details to stderr"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`

	Convert ConvertCmd `cmd:"" default:"withargs" help:"Convert a single HTML document to Markdown"`
	Batch   BatchCmd   `cmd:"" help:"Fetch and convert many pages"`
}

// Dependencies holds all services for command execution. Tests inject
// mocks; Main.Run wires the real implementations.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Fetcher  pagemd.Fetcher
	Sitemaps pagemd.SitemapService

	// Converters by engine name ("dom", "library").
	Converters map[string]pagemd.Converter

	// Extractors by name ("trafilatura", "readability").
	Extractors map[string]pagemd.Extractor

	// OpenConversions opens a conversion store at the given path.
	// The returned func closes it.
	OpenConversions func(path string) (pagemd.ConversionService, func() error, error)
}

func (d *Dependencies) converter(engine string) (pagemd.Converter, error) {
	c, ok := d.Converters[engine]
	if !ok {
		return nil, pagemd.Errorf(pagemd.EINVALID, "unknown engine %q", engine)
	}
	return c, nil
}

func (d *Dependencies) extractor(name string) (pagemd.Extractor, error) {
	if name == "" || name == "none" {
		return nil, nil
	}
	e, ok := d.Extractors[name]
	if !ok {
		return nil, pagemd.Errorf(pagemd.EINVALID, "unknown extractor %q", name)
	}
	return e, nil
}
