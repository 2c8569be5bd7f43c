// Command pagemd converts HTML pages to Markdown.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagemd"
	"github.com/fwojciec/pagemd/goquery"
	"github.com/fwojciec/pagemd/htmltomarkdown"
	pagemdhttp "github.com/fwojciec/pagemd/http"
	"github.com/fwojciec/pagemd/readability"
	pagemdslog "github.com/fwojciec/pagemd/slog"
	"github.com/fwojciec/pagemd/sqlite"
	"github.com/fwojciec/pagemd/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagemd"),
		kong.Description("Convert HTML pages to Markdown"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		args = []string{"--help"}
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	var fetcher pagemd.Fetcher = pagemdhttp.NewFetcher(pagemdhttp.WithTimeout(cli.Timeout))
	defer fetcher.Close()

	var domConverter pagemd.Converter = goquery.NewConverter()
	var libConverter pagemd.Converter = htmltomarkdown.NewConverter()

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = pagemdslog.NewLoggingFetcher(fetcher, logger)
		domConverter = pagemdslog.NewLoggingConverter(domConverter, logger)
		libConverter = pagemdslog.NewLoggingConverter(libConverter, logger)
	}

	deps := &Dependencies{
		Ctx:      ctx,
		Stdin:    stdin,
		Stdout:   stdout,
		Stderr:   stderr,
		Fetcher:  fetcher,
		Sitemaps: pagemdhttp.NewSitemapService(nil),
		Converters: map[string]pagemd.Converter{
			"dom":     domConverter,
			"library": libConverter,
		},
		Extractors: map[string]pagemd.Extractor{
			"trafilatura": trafilatura.NewExtractor(),
			"readability": readability.NewExtractor(),
		},
		OpenConversions: openConversions,
	}

	return kctx.Run(deps)
}

// openConversions opens the SQLite conversion store at path.
func openConversions(path string) (pagemd.ConversionService, func() error, error) {
	db := sqlite.NewDB(path)
	if err := db.Open(); err != nil {
		return nil, nil, err
	}
	return sqlite.NewConversionService(db), db.Close, nil
}
