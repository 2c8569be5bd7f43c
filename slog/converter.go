// Package slog provides logging decorators for pagemd interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagemd"
)

// Ensure LoggingConverter implements pagemd.Converter.
var _ pagemd.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with timing and outcome logging.
type LoggingConverter struct {
	next   pagemd.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next pagemd.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the outcome.
func (c *LoggingConverter) Convert(html string, opts pagemd.Options) (*pagemd.Result, error) {
	begin := time.Now()
	result, err := c.next.Convert(html, opts)
	if err != nil {
		c.logger.Error("conversion failed",
			"htmlBytes", len(html),
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	c.logger.Info("conversion",
		"htmlBytes", len(html),
		"markdownBytes", len(result.Markdown),
		"links", len(result.Links),
		"images", len(result.Images),
		"fallback", result.Fallback,
		"duration", time.Since(begin),
	)
	return result, nil
}
