// Package slog provides logging decorators for slidedoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/slidedoc"
)

// Ensure LoggingDocumentConverter implements slidedoc.DocumentConverter.
var _ slidedoc.DocumentConverter = (*LoggingDocumentConverter)(nil)

// LoggingDocumentConverter wraps a DocumentConverter with debug logging.
type LoggingDocumentConverter struct {
	next   slidedoc.DocumentConverter
	name   string
	logger *slog.Logger
}

// NewLoggingDocumentConverter creates a new LoggingDocumentConverter. name
// identifies the wrapped converter in log lines.
func NewLoggingDocumentConverter(next slidedoc.DocumentConverter, name string, logger *slog.Logger) *LoggingDocumentConverter {
	return &LoggingDocumentConverter{next: next, name: name, logger: logger}
}

// ConvertDocument delegates to the wrapped converter and logs the operation.
func (c *LoggingDocumentConverter) ConvertDocument(ctx context.Context, html []byte) (md string, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("convert document",
			"converter", c.name,
			"in", len(html),
			"out", len(md),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.ConvertDocument(ctx, html)
}
