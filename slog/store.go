package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/slidedoc"
)

// Ensure LoggingDocumentStore implements slidedoc.DocumentStore.
var _ slidedoc.DocumentStore = (*LoggingDocumentStore)(nil)

// LoggingDocumentStore wraps a DocumentStore with debug logging.
type LoggingDocumentStore struct {
	next   slidedoc.DocumentStore
	logger *slog.Logger
}

// NewLoggingDocumentStore creates a new LoggingDocumentStore.
func NewLoggingDocumentStore(next slidedoc.DocumentStore, logger *slog.Logger) *LoggingDocumentStore {
	return &LoggingDocumentStore{next: next, logger: logger}
}

// ReadSource delegates to the wrapped store and logs the operation.
func (s *LoggingDocumentStore) ReadSource(ctx context.Context, spec *slidedoc.DocumentSpec) (data []byte, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("read source",
			"source", spec.Source,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadSource(ctx, spec)
}

// WriteDocument delegates to the wrapped store and logs the operation.
func (s *LoggingDocumentStore) WriteDocument(ctx context.Context, doc *slidedoc.Document) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("write document",
			"destination", doc.Spec.Destination,
			"bytes", len(doc.Content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteDocument(ctx, doc)
}

// DocumentExists delegates to the wrapped store.
func (s *LoggingDocumentStore) DocumentExists(ctx context.Context, spec *slidedoc.DocumentSpec) (bool, error) {
	return s.next.DocumentExists(ctx, spec)
}
