package mock

import (
	"context"

	"github.com/fwojciec/slidedoc"
)

var _ slidedoc.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of slidedoc.DocumentStore.
type DocumentStore struct {
	ReadSourceFn     func(ctx context.Context, spec *slidedoc.DocumentSpec) ([]byte, error)
	WriteDocumentFn  func(ctx context.Context, doc *slidedoc.Document) error
	DocumentExistsFn func(ctx context.Context, spec *slidedoc.DocumentSpec) (bool, error)
}

func (s *DocumentStore) ReadSource(ctx context.Context, spec *slidedoc.DocumentSpec) ([]byte, error) {
	return s.ReadSourceFn(ctx, spec)
}

func (s *DocumentStore) WriteDocument(ctx context.Context, doc *slidedoc.Document) error {
	return s.WriteDocumentFn(ctx, doc)
}

func (s *DocumentStore) DocumentExists(ctx context.Context, spec *slidedoc.DocumentSpec) (bool, error) {
	return s.DocumentExistsFn(ctx, spec)
}
