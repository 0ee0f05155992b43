package mock

import (
	"context"

	"github.com/fwojciec/slidedoc"
)

var _ slidedoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of slidedoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ slidedoc.DocumentConverter = (*DocumentConverter)(nil)

// DocumentConverter is a mock implementation of slidedoc.DocumentConverter.
type DocumentConverter struct {
	ConvertDocumentFn func(ctx context.Context, html []byte) (string, error)
}

func (c *DocumentConverter) ConvertDocument(ctx context.Context, html []byte) (string, error) {
	return c.ConvertDocumentFn(ctx, html)
}
