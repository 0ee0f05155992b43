package mock

import (
	"context"

	"github.com/fwojciec/slidedoc"
)

var _ slidedoc.ConversionService = (*ConversionService)(nil)

// ConversionService is a mock implementation of slidedoc.ConversionService.
type ConversionService struct {
	FindConversionByDestinationFn func(ctx context.Context, destination string) (*slidedoc.Conversion, error)
	SaveConversionFn              func(ctx context.Context, c *slidedoc.Conversion) error
	DeleteConversionFn            func(ctx context.Context, destination string) error
}

func (s *ConversionService) FindConversionByDestination(ctx context.Context, destination string) (*slidedoc.Conversion, error) {
	return s.FindConversionByDestinationFn(ctx, destination)
}

func (s *ConversionService) SaveConversion(ctx context.Context, c *slidedoc.Conversion) error {
	return s.SaveConversionFn(ctx, c)
}

func (s *ConversionService) DeleteConversion(ctx context.Context, destination string) error {
	return s.DeleteConversionFn(ctx, destination)
}
