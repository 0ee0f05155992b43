package slidedoc

import (
	"context"
	"time"
)

// Conversion records the last successful conversion of a destination.
// A batch run uses it to skip documents whose inputs have not changed.
type Conversion struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	Title       string    `json:"title"`
	SourceHash  string    `json:"sourceHash"`
	ConvertedAt time.Time `json:"convertedAt"`
}

// Validate returns an error if the conversion contains invalid fields.
func (c *Conversion) Validate() error {
	if c.Destination == "" {
		return Errorf(EINVALID, "conversion destination required")
	}
	if c.SourceHash == "" {
		return Errorf(EINVALID, "conversion source hash required")
	}
	return nil
}

// ConversionService represents a service for managing conversion records.
type ConversionService interface {
	// FindConversionByDestination retrieves the record for a destination.
	// Returns ENOTFOUND if no conversion was recorded.
	FindConversionByDestination(ctx context.Context, destination string) (*Conversion, error)

	// SaveConversion creates or replaces the record for c.Destination.
	SaveConversion(ctx context.Context, c *Conversion) error

	// DeleteConversion removes the record for a destination.
	// Returns ENOTFOUND if no conversion was recorded.
	DeleteConversion(ctx context.Context, destination string) error
}
