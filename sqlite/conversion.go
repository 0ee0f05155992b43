package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/slidedoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ slidedoc.ConversionService = (*ConversionService)(nil)

// ConversionService implements slidedoc.ConversionService using SQLite.
type ConversionService struct {
	db *DB
}

// NewConversionService creates a new ConversionService.
func NewConversionService(db *DB) *ConversionService {
	return &ConversionService{db: db}
}

// FindConversionByDestination retrieves the record for a destination.
func (s *ConversionService) FindConversionByDestination(ctx context.Context, destination string) (*slidedoc.Conversion, error) {
	var c slidedoc.Conversion
	var convertedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, destination, title, source_hash, converted_at
		FROM conversions
		WHERE destination = ?
	`, destination).Scan(&c.ID, &c.Destination, &c.Title, &c.SourceHash, &convertedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, slidedoc.Errorf(slidedoc.ENOTFOUND, "no conversion recorded for %q", destination)
	}
	if err != nil {
		return nil, err
	}

	c.ConvertedAt, err = parseRFC3339(convertedAt, "converted_at")
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// SaveConversion creates or replaces the record for c.Destination. The ID
// of an existing record is kept; ID and ConvertedAt are set on c.
func (s *ConversionService) SaveConversion(ctx context.Context, c *slidedoc.Conversion) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.ConvertedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions (id, destination, title, source_hash, converted_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(destination) DO UPDATE SET
			title = excluded.title,
			source_hash = excluded.source_hash,
			converted_at = excluded.converted_at
	`, c.ID, c.Destination, c.Title, c.SourceHash, c.ConvertedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	return s.db.QueryRowContext(ctx,
		`SELECT id FROM conversions WHERE destination = ?`, c.Destination,
	).Scan(&c.ID)
}

// DeleteConversion removes the record for a destination.
func (s *ConversionService) DeleteConversion(ctx context.Context, destination string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM conversions WHERE destination = ?`, destination)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return slidedoc.Errorf(slidedoc.ENOTFOUND, "no conversion recorded for %q", destination)
	}
	return nil
}
