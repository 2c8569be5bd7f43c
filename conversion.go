package pagemd

import (
	"context"
	"time"
)

// Conversion is a persisted conversion result for one source page.
type Conversion struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	ContentHash string    `json:"contentHash"`
	Result      *Result   `json:"result"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the conversion contains invalid fields.
func (c *Conversion) Validate() error {
	if c.SourceURL == "" {
		return Errorf(EINVALID, "conversion source URL required")
	}
	if c.Result == nil {
		return Errorf(EINVALID, "conversion result required")
	}
	return nil
}

// ConversionSort represents the sort order for conversion queries.
type ConversionSort string

// Sort orders for ConversionFilter.
const (
	SortByCreatedAt ConversionSort = "created_at"
	SortBySourceURL ConversionSort = "source_url"
)

// ConversionFilter represents a filter for FindConversions.
type ConversionFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy ConversionSort `json:"sortBy"`
}

// ConversionService persists and retrieves conversion results.
type ConversionService interface {
	// CreateConversion stores a new conversion, assigning its ID,
	// content hash, and creation time.
	CreateConversion(ctx context.Context, c *Conversion) error

	// FindConversionByID retrieves a conversion by ID.
	// Returns ENOTFOUND if it does not exist.
	FindConversionByID(ctx context.Context, id string) (*Conversion, error)

	// FindConversions retrieves conversions matching the filter.
	FindConversions(ctx context.Context, filter ConversionFilter) ([]*Conversion, error)

	// DeleteConversion permanently removes a conversion.
	// Returns ENOTFOUND if it does not exist.
	DeleteConversion(ctx context.Context, id string) error
}
