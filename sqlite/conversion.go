package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagemd"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagemd.ConversionService = (*ConversionService)(nil)

// ConversionService implements pagemd.ConversionService using SQLite.
type ConversionService struct {
	db *DB
}

// NewConversionService creates a new ConversionService.
func NewConversionService(db *DB) *ConversionService {
	return &ConversionService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
// Used to detect whether a stored conversion is stale for a source URL.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateConversion stores a new conversion, assigning ID, content hash,
// and creation time.
func (s *ConversionService) CreateConversion(ctx context.Context, c *pagemd.Conversion) error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.ID = uuid.New().String()
	c.CreatedAt = time.Now().UTC()
	c.ContentHash = hashContent(c.Result.Markdown)

	links, err := json.Marshal(c.Result.Links)
	if err != nil {
		return fmt.Errorf("failed to encode links: %w", err)
	}
	images, err := json.Marshal(c.Result.Images)
	if err != nil {
		return fmt.Errorf("failed to encode images: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO conversions (id, source_url, title, content_hash, markdown, readable,
			with_citations, ref_block, with_references, plain, links, images, fallback, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.SourceURL, c.Title, c.ContentHash, c.Result.Markdown, c.Result.Readable,
		c.Result.WithCitations, c.Result.References, c.Result.WithReferences, c.Result.Plain,
		string(links), string(images), boolToInt(c.Result.Fallback),
		c.CreatedAt.Format(time.RFC3339))

	return err
}

// FindConversionByID retrieves a conversion by ID.
func (s *ConversionService) FindConversionByID(ctx context.Context, id string) (*pagemd.Conversion, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, content_hash, markdown, readable, with_citations,
			ref_block, with_references, plain, links, images, fallback, created_at
		FROM conversions
		WHERE id = ?
	`, id)

	c, err := scanConversion(row.Scan)
	if err == sql.ErrNoRows {
		return nil, pagemd.Errorf(pagemd.ENOTFOUND, "conversion not found")
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FindConversions retrieves conversions matching the filter.
func (s *ConversionService) FindConversions(ctx context.Context, filter pagemd.ConversionFilter) ([]*pagemd.Conversion, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, source_url, title, content_hash, markdown, readable,
		with_citations, ref_block, with_references, plain, links, images, fallback, created_at
		FROM conversions WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	switch filter.SortBy {
	case pagemd.SortBySourceURL:
		query.WriteString(" ORDER BY source_url ASC")
	default:
		query.WriteString(" ORDER BY created_at DESC")
	}

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversions []*pagemd.Conversion
	for rows.Next() {
		c, err := scanConversion(rows.Scan)
		if err != nil {
			return nil, err
		}
		conversions = append(conversions, c)
	}
	return conversions, rows.Err()
}

// DeleteConversion permanently removes a conversion.
func (s *ConversionService) DeleteConversion(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM conversions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return pagemd.Errorf(pagemd.ENOTFOUND, "conversion not found")
	}
	return nil
}

// scanConversion reads one conversion row via the given scan function.
func scanConversion(scan func(dest ...any) error) (*pagemd.Conversion, error) {
	var c pagemd.Conversion
	var r pagemd.Result
	var links, images, createdAt string
	var fallback int

	err := scan(&c.ID, &c.SourceURL, &c.Title, &c.ContentHash, &r.Markdown, &r.Readable,
		&r.WithCitations, &r.References, &r.WithReferences, &r.Plain, &links, &images,
		&fallback, &createdAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(links), &r.Links); err != nil {
		return nil, fmt.Errorf("failed to decode links: %w", err)
	}
	if err := json.Unmarshal([]byte(images), &r.Images); err != nil {
		return nil, fmt.Errorf("failed to decode images: %w", err)
	}
	for _, link := range r.Links {
		r.URLs = append(r.URLs, link.URL)
	}
	r.Fallback = fallback != 0

	c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	c.Result = &r
	return &c, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
