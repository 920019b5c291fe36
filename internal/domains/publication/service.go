package publication

import (
	"context"

	"catalog-backend/internal/domains/book"
	"catalog-backend/internal/domains/magazine"
)

// Grouped is the full book and magazine listings side by side, not
// projected to the summary shape.
type Grouped struct {
	Books     []book.BookResponse         `json:"books"`
	Magazines []magazine.MagazineResponse `json:"magazines"`
}

// Service composes the book and magazine domains into the unified
// publication view.
type Service interface {
	// List returns one page of the unified listing. Page numbering is
	// zero-based; size is clamped to sane bounds.
	List(ctx context.Context, page, size int) (*Page, error)

	// SearchByTitle matches the query against book titles and magazine
	// titles independently and concatenates the results, books first.
	// No ranking is applied.
	SearchByTitle(ctx context.Context, title string) ([]Summary, error)

	// GetGrouped returns the full book and magazine listings keyed by
	// kind.
	GetGrouped(ctx context.Context) (*Grouped, error)
}
