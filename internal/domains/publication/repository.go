package publication

import (
	"context"
)

// Repository reads the unified publication identity space. Books and
// magazines come back as Summary projections tagged by their stored
// discriminator.
type Repository interface {
	// List returns one offset/limit window over all publications,
	// ordered by id.
	List(ctx context.Context, limit, offset int) ([]Summary, error)

	// Count returns the total number of publications.
	Count(ctx context.Context) (int64, error)

	// SearchByTitle returns publications of one concrete type whose
	// title contains the query, case-insensitively.
	SearchByTitle(ctx context.Context, title string, t Type) ([]Summary, error)
}
