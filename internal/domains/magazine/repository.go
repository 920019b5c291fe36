package magazine

import (
	"context"
)

// Repository defines data access for magazines. Reads return entities with
// author projections populated in association order.
type Repository interface {
	// Create inserts the publication row, the magazine row and the
	// author associations in one transaction, preserving the given
	// author order. Returns the entity with its generated id.
	// Errors: ErrIssueNumberExists on a collision (constraint backstop).
	Create(ctx context.Context, entity *Magazine) (*Magazine, error)

	// GetByID returns ErrMagazineNotFound if the id does not exist.
	GetByID(ctx context.Context, id int64) (*Magazine, error)

	// GetAll returns every magazine, store-defined order.
	GetAll(ctx context.Context) ([]Magazine, error)

	// ExistsByIssueNumber is the duplicate-issue pre-check.
	ExistsByIssueNumber(ctx context.Context, issueNumber int) (bool, error)

	// FindAuthorByID resolves an author projection for a create.
	// Returns (nil, nil) when the id does not exist.
	FindAuthorByID(ctx context.Context, id int64) (*AuthorBasic, error)

	// Delete removes the magazine, its associations and its publication
	// row; the authors themselves are untouched. Reports whether a
	// record existed.
	Delete(ctx context.Context, id int64) (bool, error)
}
