package author

import (
	"context"
)

// Service defines the business operations of the author domain.
type Service interface {
	// Create adds a new author, cascading creation of any nested books.
	// All checks happen before any write:
	//   - request validation (blank fields, birth date in the past)
	//   - duplicate name -> ErrAuthorExists
	//   - duplicate ISBN within the payload itself -> validation error
	//   - ISBN already in the store -> conflict error
	Create(ctx context.Context, req *CreateAuthorRequest) (*AuthorResponse, error)

	// GetByID returns one author with books populated.
	// Errors: ErrAuthorNotFound.
	GetByID(ctx context.Context, id int64) (*AuthorResponse, error)

	// GetAll returns every author with books eagerly populated.
	GetAll(ctx context.Context) ([]AuthorResponse, error)

	// Delete removes the author and every book it owns. Irreversible.
	// Errors: ErrAuthorNotFound, ErrAuthorInUse when magazines still
	// reference the author.
	Delete(ctx context.Context, id int64) error
}
