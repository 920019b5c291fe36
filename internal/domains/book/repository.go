package book

import (
	"context"
)

// Repository defines data access for books. Reads return entities with the
// author projection populated.
type Repository interface {
	// Create inserts the publication row and the book row in one
	// transaction. Returns the entity with its generated id.
	// Errors: ErrISBNExists on an ISBN collision (constraint backstop).
	Create(ctx context.Context, entity *Book) (*Book, error)

	// FindByISBN returns (nil, nil) when no book holds the ISBN.
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// GetAll returns every book, store-defined order.
	GetAll(ctx context.Context) ([]Book, error)

	// ExistsByISBN is the duplicate-ISBN pre-check. Also serves the author
	// cascade-create payload validation.
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)

	// FindAuthorByID resolves the author projection for a create.
	// Returns (nil, nil) when the id does not exist.
	FindAuthorByID(ctx context.Context, id int64) (*AuthorBasic, error)

	// Delete removes the book and its publication row. Reports whether a
	// record existed.
	Delete(ctx context.Context, id int64) (bool, error)

	// DeleteByISBN is Delete keyed by ISBN.
	DeleteByISBN(ctx context.Context, isbn string) (bool, error)
}
