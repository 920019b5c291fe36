package author

import (
	"context"
)

// Repository defines data access for the author aggregate. The cascade
// operations are transactional: either the author and all its books are
// written/removed, or nothing is.
type Repository interface {
	// CreateWithBooks inserts the author and its owned books in one
	// transaction. Returns both with generated ids.
	// Errors: ErrAuthorExists on a name collision (constraint backstop).
	CreateWithBooks(ctx context.Context, entity *Author, books []Book) (*Author, []Book, error)

	// GetByID returns ErrAuthorNotFound if the id does not exist.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// GetAll returns every author, store-defined order.
	GetAll(ctx context.Context) ([]Author, error)

	// ExistsByName is the duplicate-name pre-check (case-sensitive exact
	// match).
	ExistsByName(ctx context.Context, name string) (bool, error)

	// BooksByAuthor returns the books owned by an author.
	BooksByAuthor(ctx context.Context, authorID int64) ([]Book, error)

	// MagazineRefCount counts magazines still referencing the author.
	// Used by the delete guard.
	MagazineRefCount(ctx context.Context, authorID int64) (int, error)

	// DeleteWithBooks loads the author's books and deletes each of them,
	// then the author, all inside one transaction. Returns the number of
	// books removed.
	// Errors: ErrAuthorNotFound if the id does not exist.
	DeleteWithBooks(ctx context.Context, id int64) (int, error)
}

// BookCatalog is the slice of the book domain the author service needs:
// the global ISBN uniqueness check for nested cascade payloads. The book
// repository satisfies it directly.
type BookCatalog interface {
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
}
