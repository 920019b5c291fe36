package book

import (
	"context"
)

// Service defines the business operations of the book domain.
type Service interface {
	// Create adds a book linked to an existing author.
	// Errors: ErrISBNExists, ErrAuthorNotFound, validation errors.
	Create(ctx context.Context, req *CreateBookRequest) (*BookResponse, error)

	// GetByISBN is an exact-match lookup. An empty result is not an
	// error: (nil, nil) means no book holds the ISBN.
	GetByISBN(ctx context.Context, isbn string) (*BookResponse, error)

	// GetAll returns every book with its author projection embedded.
	GetAll(ctx context.Context) ([]BookResponse, error)

	// Delete reports whether a record existed and was deleted; a missing
	// id is a normal outcome signaled by false, never an error.
	Delete(ctx context.Context, id int64) (bool, error)

	// DeleteByISBN has the same contract as Delete, keyed by ISBN.
	DeleteByISBN(ctx context.Context, isbn string) (bool, error)
}
