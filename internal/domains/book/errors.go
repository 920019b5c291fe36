package book

import (
	"catalog-backend/internal/shared/apperrors"
)

var (
	// ErrISBNExists: another book already holds this ISBN.
	ErrISBNExists = apperrors.Conflict("book with this isbn already exists")

	// ErrBookNotFound: the referenced book id does not exist.
	ErrBookNotFound = apperrors.NotFound("book not found")

	// ErrAuthorNotFound: the author id in the payload does not resolve.
	ErrAuthorNotFound = apperrors.NotFound("author not found")
)
