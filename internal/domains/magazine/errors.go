package magazine

import (
	"catalog-backend/internal/shared/apperrors"
)

var (
	// ErrIssueNumberExists: another magazine already holds this issue
	// number.
	ErrIssueNumberExists = apperrors.Conflict("magazine with this issue number already exists")

	// ErrMagazineNotFound: the referenced magazine id does not exist.
	ErrMagazineNotFound = apperrors.NotFound("magazine not found")

	// ErrAuthorNotFound: an author id in the payload does not resolve.
	ErrAuthorNotFound = apperrors.NotFound("author not found")
)
