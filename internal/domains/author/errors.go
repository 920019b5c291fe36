package author

import (
	"catalog-backend/internal/shared/apperrors"
)

var (
	// ErrAuthorExists: another author already holds this name.
	ErrAuthorExists = apperrors.Conflict("author already exists")

	// ErrAuthorNotFound: the referenced author id does not exist.
	ErrAuthorNotFound = apperrors.NotFound("author not found")

	// ErrAuthorInUse: the author is still referenced by one or more
	// magazines. Magazine associations are non-owning, so the delete is
	// rejected instead of cascading.
	ErrAuthorInUse = apperrors.Conflict("author is still referenced by magazines")
)
