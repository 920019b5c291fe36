package magazine

import (
	"context"
)

// Service defines the business operations of the magazine domain.
type Service interface {
	// Create adds a magazine associated with one or more existing
	// authors. Every author id is resolved before any write; the first
	// unresolved id fails the whole request.
	// Errors: ErrIssueNumberExists, ErrAuthorNotFound, validation errors.
	Create(ctx context.Context, req *CreateMagazineRequest) (*MagazineResponse, error)

	// GetAll returns every magazine with author projections embedded.
	GetAll(ctx context.Context) ([]MagazineResponse, error)

	// Delete removes the magazine record only; associated authors are
	// untouched.
	// Errors: ErrMagazineNotFound.
	Delete(ctx context.Context, id int64) error
}
