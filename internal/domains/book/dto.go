package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	shared "catalog-backend/internal/shared"
)

const (
	MaxTitleLength = 255
	MinISBNLength  = 10
	MaxISBNLength  = 20
)

// AuthorRef is the by-id author reference in a create payload.
type AuthorRef struct {
	ID int64 `json:"id"`
}

// CreateBookRequest - POST /api/v1/books
// The author must already exist; books are never cascade-created from here.
type CreateBookRequest struct {
	Title           string      `json:"title"`
	ISBN            string      `json:"isbn"`
	Author          AuthorRef   `json:"author"`
	PublicationDate shared.Date `json:"publicationDate"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength).Error("title must not exceed 255 characters"),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("isbn is required"),
			validation.Length(MinISBNLength, MaxISBNLength).Error("isbn should be between 10 and 20 characters"),
		),
		validation.Field(&r.Author, validation.By(authorRefRequired)),
		validation.Field(&r.PublicationDate,
			validation.By(dateRequired("publication date is required")),
			validation.By(dateNotInFuture),
		),
	)
}

func authorRefRequired(value interface{}) error {
	ref, _ := value.(AuthorRef)
	if ref.ID <= 0 {
		return validation.NewError("validation_author_required", "author is required")
	}
	return nil
}

// dateRequired catches the zero Date; validation.Required treats any struct
// embedding time.Time as non-empty and never fires for it.
func dateRequired(msg string) validation.RuleFunc {
	return func(value interface{}) error {
		d, _ := value.(shared.Date)
		if d.IsZero() {
			return validation.NewError("validation_required", msg)
		}
		return nil
	}
}

func dateNotInFuture(value interface{}) error {
	d, _ := value.(shared.Date)
	if !d.IsZero() && d.InFuture() {
		return validation.NewError("validation_date_not_future", "publication date cannot be in the future")
	}
	return nil
}

// BookResponse is the book record returned by the API, with the owning
// author's basic projection embedded.
type BookResponse struct {
	ID              int64       `json:"id"`
	Title           string      `json:"title"`
	ISBN            string      `json:"isbn"`
	Author          AuthorBasic `json:"author"`
	PublicationDate shared.Date `json:"publicationDate"`
}
