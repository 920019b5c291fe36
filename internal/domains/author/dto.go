package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	shared "catalog-backend/internal/shared"
)

const (
	MaxNameLength  = 255
	MaxTitleLength = 255
	MinISBNLength  = 10
	MaxISBNLength  = 20
)

// CreateAuthorRequest - POST /api/v1/authors
// Nested books are created through the author cascade: each one is persisted
// with the new author as its owner, in the same transaction.
type CreateAuthorRequest struct {
	Name        string              `json:"name"`
	BirthDate   shared.Date         `json:"birthDate"`
	Nationality string              `json:"nationality"`
	Books       []NestedBookRequest `json:"books,omitempty"`
}

// NestedBookRequest is a book payload inside an author create request.
type NestedBookRequest struct {
	Title           string      `json:"title"`
	ISBN            string      `json:"isbn"`
	PublicationDate shared.Date `json:"publicationDate"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.BirthDate,
			validation.By(dateRequired("birth date is required")),
			validation.By(dateInPast),
		),
		validation.Field(&r.Nationality,
			validation.Required.Error("nationality is required"),
		),
		validation.Field(&r.Books),
	)
}

func (r NestedBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("isbn is required"),
			validation.Length(MinISBNLength, MaxISBNLength).Error("isbn should be between 10 and 20 characters"),
		),
		validation.Field(&r.PublicationDate,
			validation.By(dateRequired("publication date is required")),
			validation.By(dateNotInFuture),
		),
	)
}

// dateRequired catches the zero Date. validation.Required cannot: it only
// special-cases a bare time.Time, and a struct embedding one always counts
// as non-empty, so a missing date would slip through as 0001-01-01.
func dateRequired(msg string) validation.RuleFunc {
	return func(value interface{}) error {
		d, _ := value.(shared.Date)
		if d.IsZero() {
			return validation.NewError("validation_required", msg)
		}
		return nil
	}
}

func dateInPast(value interface{}) error {
	d, _ := value.(shared.Date)
	if !d.IsZero() && !d.InPast() {
		return validation.NewError("validation_date_past", "must be a date in the past")
	}
	return nil
}

func dateNotInFuture(value interface{}) error {
	d, _ := value.(shared.Date)
	if !d.IsZero() && d.InFuture() {
		return validation.NewError("validation_date_not_future", "cannot be in the future")
	}
	return nil
}

// AuthorResponse is the author record returned by the API, books eagerly
// populated.
type AuthorResponse struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	BirthDate   shared.Date `json:"birthDate"`
	Nationality string      `json:"nationality"`
	Books       []Book      `json:"books"`
}
