package magazine

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	shared "catalog-backend/internal/shared"
)

const MaxTitleLength = 255

// AuthorRef is a by-id author reference in a create payload.
type AuthorRef struct {
	ID int64 `json:"id"`
}

// CreateMagazineRequest - POST /api/v1/magazines
// Every referenced author must already exist; authors are never
// cascade-created from here. Association order is preserved as given.
type CreateMagazineRequest struct {
	IssueNumber     int         `json:"issueNumber"`
	Title           string      `json:"title"`
	PublicationDate shared.Date `json:"publishedDate"`
	Authors         []AuthorRef `json:"authors"`
}

func (r CreateMagazineRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IssueNumber,
			validation.Required.Error("issue number is required"),
			validation.Min(1).Error("issue number must be at least 1"),
		),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.PublicationDate,
			validation.By(dateRequired("published date is required")),
		),
		validation.Field(&r.Authors,
			validation.Required.Error("at least one author is required"),
			validation.Each(validation.By(authorRefRequired)),
		),
	)
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

func authorRefRequired(value interface{}) error {
	ref, _ := value.(AuthorRef)
	if ref.ID <= 0 {
		return validation.NewError("validation_author_id", "author id is required")
	}
	return nil
}

// MagazineResponse is the magazine record returned by the API, with the
// basic projection of every associated author, in association order.
type MagazineResponse struct {
	ID              int64         `json:"id"`
	IssueNumber     int           `json:"issueNumber"`
	Title           string        `json:"title"`
	PublicationDate shared.Date   `json:"publishedDate"`
	Authors         []AuthorBasic `json:"authors"`
}
