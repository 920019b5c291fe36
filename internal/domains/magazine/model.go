package magazine

import (
	shared "catalog-backend/internal/shared"
)

// Magazine is the domain entity. Magazines live in the shared publication
// identity space and hold non-owning references to one or more authors;
// deleting a magazine never touches its authors.
type Magazine struct {
	ID              int64       `json:"id" db:"id"`
	IssueNumber     int         `json:"issueNumber" db:"issue_number"`
	Title           string      `json:"title" db:"title"`
	PublicationDate shared.Date `json:"publishedDate" db:"publication_date"`

	// Author projections in association order, populated on reads.
	Authors []AuthorBasic `json:"authors"`
}

// AuthorBasic is the reduced author view embedded in magazine responses.
type AuthorBasic struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
}
