package book

import (
	shared "catalog-backend/internal/shared"
)

// Book is the domain entity. Every book lives in the shared publication
// identity space (same id sequence as magazines, discriminated by type) and
// belongs to exactly one author.
type Book struct {
	ID              int64       `json:"id" db:"id"`
	Title           string      `json:"title" db:"title"`
	ISBN            string      `json:"isbn" db:"isbn"`
	AuthorID        int64       `json:"authorId" db:"author_id"`
	PublicationDate shared.Date `json:"publicationDate" db:"publication_date"`

	// Author projection, populated on reads.
	Author AuthorBasic `json:"author"`
}

// AuthorBasic is the reduced author view embedded in book responses.
type AuthorBasic struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
}
