package author

import (
	shared "catalog-backend/internal/shared"
)

// Author is the domain entity. Authors own their books: deleting an author
// deletes every book it owns in the same transaction.
type Author struct {
	ID          int64       `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	BirthDate   shared.Date `json:"birthDate" db:"birth_date"`
	Nationality string      `json:"nationality" db:"nationality"`
}

// Book is a book as seen from its owning author: the nested records created
// through the author cascade and listed with it. The full book projection
// (with the embedded author) lives in the book domain.
type Book struct {
	ID              int64       `json:"id" db:"id"`
	Title           string      `json:"title" db:"title"`
	ISBN            string      `json:"isbn" db:"isbn"`
	PublicationDate shared.Date `json:"publicationDate" db:"publication_date"`
}
