package publication

import (
	shared "catalog-backend/internal/shared"
)

// Type is the discriminator tag identifying which concrete kind a
// publication record represents. The set is closed; TypeUnknown is the
// defensive fallback for an unrecognized tag.
type Type string

const (
	TypeBook     Type = "BOOK"
	TypeMagazine Type = "MAGAZINE"
	TypeUnknown  Type = "UNKNOWN"
)

// TypeFromDiscriminator maps a stored discriminator value to its Type.
func TypeFromDiscriminator(value string) Type {
	switch value {
	case string(TypeBook):
		return TypeBook
	case string(TypeMagazine):
		return TypeMagazine
	default:
		return TypeUnknown
	}
}

// Summary is the polymorphic projection shared by books and magazines.
type Summary struct {
	ID              int64       `json:"id"`
	Type            Type        `json:"type"`
	Title           string      `json:"title"`
	PublicationDate shared.Date `json:"publicationDate"`
}

// Page is one page of the unified publication listing.
type Page struct {
	Content       []Summary `json:"content"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
}
