package author

// ToEntity builds the Author entity and its owned book entities from a
// create request. IDs stay zero until the repository persists them.
func ToEntity(req *CreateAuthorRequest) (*Author, []Book) {
	entity := &Author{
		Name:        req.Name,
		BirthDate:   req.BirthDate,
		Nationality: req.Nationality,
	}

	books := make([]Book, 0, len(req.Books))
	for _, b := range req.Books {
		books = append(books, Book{
			Title:           b.Title,
			ISBN:            b.ISBN,
			PublicationDate: b.PublicationDate,
		})
	}

	return entity, books
}

// ToResponse projects an author and its books to the API shape. Books is
// always a list, never null.
func ToResponse(entity *Author, books []Book) *AuthorResponse {
	if books == nil {
		books = []Book{}
	}
	return &AuthorResponse{
		ID:          entity.ID,
		Name:        entity.Name,
		BirthDate:   entity.BirthDate,
		Nationality: entity.Nationality,
		Books:       books,
	}
}
