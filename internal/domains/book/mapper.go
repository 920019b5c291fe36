package book

// ToEntity builds a Book entity from a create request and its resolved
// author projection.
func ToEntity(req *CreateBookRequest, resolved AuthorBasic) *Book {
	return &Book{
		Title:           req.Title,
		ISBN:            req.ISBN,
		AuthorID:        resolved.ID,
		PublicationDate: req.PublicationDate,
		Author:          resolved,
	}
}

func ToResponse(entity *Book) *BookResponse {
	return &BookResponse{
		ID:              entity.ID,
		Title:           entity.Title,
		ISBN:            entity.ISBN,
		Author:          entity.Author,
		PublicationDate: entity.PublicationDate,
	}
}
