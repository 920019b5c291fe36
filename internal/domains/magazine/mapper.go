package magazine

// ToEntity builds the Magazine entity from a create request and its
// resolved author projections (already in request order).
func ToEntity(req *CreateMagazineRequest, authors []AuthorBasic) *Magazine {
	return &Magazine{
		IssueNumber:     req.IssueNumber,
		Title:           req.Title,
		PublicationDate: req.PublicationDate,
		Authors:         authors,
	}
}

func ToResponse(entity *Magazine) *MagazineResponse {
	authors := entity.Authors
	if authors == nil {
		authors = []AuthorBasic{}
	}
	return &MagazineResponse{
		ID:              entity.ID,
		IssueNumber:     entity.IssueNumber,
		Title:           entity.Title,
		PublicationDate: entity.PublicationDate,
		Authors:         authors,
	}
}
