package magazine

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shared "catalog-backend/internal/shared"
)

func validCreateRequest() *CreateMagazineRequest {
	return &CreateMagazineRequest{
		IssueNumber:     42,
		Title:           "Science Weekly",
		PublicationDate: shared.NewDate(2024, time.March, 15),
		Authors:         []AuthorRef{{ID: 1}},
	}
}

func TestCreateMagazineRequest_Valid(t *testing.T) {
	assert.NoError(t, validCreateRequest().Validate())
}

func TestCreateMagazineRequest_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateMagazineRequest)
		want   string
	}{
		{"zero issue number", func(r *CreateMagazineRequest) { r.IssueNumber = 0 }, "issue number is required"},
		{"blank title", func(r *CreateMagazineRequest) { r.Title = "" }, "title is required"},
		{"zero published date", func(r *CreateMagazineRequest) { r.PublicationDate = shared.Date{} }, "published date is required"},
		{"no authors", func(r *CreateMagazineRequest) { r.Authors = nil }, "at least one author is required"},
		{"author without id", func(r *CreateMagazineRequest) { r.Authors = []AuthorRef{{ID: 0}} }, "author id is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)
			err := req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

// Magazines expose their date as publishedDate on the wire, unlike books.
func TestMagazineResponse_PublishedDateField(t *testing.T) {
	resp := MagazineResponse{
		ID:              7,
		IssueNumber:     42,
		Title:           "Science Weekly",
		PublicationDate: shared.NewDate(2024, time.March, 15),
		Authors:         []AuthorBasic{},
	}

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "2024-03-15", fields["publishedDate"])
	assert.NotContains(t, fields, "publicationDate")
}
