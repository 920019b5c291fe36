package author

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shared "catalog-backend/internal/shared"
)

func validCreateRequest() *CreateAuthorRequest {
	return &CreateAuthorRequest{
		Name:        "Jane Austen",
		BirthDate:   shared.NewDate(1775, time.December, 16),
		Nationality: "British",
	}
}

func TestCreateAuthorRequest_Valid(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateAuthorRequest_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateAuthorRequest)
		want   string
	}{
		{"blank name", func(r *CreateAuthorRequest) { r.Name = "" }, "name is required"},
		{"zero birth date", func(r *CreateAuthorRequest) { r.BirthDate = shared.Date{} }, "birth date is required"},
		{"blank nationality", func(r *CreateAuthorRequest) { r.Nationality = "" }, "nationality is required"},
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

// A payload that simply omits birthDate must not slip through as the zero
// date 0001-01-01.
func TestCreateAuthorRequest_OmittedBirthDate(t *testing.T) {
	var req CreateAuthorRequest
	require.NoError(t, json.Unmarshal(
		[]byte(`{"name":"Jane Austen","nationality":"British"}`), &req))

	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "birth date is required")
}

func TestCreateAuthorRequest_BirthDateMustBeInPast(t *testing.T) {
	req := validCreateRequest()
	req.BirthDate = shared.DateOf(time.Now().UTC().AddDate(1, 0, 0))

	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a date in the past")
}

func TestCreateAuthorRequest_NestedBooksValidated(t *testing.T) {
	req := validCreateRequest()
	req.Books = []NestedBookRequest{
		{
			Title:           "Pride and Prejudice",
			ISBN:            "123", // too short
			PublicationDate: shared.NewDate(1813, time.January, 28),
		},
	}

	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "isbn should be between 10 and 20 characters")
}

func TestNestedBookRequest_PublicationDateNotInFuture(t *testing.T) {
	nested := NestedBookRequest{
		Title:           "Upcoming",
		ISBN:            "9780000000001",
		PublicationDate: shared.DateOf(time.Now().UTC().AddDate(0, 0, 2)),
	}

	err := nested.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be in the future")
}

func TestToResponse_BooksNeverNull(t *testing.T) {
	entity := &Author{ID: 1, Name: "Jane Austen"}

	resp := ToResponse(entity, nil)

	require.NotNil(t, resp.Books)
	assert.Empty(t, resp.Books)
}
