package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/book"
	"catalog-backend/internal/domains/magazine"
	"catalog-backend/internal/domains/publication"
	shared "catalog-backend/internal/shared"
)

// fakePublicationRepository serves Summary windows over a fixed slice,
// already ordered by id the way the store would return them.
type fakePublicationRepository struct {
	summaries []publication.Summary
}

func (f *fakePublicationRepository) List(_ context.Context, limit, offset int) ([]publication.Summary, error) {
	if offset >= len(f.summaries) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.summaries) {
		end = len(f.summaries)
	}
	return f.summaries[offset:end], nil
}

func (f *fakePublicationRepository) Count(_ context.Context) (int64, error) {
	return int64(len(f.summaries)), nil
}

func (f *fakePublicationRepository) SearchByTitle(_ context.Context, title string, t publication.Type) ([]publication.Summary, error) {
	var matched []publication.Summary
	for _, s := range f.summaries {
		if s.Type == t && strings.Contains(strings.ToLower(s.Title), strings.ToLower(title)) {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

type fakeBookService struct {
	books []book.BookResponse
	err   error
}

func (f *fakeBookService) Create(context.Context, *book.CreateBookRequest) (*book.BookResponse, error) {
	panic("not used")
}

func (f *fakeBookService) GetByISBN(context.Context, string) (*book.BookResponse, error) {
	panic("not used")
}

func (f *fakeBookService) GetAll(context.Context) ([]book.BookResponse, error) {
	return f.books, f.err
}

func (f *fakeBookService) Delete(context.Context, int64) (bool, error) {
	panic("not used")
}

func (f *fakeBookService) DeleteByISBN(context.Context, string) (bool, error) {
	panic("not used")
}

type fakeMagazineService struct {
	magazines []magazine.MagazineResponse
	err       error
}

func (f *fakeMagazineService) Create(context.Context, *magazine.CreateMagazineRequest) (*magazine.MagazineResponse, error) {
	panic("not used")
}

func (f *fakeMagazineService) GetAll(context.Context) ([]magazine.MagazineResponse, error) {
	return f.magazines, f.err
}

func (f *fakeMagazineService) Delete(context.Context, int64) error {
	panic("not used")
}

func summaries(n int) []publication.Summary {
	all := make([]publication.Summary, 0, n)
	for i := 0; i < n; i++ {
		kind := publication.TypeBook
		if i%2 == 1 {
			kind = publication.TypeMagazine
		}
		all = append(all, publication.Summary{
			ID:              int64(i + 1),
			Type:            kind,
			Title:           "Publication",
			PublicationDate: shared.NewDate(2024, time.January, 1),
		})
	}
	return all
}

func newService(repo publication.Repository) publication.Service {
	return NewPublicationService(repo, &fakeBookService{}, &fakeMagazineService{})
}

func TestPublicationService_ListPagination(t *testing.T) {
	svc := newService(&fakePublicationRepository{summaries: summaries(25)})

	page, err := svc.List(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Len(t, page.Content, 10)
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, 10, page.Size)
	assert.Equal(t, int64(25), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(1), page.Content[0].ID)

	last, err := svc.List(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Len(t, last.Content, 5)
	assert.Equal(t, int64(21), last.Content[0].ID)
}

func TestPublicationService_ListBeyondEnd(t *testing.T) {
	svc := newService(&fakePublicationRepository{summaries: summaries(3)})

	page, err := svc.List(context.Background(), 5, 10)
	require.NoError(t, err)
	require.NotNil(t, page.Content)
	assert.Empty(t, page.Content)
	assert.Equal(t, int64(3), page.TotalElements)
}

func TestPublicationService_ListDefaultsAndClamps(t *testing.T) {
	svc := newService(&fakePublicationRepository{summaries: summaries(5)})

	page, err := svc.List(context.Background(), -1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, 10, page.Size)

	page, err = svc.List(context.Background(), 0, 5000)
	require.NoError(t, err)
	assert.Equal(t, 100, page.Size)
}

func TestPublicationService_SearchByTitleBooksFirst(t *testing.T) {
	repo := &fakePublicationRepository{summaries: []publication.Summary{
		{ID: 1, Type: publication.TypeMagazine, Title: "Go Monthly"},
		{ID: 2, Type: publication.TypeBook, Title: "The Go Programming Language"},
		{ID: 3, Type: publication.TypeBook, Title: "Learning Go"},
		{ID: 4, Type: publication.TypeMagazine, Title: "Science Weekly"},
	}}
	svc := newService(repo)

	results, err := svc.SearchByTitle(context.Background(), "go")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, publication.TypeBook, results[0].Type)
	assert.Equal(t, publication.TypeBook, results[1].Type)
	assert.Equal(t, publication.TypeMagazine, results[2].Type)
}

func TestPublicationService_SearchByTitleNoMatches(t *testing.T) {
	svc := newService(&fakePublicationRepository{summaries: summaries(4)})

	results, err := svc.SearchByTitle(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestPublicationService_GetGrouped(t *testing.T) {
	books := []book.BookResponse{{ID: 1, Title: "Pride and Prejudice", ISBN: "9780141439518"}}
	magazines := []magazine.MagazineResponse{{ID: 2, IssueNumber: 42, Title: "Science Weekly"}}

	svc := NewPublicationService(
		&fakePublicationRepository{},
		&fakeBookService{books: books},
		&fakeMagazineService{magazines: magazines},
	)

	grouped, err := svc.GetGrouped(context.Background())
	require.NoError(t, err)
	assert.Equal(t, books, grouped.Books)
	assert.Equal(t, magazines, grouped.Magazines)
}
