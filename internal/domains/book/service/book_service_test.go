package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/book"
	shared "catalog-backend/internal/shared"
	"catalog-backend/internal/shared/apperrors"
	"catalog-backend/pkg/cache"
)

// fakeBookRepository is an in-memory book.Repository. getAllCalls counts
// store reads so the list-cache tests can tell a hit from a miss.
type fakeBookRepository struct {
	books       map[int64]book.Book
	authors     map[int64]book.AuthorBasic
	nextID      int64
	getAllCalls int
}

func newFakeBookRepository(authors ...book.AuthorBasic) *fakeBookRepository {
	known := make(map[int64]book.AuthorBasic, len(authors))
	for _, a := range authors {
		known[a.ID] = a
	}
	return &fakeBookRepository{
		books:   make(map[int64]book.Book),
		authors: known,
		nextID:  1,
	}
}

func (f *fakeBookRepository) Create(_ context.Context, entity *book.Book) (*book.Book, error) {
	for _, existing := range f.books {
		if existing.ISBN == entity.ISBN {
			return nil, book.ErrISBNExists
		}
	}

	created := *entity
	created.ID = f.nextID
	f.nextID++
	f.books[created.ID] = created
	return &created, nil
}

func (f *fakeBookRepository) FindByISBN(_ context.Context, isbn string) (*book.Book, error) {
	for _, entity := range f.books {
		if entity.ISBN == isbn {
			found := entity
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeBookRepository) GetAll(_ context.Context) ([]book.Book, error) {
	f.getAllCalls++
	all := make([]book.Book, 0, len(f.books))
	for id := int64(1); id < f.nextID; id++ {
		if entity, ok := f.books[id]; ok {
			all = append(all, entity)
		}
	}
	return all, nil
}

func (f *fakeBookRepository) ExistsByISBN(_ context.Context, isbn string) (bool, error) {
	for _, entity := range f.books {
		if entity.ISBN == isbn {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookRepository) FindAuthorByID(_ context.Context, id int64) (*book.AuthorBasic, error) {
	a, ok := f.authors[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeBookRepository) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.books[id]; !ok {
		return false, nil
	}
	delete(f.books, id)
	return true, nil
}

func (f *fakeBookRepository) DeleteByISBN(ctx context.Context, isbn string) (bool, error) {
	entity, err := f.FindByISBN(ctx, isbn)
	if err != nil || entity == nil {
		return false, err
	}
	return f.Delete(ctx, entity.ID)
}

func austen() book.AuthorBasic {
	return book.AuthorBasic{ID: 1, Name: "Jane Austen", Nationality: "British"}
}

func prideAndPrejudice() *book.CreateBookRequest {
	return &book.CreateBookRequest{
		Title:           "Pride and Prejudice",
		ISBN:            "9780141439518",
		Author:          book.AuthorRef{ID: 1},
		PublicationDate: shared.NewDate(1813, time.January, 28),
	}
}

func TestBookService_CreateAndGetByISBN(t *testing.T) {
	svc := NewBookService(newFakeBookRepository(austen()), cache.NewMemoryCache())

	created, err := svc.Create(context.Background(), prideAndPrejudice())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Jane Austen", created.Author.Name)

	fetched, err := svc.GetByISBN(context.Background(), "9780141439518")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, created.Title, fetched.Title)
	assert.Equal(t, created.ISBN, fetched.ISBN)
	assert.Equal(t, created.Author.ID, fetched.Author.ID)
	assert.Equal(t, created.PublicationDate.String(), fetched.PublicationDate.String())
}

func TestBookService_CreateDuplicateISBN(t *testing.T) {
	svc := NewBookService(newFakeBookRepository(austen()), cache.NewMemoryCache())

	_, err := svc.Create(context.Background(), prideAndPrejudice())
	require.NoError(t, err)

	second := prideAndPrejudice()
	second.Title = "Reprint"

	_, err = svc.Create(context.Background(), second)
	require.ErrorIs(t, err, book.ErrISBNExists)
	assert.True(t, apperrors.IsConflict(err))
	assert.Contains(t, err.Error(), "9780141439518")
}

func TestBookService_CreateUnknownAuthor(t *testing.T) {
	svc := NewBookService(newFakeBookRepository(), cache.NewMemoryCache())

	_, err := svc.Create(context.Background(), prideAndPrejudice())
	require.ErrorIs(t, err, book.ErrAuthorNotFound)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestBookService_CreateInvalidRequest(t *testing.T) {
	svc := NewBookService(newFakeBookRepository(austen()), cache.NewMemoryCache())

	req := prideAndPrejudice()
	req.ISBN = "123"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestBookService_GetByISBNMissing(t *testing.T) {
	svc := NewBookService(newFakeBookRepository(austen()), cache.NewMemoryCache())

	fetched, err := svc.GetByISBN(context.Background(), "0000000000")
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestBookService_GetAllUsesListCache(t *testing.T) {
	repo := newFakeBookRepository(austen())
	svc := NewBookService(repo, cache.NewMemoryCache())

	_, err := svc.Create(context.Background(), prideAndPrejudice())
	require.NoError(t, err)

	first, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.getAllCalls)
}

func TestBookService_CreateInvalidatesListCache(t *testing.T) {
	repo := newFakeBookRepository(austen())
	svc := NewBookService(repo, cache.NewMemoryCache())

	_, err := svc.GetAll(context.Background())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), prideAndPrejudice())
	require.NoError(t, err)

	listed, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 2, repo.getAllCalls)
}

func TestBookService_Delete(t *testing.T) {
	svc := NewBookService(newFakeBookRepository(austen()), cache.NewMemoryCache())

	created, err := svc.Create(context.Background(), prideAndPrejudice())
	require.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// A second delete reports false, not an error.
	deleted, err = svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestBookService_DeleteByISBN(t *testing.T) {
	svc := NewBookService(newFakeBookRepository(austen()), cache.NewMemoryCache())

	_, err := svc.Create(context.Background(), prideAndPrejudice())
	require.NoError(t, err)

	deleted, err := svc.DeleteByISBN(context.Background(), "9780141439518")
	require.NoError(t, err)
	assert.True(t, deleted)

	fetched, err := svc.GetByISBN(context.Background(), "9780141439518")
	require.NoError(t, err)
	assert.Nil(t, fetched)
}
