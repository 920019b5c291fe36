package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/book"
	shared "catalog-backend/internal/shared"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubBookService struct {
	createResp *book.BookResponse
	createErr  error
	getResp    *book.BookResponse
	getErr     error
	listResp   []book.BookResponse
	listErr    error
	deleted    bool
	deleteErr  error
}

func (s *stubBookService) Create(context.Context, *book.CreateBookRequest) (*book.BookResponse, error) {
	return s.createResp, s.createErr
}

func (s *stubBookService) GetByISBN(context.Context, string) (*book.BookResponse, error) {
	return s.getResp, s.getErr
}

func (s *stubBookService) GetAll(context.Context) ([]book.BookResponse, error) {
	return s.listResp, s.listErr
}

func (s *stubBookService) Delete(context.Context, int64) (bool, error) {
	return s.deleted, s.deleteErr
}

func (s *stubBookService) DeleteByISBN(context.Context, string) (bool, error) {
	return s.deleted, s.deleteErr
}

func newRouter(svc book.Service) *gin.Engine {
	h := NewBookHandler(svc)
	r := gin.New()
	r.POST("/api/v1/books", h.Create)
	r.GET("/api/v1/books", h.GetAll)
	r.GET("/api/v1/books/isbn/:isbn", h.GetByISBN)
	r.DELETE("/api/v1/books/:id", h.Delete)
	r.DELETE("/api/v1/books/isbn/:isbn", h.DeleteByISBN)
	return r
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestBookHandler_Create(t *testing.T) {
	svc := &stubBookService{
		createResp: &book.BookResponse{
			ID:              1,
			Title:           "Pride and Prejudice",
			ISBN:            "9780141439518",
			Author:          book.AuthorBasic{ID: 1, Name: "Jane Austen", Nationality: "British"},
			PublicationDate: shared.NewDate(1813, time.January, 28),
		},
	}
	r := newRouter(svc)

	w := perform(r, http.MethodPost, "/api/v1/books",
		`{"title":"Pride and Prejudice","isbn":"9780141439518","author":{"id":1},"publicationDate":"1813-01-28"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	body := envelope(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "9780141439518", data["isbn"])
	assert.Equal(t, "1813-01-28", data["publicationDate"])
	embedded := data["author"].(map[string]interface{})
	assert.Equal(t, "Jane Austen", embedded["name"])
}

func TestBookHandler_CreateConflict(t *testing.T) {
	err := fmt.Errorf("book with isbn 9780141439518: %w", book.ErrISBNExists)
	r := newRouter(&stubBookService{createErr: err})

	w := perform(r, http.MethodPost, "/api/v1/books",
		`{"title":"Reprint","isbn":"9780141439518","author":{"id":1},"publicationDate":"1813-01-28"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	body := envelope(t, w)
	assert.Contains(t, body["message"], "9780141439518")
}

func TestBookHandler_GetByISBNNotFound(t *testing.T) {
	r := newRouter(&stubBookService{})

	w := perform(r, http.MethodGet, "/api/v1/books/isbn/0000000000", "")

	assert.Equal(t, http.StatusNotFound, w.Code)

	body := envelope(t, w)
	assert.Equal(t, "Book not found with ISBN 0000000000", body["message"])
	assert.Nil(t, body["data"])
}

func TestBookHandler_DeleteFound(t *testing.T) {
	r := newRouter(&stubBookService{deleted: true})

	w := perform(r, http.MethodDelete, "/api/v1/books/1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := envelope(t, w)
	assert.Equal(t, true, body["data"])
}

func TestBookHandler_DeleteMissing(t *testing.T) {
	r := newRouter(&stubBookService{deleted: false})

	w := perform(r, http.MethodDelete, "/api/v1/books/99", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookHandler_DeleteInvalidID(t *testing.T) {
	r := newRouter(&stubBookService{})

	w := perform(r, http.MethodDelete, "/api/v1/books/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookHandler_DeleteByISBN(t *testing.T) {
	r := newRouter(&stubBookService{deleted: true})

	w := perform(r, http.MethodDelete, "/api/v1/books/isbn/9780141439518", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBookHandler_GetAll(t *testing.T) {
	svc := &stubBookService{listResp: []book.BookResponse{{ID: 1, Title: "Emma"}}}
	r := newRouter(svc)

	w := perform(r, http.MethodGet, "/api/v1/books", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := envelope(t, w)
	data := body["data"].([]interface{})
	assert.Len(t, data, 1)
}
