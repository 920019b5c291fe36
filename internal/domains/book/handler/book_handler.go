package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/domains/book"
	"catalog-backend/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// Create - POST /api/v1/books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Book created successfully", resp)
}

// GetAll - GET /api/v1/books
func (h *BookHandler) GetAll(c *gin.Context) {
	books, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Books fetched successfully", books)
}

// GetByISBN - GET /api/v1/books/isbn/:isbn
// A missing book answers 404 with a null data field; the lookup itself is
// not an error.
func (h *BookHandler) GetByISBN(c *gin.Context) {
	isbn := c.Param("isbn")

	resp, err := h.service.GetByISBN(c.Request.Context(), isbn)
	if err != nil {
		response.Error(c, err)
		return
	}
	if resp == nil {
		response.NotFound(c, "Book not found with ISBN "+isbn)
		return
	}

	response.OK(c, "Book fetched successfully", resp)
}

// Delete - DELETE /api/v1/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !deleted {
		response.NotFound(c, "Book not found with id "+c.Param("id"))
		return
	}

	response.OK(c, "Book deleted successfully", true)
}

// DeleteByISBN - DELETE /api/v1/books/isbn/:isbn
func (h *BookHandler) DeleteByISBN(c *gin.Context) {
	isbn := c.Param("isbn")

	deleted, err := h.service.DeleteByISBN(c.Request.Context(), isbn)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !deleted {
		response.NotFound(c, "Book not found with ISBN "+isbn)
		return
	}

	response.OK(c, "Book deleted successfully", true)
}
