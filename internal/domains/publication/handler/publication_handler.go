package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/domains/publication"
	"catalog-backend/internal/shared/response"
)

type PublicationHandler struct {
	service publication.Service
}

func NewPublicationHandler(svc publication.Service) *PublicationHandler {
	return &PublicationHandler{service: svc}
}

// List - GET /api/v1/publications?page=0&size=10
func (h *PublicationHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		response.BadRequest(c, "invalid page")
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size < 1 {
		response.BadRequest(c, "invalid size")
		return
	}

	result, err := h.service.List(c.Request.Context(), page, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Publications fetched successfully", result)
}

// GetGrouped - GET /api/v1/publications/grouped
func (h *PublicationHandler) GetGrouped(c *gin.Context) {
	result, err := h.service.GetGrouped(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Publications fetched successfully", result)
}

// Search - GET /api/v1/publications/search?title=java
func (h *PublicationHandler) Search(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		response.BadRequest(c, "title query parameter is required")
		return
	}

	results, err := h.service.SearchByTitle(c.Request.Context(), title)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Found "+strconv.Itoa(len(results))+" publications matching title: "+title, results)
}
