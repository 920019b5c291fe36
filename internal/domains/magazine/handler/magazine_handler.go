package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/domains/magazine"
	"catalog-backend/internal/shared/response"
)

type MagazineHandler struct {
	service magazine.Service
}

func NewMagazineHandler(svc magazine.Service) *MagazineHandler {
	return &MagazineHandler{service: svc}
}

// Create - POST /api/v1/magazines
func (h *MagazineHandler) Create(c *gin.Context) {
	var req magazine.CreateMagazineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Magazine created successfully", resp)
}

// GetAll - GET /api/v1/magazines
func (h *MagazineHandler) GetAll(c *gin.Context) {
	magazines, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Found "+strconv.Itoa(len(magazines))+" magazines", magazines)
}

// Delete - DELETE /api/v1/magazines/:id
// Removes the magazine only; its authors are untouched.
func (h *MagazineHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid magazine id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Magazine deleted successfully", nil)
}
