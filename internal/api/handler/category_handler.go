package handler

import (
	"Hearth/internal/api/dto"
	"Hearth/internal/api/middleware"
	"Hearth/internal/pkg/response"
	"Hearth/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categorySvc service.CategoryService
}

func NewCategoryHandler(categorySvc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categorySvc: categorySvc}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categorySvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, categories)
}

func (h *CategoryHandler) GetByTitle(c *gin.Context) {
	category, err := h.categorySvc.GetByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	category, err := h.categorySvc.Create(c.Request.Context(), middleware.CurrentUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := objectIDParam(c, "id", service.ErrCategoryNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = h.categorySvc.Delete(c.Request.Context(), id, middleware.CurrentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{})
}
