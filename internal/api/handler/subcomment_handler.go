package handler

import (
	"Hearth/internal/api/dto"
	"Hearth/internal/api/middleware"
	"Hearth/internal/pkg/response"
	"Hearth/internal/service"

	"github.com/gin-gonic/gin"
)

type SubcommentHandler struct {
	subcommentSvc service.SubcommentService
}

func NewSubcommentHandler(subcommentSvc service.SubcommentService) *SubcommentHandler {
	return &SubcommentHandler{subcommentSvc: subcommentSvc}
}

func (h *SubcommentHandler) ListByComment(c *gin.Context) {
	commentID, err := objectIDParam(c, "commentId", service.ErrCommentNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	subcomments, err := h.subcommentSvc.ListByComment(c.Request.Context(), commentID, paramCursor(c, "lastDate"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, subcomments)
}

func (h *SubcommentHandler) Create(c *gin.Context) {
	var req dto.CreateSubcommentDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	subcomment, err := h.subcommentSvc.Create(c.Request.Context(), middleware.CurrentUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, subcomment)
}

func (h *SubcommentHandler) Update(c *gin.Context) {
	id, err := objectIDParam(c, "id", service.ErrSubcommentNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateSubcommentDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	subcomment, err := h.subcommentSvc.Update(c.Request.Context(), id, middleware.CurrentUserID(c), req.Text)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, subcomment)
}

func (h *SubcommentHandler) Delete(c *gin.Context) {
	id, err := objectIDParam(c, "id", service.ErrSubcommentNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = h.subcommentSvc.Delete(c.Request.Context(), id, middleware.CurrentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{})
}

func (h *SubcommentHandler) Block(c *gin.Context) {
	id, err := objectIDParam(c, "id", service.ErrSubcommentNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = h.subcommentSvc.Block(c.Request.Context(), id, middleware.CurrentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{})
}
