package handler

import (
	"Hearth/internal/api/dto"
	"Hearth/internal/api/middleware"
	"Hearth/internal/pkg/response"
	"Hearth/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, err := objectIDParam(c, "postId", service.ErrPostNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	comments, err := h.commentSvc.ListByPost(c.Request.Context(), postID, paramCursor(c, "lastDate"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := h.commentSvc.Create(c.Request.Context(), middleware.CurrentUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, comment)
}

func (h *CommentHandler) Update(c *gin.Context) {
	id, err := objectIDParam(c, "id", service.ErrCommentNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateCommentDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := h.commentSvc.Update(c.Request.Context(), id, middleware.CurrentUserID(c), req.Text)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := objectIDParam(c, "id", service.ErrCommentNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = h.commentSvc.Delete(c.Request.Context(), id, middleware.CurrentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{})
}

func (h *CommentHandler) Block(c *gin.Context) {
	id, err := objectIDParam(c, "id", service.ErrCommentNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = h.commentSvc.Block(c.Request.Context(), id, middleware.CurrentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{})
}
