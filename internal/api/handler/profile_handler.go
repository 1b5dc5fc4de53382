package handler

import (
	"Hearth/internal/api/dto"
	"Hearth/internal/api/middleware"
	"Hearth/internal/pkg/response"
	"Hearth/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileImageField multipart 表单中头像文件的字段名
const ProfileImageField = "profileImage"

type ProfileHandler struct {
	profileSvc service.ProfileService
}

func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

func (h *ProfileHandler) GetById(c *gin.Context) {
	id, err := objectIDParam(c, "id", service.ErrProfileNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	profile, err := h.profileSvc.GetById(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (h *ProfileHandler) ListOwn(c *gin.Context) {
	profiles, err := h.profileSvc.ListOwn(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profiles)
}

func (h *ProfileHandler) Create(c *gin.Context) {
	var req dto.CreateProfileDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	var upload *service.ImageUpload
	if file, err := c.FormFile(ProfileImageField); err == nil {
		u, f, err := formFileUpload(file)
		if err != nil {
			response.Error(c, err)
			return
		}
		defer f.Close()
		upload = u
	}

	profile, err := h.profileSvc.Create(c.Request.Context(), middleware.CurrentUserID(c), &req, upload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	id, err := objectIDParam(c, "id", service.ErrProfileNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateProfileDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	var upload *service.ImageUpload
	if file, err := c.FormFile(ProfileImageField); err == nil {
		u, f, err := formFileUpload(file)
		if err != nil {
			response.Error(c, err)
			return
		}
		defer f.Close()
		upload = u
	}

	profile, err := h.profileSvc.Update(c.Request.Context(), id, middleware.CurrentUserID(c), &req, upload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, profile)
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	id, err := objectIDParam(c, "id", service.ErrProfileNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = h.profileSvc.Delete(c.Request.Context(), id, middleware.CurrentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{})
}
