package handler

import (
	"Hearth/internal/api/dto"
	"Hearth/internal/api/middleware"
	"Hearth/internal/pkg/response"
	"Hearth/internal/service"
	"context"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// multipart 表单中帖子图片相关的字段名
const (
	PostImagesField    = "newImages"
	RemovedImagesField = "removedImages"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postSvc.List(c.Request.Context(), queryCursor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (h *PostHandler) ListByCategory(c *gin.Context) {
	categoryID, err := objectIDParam(c, "categoryId", service.ErrCategoryNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	posts, err := h.postSvc.ListByCategory(c.Request.Context(), categoryID, queryCursor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (h *PostHandler) ListByCategoryTitle(c *gin.Context) {
	posts, err := h.postSvc.ListByCategoryTitle(c.Request.Context(), c.Param("title"), queryCursor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (h *PostHandler) ListByProfile(c *gin.Context) {
	profileID, err := objectIDParam(c, "profileId", service.ErrProfileNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	posts, err := h.postSvc.ListByProfile(c.Request.Context(), profileID, queryCursor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (h *PostHandler) ListByUsername(c *gin.Context) {
	posts, err := h.postSvc.ListByUsername(c.Request.Context(), c.Param("username"), queryCursor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// openUploads 打开 multipart 里的全部图片文件，返回统一的关闭函数
func openUploads(files []*multipart.FileHeader) ([]service.ImageUpload, func(), error) {
	uploads := make([]service.ImageUpload, 0, len(files))
	opened := make([]multipart.File, 0, len(files))
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	for _, file := range files {
		upload, f, err := formFileUpload(file)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		opened = append(opened, f)
		uploads = append(uploads, *upload)
	}
	return uploads, closeAll, nil
}

func postImageFiles(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[PostImagesField]
}

func (h *PostHandler) Create(c *gin.Context) {
	var req dto.CreatePostDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	uploads, closeAll, err := openUploads(postImageFiles(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeAll()

	post, err := h.postSvc.Create(c.Request.Context(), middleware.CurrentUserID(c), &req, uploads)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, post)
}

// removedImageKeys removedImages 的每个表单值是 JSON 编码的 {url, key}
func removedImageKeys(c *gin.Context) []string {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}

	keys := make([]string, 0, len(form.Value[RemovedImagesField]))
	for _, raw := range form.Value[RemovedImagesField] {
		var image dto.ImageDTO
		if err = json.Unmarshal([]byte(raw), &image); err != nil || image.Key == "" {
			continue
		}
		keys = append(keys, image.Key)
	}
	return keys
}

func (h *PostHandler) Update(c *gin.Context) {
	id, err := objectIDParam(c, "id", service.ErrPostNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdatePostDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	uploads, closeAll, err := openUploads(postImageFiles(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeAll()

	post, err := h.postSvc.Update(c.Request.Context(), id, middleware.CurrentUserID(c), req.Text, removedImageKeys(c), uploads)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, err := objectIDParam(c, "id", service.ErrPostNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = h.postSvc.Delete(c.Request.Context(), id, middleware.CurrentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{})
}

func (h *PostHandler) Block(c *gin.Context) {
	id, err := objectIDParam(c, "id", service.ErrPostNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = h.postSvc.Block(c.Request.Context(), id, middleware.CurrentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{})
}

func (h *PostHandler) Like(c *gin.Context) {
	h.react(c, h.postSvc.Like)
}

func (h *PostHandler) Dislike(c *gin.Context) {
	h.react(c, h.postSvc.Dislike)
}

func (h *PostHandler) react(c *gin.Context, apply func(ctx context.Context, id, userID primitive.ObjectID, action string) error) {
	id, err := objectIDParam(c, "id", service.ErrPostNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ReactionDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err = apply(c.Request.Context(), id, middleware.CurrentUserID(c), req.Type); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{})
}
