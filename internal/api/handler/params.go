package handler

import (
	"mime/multipart"
	"strings"
	"time"

	"Hearth/internal/pkg/consts"
	"Hearth/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseCursor 解析游标时间，缺省或无法解析都按第一页处理
func parseCursor(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		if t, err = time.Parse(time.RFC3339Nano, raw); err != nil {
			return nil
		}
	}
	return &t
}

// queryCursor 从 ?last= 取游标
func queryCursor(c *gin.Context) *time.Time {
	return parseCursor(c.Query("last"))
}

// paramCursor 从路径参数取游标
func paramCursor(c *gin.Context, name string) *time.Time {
	return parseCursor(c.Param(name))
}

// objectIDParam 路径参数转 ObjectID，非法 id 视同目标不存在
func objectIDParam(c *gin.Context, name string, notFound error) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		return primitive.NilObjectID, notFound
	}
	return id, nil
}

// formFileUpload 打开 multipart 文件，调用方负责 Close
// 只接受图片类型
func formFileUpload(file *multipart.FileHeader) (*service.ImageUpload, multipart.File, error) {
	if !strings.HasPrefix(file.Header.Get("Content-Type"), consts.MimePrefixImage) {
		return nil, nil, service.ErrMissingData
	}

	f, err := file.Open()
	if err != nil {
		return nil, nil, err
	}
	return &service.ImageUpload{Filename: file.Filename, Reader: f}, f, nil
}
