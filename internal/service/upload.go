package service

import (
	"Hearth/internal/model"
	"Hearth/internal/pkg/util"
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectStorage 服务层需要的对象存储能力，*minio.Storage 满足该接口
type ObjectStorage interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	DeleteFile(ctx context.Context, objectName string) error
	DeleteFiles(ctx context.Context, objectNames []string) error
	GetPublicURL(objectName string) string
}

// ImageUpload 一张待上传的图片
type ImageUpload struct {
	Filename string
	Reader   io.Reader
}

// 对象 Key 布局：<userID>/<profile|posts>/<毫秒时间戳>/<文件名>
const (
	keyKindProfile = "profile"
	keyKindPosts   = "posts"
)

func objectKey(userID primitive.ObjectID, kind, filename string) string {
	return fmt.Sprintf("%s/%s/%d/%s", userID.Hex(), kind, time.Now().UnixMilli(), filename)
}

// uploadImage 压缩为 JPEG 后上传，返回可访问的 Image
func uploadImage(ctx context.Context, storage ObjectStorage, userID primitive.ObjectID, kind string, upload ImageUpload, resize func(io.Reader) (*bytes.Buffer, error)) (*model.Image, error) {
	buf, err := resize(upload.Reader)
	if err != nil {
		return nil, err
	}

	key := objectKey(userID, kind, upload.Filename)
	if _, err = storage.UploadFile(ctx, key, buf, int64(buf.Len()), "image/jpeg"); err != nil {
		return nil, err
	}

	return &model.Image{
		URL: storage.GetPublicURL(key),
		Key: key,
	}, nil
}

func uploadProfileImage(ctx context.Context, storage ObjectStorage, userID primitive.ObjectID, upload ImageUpload) (*model.Image, error) {
	return uploadImage(ctx, storage, userID, keyKindProfile, upload, util.ResizeProfileImage)
}

func uploadPostImage(ctx context.Context, storage ObjectStorage, userID primitive.ObjectID, upload ImageUpload) (*model.Image, error) {
	return uploadImage(ctx, storage, userID, keyKindPosts, upload, util.ResizePostImage)
}
