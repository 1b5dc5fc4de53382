package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreatePostDTO 发帖，multipart 表单，图片文件字段为 newImages
type CreatePostDTO struct {
	Category string `form:"category" binding:"required"`
	Profile  string `form:"profile" binding:"required"`
	Text     string `form:"text" binding:"required"`
}

// UpdatePostDTO 改帖
// removedImages 的每个表单值是一个 JSON 编码的 {url, key}
type UpdatePostDTO struct {
	Text string `form:"text" binding:"required"`
}

// ReactionDTO 点赞与点踩的动作
// create 表示加上，delete 表示取消；实际迁移由当前状态决定
type ReactionDTO struct {
	Type string `json:"type" binding:"required,oneof=create delete"`
}

// PostDTO 帖子，profile 已展开
type PostDTO struct {
	ID            primitive.ObjectID   `json:"id"`
	Category      primitive.ObjectID   `json:"category"`
	Profile       *ProfileDTO          `json:"profile"`
	User          primitive.ObjectID   `json:"user"`
	Text          string               `json:"text"`
	PostImages    []ImageDTO           `json:"postImages"`
	Likes         int                  `json:"likes"`
	LikeUsers     []primitive.ObjectID `json:"likeUsers"`
	Dislikes      int                  `json:"dislikes"`
	DislikeUsers  []primitive.ObjectID `json:"dislikeUsers"`
	Comments      []primitive.ObjectID `json:"comments"`
	CommentsCount int                  `json:"commentsCount"`
	Blocked       bool                 `json:"blocked"`
	CreatedAt     time.Time            `json:"createdAt"`
}
