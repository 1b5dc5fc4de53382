package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateSubcommentDTO 回复评论
type CreateSubcommentDTO struct {
	PostID    string `json:"postId" binding:"required"`
	CommentID string `json:"commentId" binding:"required"`
	Profile   string `json:"profile" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

// UpdateSubcommentDTO 改回复
type UpdateSubcommentDTO struct {
	Text string `json:"text" binding:"required"`
}

// SubcommentDTO 回复，profile 已展开
type SubcommentDTO struct {
	ID        primitive.ObjectID `json:"id"`
	PostID    primitive.ObjectID `json:"postId"`
	CommentID primitive.ObjectID `json:"commentId"`
	Category  primitive.ObjectID `json:"category"`
	Profile   *ProfileDTO        `json:"profile"`
	User      primitive.ObjectID `json:"user"`
	Text      string             `json:"text"`
	Blocked   bool               `json:"blocked"`
	CreatedAt time.Time          `json:"createdAt"`
}
