package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateCommentDTO 发评论
type CreateCommentDTO struct {
	PostID  string `json:"postId" binding:"required"`
	Profile string `json:"profile" binding:"required"`
	Text    string `json:"text" binding:"required"`
}

// UpdateCommentDTO 改评论
type UpdateCommentDTO struct {
	Text string `json:"text" binding:"required"`
}

// CommentDTO 评论，profile 已展开
type CommentDTO struct {
	ID               primitive.ObjectID   `json:"id"`
	PostID           primitive.ObjectID   `json:"postId"`
	Category         primitive.ObjectID   `json:"category"`
	Profile          *ProfileDTO          `json:"profile"`
	User             primitive.ObjectID   `json:"user"`
	Text             string               `json:"text"`
	Subcomments      []primitive.ObjectID `json:"subcomments"`
	SubcommentsCount int                  `json:"subcommentsCount"`
	Blocked          bool                 `json:"blocked"`
	CreatedAt        time.Time            `json:"createdAt"`
}
