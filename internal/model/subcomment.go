package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subcomment 评论的回复
type Subcomment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID    primitive.ObjectID `bson:"postId" json:"postId"`
	CommentID primitive.ObjectID `bson:"commentId" json:"commentId"`
	Category  primitive.ObjectID `bson:"category" json:"category"`
	Profile   primitive.ObjectID `bson:"profile" json:"profile"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Text      string             `bson:"text" json:"text"`
	Blocked   bool               `bson:"blocked" json:"blocked"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
