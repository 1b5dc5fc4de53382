package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubcommentPreviewSize Comment 文档内联保留的最新回复 id 数
const SubcommentPreviewSize = 1

// Comment 评论
// subcommentsCount 与 subcomments 列表同 Post 的评论计数一样必须原子更新
type Comment struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	PostID           primitive.ObjectID   `bson:"postId" json:"postId"`
	Category         primitive.ObjectID   `bson:"category" json:"category"`
	Profile          primitive.ObjectID   `bson:"profile" json:"profile"`
	User             primitive.ObjectID   `bson:"user" json:"user"`
	Text             string               `bson:"text" json:"text"`
	Subcomments      []primitive.ObjectID `bson:"subcomments" json:"subcomments"`
	SubcommentsCount int                  `bson:"subcommentsCount" json:"subcommentsCount"`
	Blocked          bool                 `bson:"blocked" json:"blocked"`
	CreatedAt        time.Time            `bson:"createdAt" json:"createdAt"`
}
