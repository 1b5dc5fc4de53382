package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentPreviewSize Post 文档内联保留的最新评论 id 数
// 更早的评论只能通过游标分页获取
const CommentPreviewSize = 3

// Post 帖子
// likes/dislikes 与 commentsCount 为冗余计数，
// 所有变更都必须与成员列表的修改合并为同一条原子更新
type Post struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Category      primitive.ObjectID   `bson:"category" json:"category"`
	Profile       primitive.ObjectID   `bson:"profile" json:"profile"`
	User          primitive.ObjectID   `bson:"user" json:"user"`
	Text          string               `bson:"text" json:"text"`
	PostImages    []Image              `bson:"postImages" json:"postImages"`
	Likes         int                  `bson:"likes" json:"likes"`
	LikeUsers     []primitive.ObjectID `bson:"likeUsers" json:"likeUsers"`
	Dislikes      int                  `bson:"dislikes" json:"dislikes"`
	DislikeUsers  []primitive.ObjectID `bson:"dislikeUsers" json:"dislikeUsers"`
	Comments      []primitive.ObjectID `bson:"comments" json:"comments"`
	CommentsCount int                  `bson:"commentsCount" json:"commentsCount"`
	Blocked       bool                 `bson:"blocked" json:"blocked"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
}

// HasLiked 当前用户是否已点赞
func (p *Post) HasLiked(userID primitive.ObjectID) bool {
	for _, id := range p.LikeUsers {
		if id == userID {
			return true
		}
	}
	return false
}

// HasDisliked 当前用户是否已点踩
func (p *Post) HasDisliked(userID primitive.ObjectID) bool {
	for _, id := range p.DislikeUsers {
		if id == userID {
			return true
		}
	}
	return false
}
