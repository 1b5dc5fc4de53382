package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category 板块
// 由创建者（管理员）所有，title 全局唯一
// 仍被 Profile 或 Post 引用时不可删除
type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Title     string             `bson:"title" json:"title"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
