package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile 用户在某板块下的发帖身份
// (user, category, nickname) 三元组唯一
type Profile struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User         primitive.ObjectID `bson:"user" json:"user"`
	Category     primitive.ObjectID `bson:"category" json:"category"`
	Nickname     string             `bson:"nickname" json:"nickname"`
	ProfileImage Image              `bson:"profileImage" json:"profileImage"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
