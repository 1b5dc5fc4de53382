package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User 用户账号
// 除密码外注册后不可变更
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Password  string             `bson:"password" json:"-"` // bcrypt 哈希
	Email     string             `bson:"email" json:"-"`
	Admin     bool               `bson:"admin" json:"admin"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
