package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RefreshToken 服务端持久化的 refresh 令牌
// createdAt 上建有 7 天 TTL 索引，过期由存储端自动清除；
// TTL 清理存在延迟，验证时仍以签名内的过期时间为准
type RefreshToken struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Token     string             `bson:"refreshToken"`
	CreatedAt time.Time          `bson:"createdAt"`
}
