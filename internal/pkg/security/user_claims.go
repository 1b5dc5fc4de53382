package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// UserClaims Token 中携带的业务信息
// UserID 为 ObjectID 的十六进制表示
type UserClaims struct {
	Username string `json:"username"`
	UserID   string `json:"id"`
	Admin    bool   `json:"admin"`
	jwt.RegisteredClaims
}
