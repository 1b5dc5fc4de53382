package middleware

import (
	"Hearth/internal/pkg/response"
	"Hearth/internal/pkg/security"
	"Hearth/internal/service"
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// gin Context 中注入的键
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxIsAdmin  = "is_admin"
)

// AuthMiddleware 验证 access token 并将用户身份注入 Context
// 验证是无状态的，只看签名与过期时间
func AuthMiddleware(tokens *security.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, http.StatusUnauthorized, service.TypeNotSignin, "未登录")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.VerifyAccess(tokenString)
		if err != nil {
			response.Fail(c, http.StatusForbidden, service.TypeTokenExpired, "token 无效或已过期")
			c.Abort()
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			response.Fail(c, http.StatusForbidden, service.TypeTokenExpired, "token 无效或已过期")
			c.Abort()
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxUsername, claims.Username)
		c.Set(CtxIsAdmin, claims.Admin)

		newCtx := context.WithValue(c.Request.Context(), CtxUserID, userID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}

// CurrentUserID 取出鉴权中间件注入的用户 id
func CurrentUserID(c *gin.Context) primitive.ObjectID {
	return c.MustGet(CtxUserID).(primitive.ObjectID)
}
