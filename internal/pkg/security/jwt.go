package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"Hearth/internal/api/config"
)

// TokenManager 负责 access/refresh 双令牌的签发与验证
// 两类令牌使用独立密钥，access 15 分钟，refresh 7 天
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	issuer        string
}

func NewTokenManager(cfg config.JWTConfig) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		issuer:        cfg.Issuer,
	}
}

// GenerateAccess 签发 access token
func (m *TokenManager) GenerateAccess(username, userID string, admin bool) (string, error) {
	return m.generate(username, userID, admin, AccessTokenTTL, m.accessSecret)
}

// GenerateRefresh 签发 refresh token
func (m *TokenManager) GenerateRefresh(username, userID string, admin bool) (string, error) {
	return m.generate(username, userID, admin, RefreshTokenTTL, m.refreshSecret)
}

func (m *TokenManager) generate(username, userID string, admin bool, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		Username: username,
		UserID:   userID,
		Admin:    admin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("签名 Token 失败: %w", err)
	}
	return tokenString, nil
}

// VerifyAccess 验证 access token 并解析 Claims
// 纯签名+过期校验，不查存储
func (m *TokenManager) VerifyAccess(tokenString string) (*UserClaims, error) {
	return m.verify(tokenString, m.accessSecret)
}

// VerifyRefresh 验证 refresh token 并解析 Claims
func (m *TokenManager) VerifyRefresh(tokenString string) (*UserClaims, error) {
	return m.verify(tokenString, m.refreshSecret)
}

func (m *TokenManager) verify(tokenString string, secret []byte) (*UserClaims, error) {
	claims := &UserClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非预期的签名方法: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token 解析失败: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("token 无效或已过期")
	}

	return claims, nil
}
