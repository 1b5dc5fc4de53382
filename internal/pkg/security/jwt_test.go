package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Hearth/internal/api/config"
)

func newTestManager() *TokenManager {
	return NewTokenManager(config.JWTConfig{
		AccessSecret:  "access-secret-for-tests",
		RefreshSecret: "refresh-secret-for-tests",
		Issuer:        "hearth-test",
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccess("alice", "64f000000000000000000001", true)
	require.NoError(t, err)

	claims, err := m.VerifyAccess(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "64f000000000000000000001", claims.UserID)
	assert.True(t, claims.Admin)
	assert.Equal(t, "hearth-test", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(AccessTokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefresh("bob", "64f000000000000000000002", false)
	require.NoError(t, err)

	claims, err := m.VerifyRefresh(token)
	require.NoError(t, err)
	assert.Equal(t, "bob", claims.Username)
	assert.False(t, claims.Admin)
	assert.WithinDuration(t, time.Now().Add(RefreshTokenTTL), claims.ExpiresAt.Time, time.Minute)
}

// 两类令牌密钥独立，access 不能当 refresh 用，反之亦然
func TestTokenKindsNotInterchangeable(t *testing.T) {
	m := newTestManager()

	access, err := m.GenerateAccess("alice", "64f000000000000000000001", false)
	require.NoError(t, err)
	refresh, err := m.GenerateRefresh("alice", "64f000000000000000000001", false)
	require.NoError(t, err)

	_, err = m.VerifyRefresh(access)
	assert.Error(t, err)
	_, err = m.VerifyAccess(refresh)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewTokenManager(config.JWTConfig{
		AccessSecret:  "a-different-secret",
		RefreshSecret: "another-different-secret",
		Issuer:        "hearth-test",
	})

	token, err := m.GenerateAccess("alice", "64f000000000000000000001", false)
	require.NoError(t, err)

	_, err = other.VerifyAccess(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newTestManager()

	_, err := m.VerifyAccess("not.a.token")
	assert.Error(t, err)
	_, err = m.VerifyAccess("")
	assert.Error(t, err)
}
