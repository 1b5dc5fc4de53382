package handler

import (
	"Hearth/internal/api/dto"
	"Hearth/internal/pkg/response"
	"Hearth/internal/pkg/security"
	"Hearth/internal/service"

	"github.com/gin-gonic/gin"
)

// RefreshCookieName refresh token 所在的 httpOnly cookie
const RefreshCookieName = "refreshToken"

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := h.authSvc.SignUp(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"username": req.Username})
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	// 旧 cookie 里的 refresh token 交给服务端清理
	stale, _ := c.Cookie(RefreshCookieName)

	result, refreshToken, err := h.authSvc.SignIn(c.Request.Context(), &req, stale)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(RefreshCookieName, refreshToken, int(security.RefreshTokenTTL.Seconds()), "/", "", false, true)
	response.Success(c, result)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, _ := c.Cookie(RefreshCookieName)

	result, err := h.authSvc.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, result)
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	refreshToken, _ := c.Cookie(RefreshCookieName)

	if err := h.authSvc.SignOut(c.Request.Context(), refreshToken); err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(RefreshCookieName, "", -1, "/", "", false, true)
	response.Accepted(c, gin.H{})
}

func (h *AuthHandler) CheckAccount(c *gin.Context) {
	var req dto.CheckAccountDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := h.authSvc.CheckAccount(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"username": req.Username})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := h.authSvc.ResetPassword(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"username": req.Username})
}
