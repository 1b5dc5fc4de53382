package dto

// SignUpDTO 注册请求
type SignUpDTO struct {
	Username string `json:"username" binding:"required,min=3,max=20"`
	Password string `json:"password" binding:"required,min=6,max=64"`
	Email    string `json:"email" binding:"required,email"`
}

// SignInDTO 登录请求
type SignInDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CheckAccountDTO 重置密码前的账号校验
type CheckAccountDTO struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// ResetPasswordDTO 重置密码
type ResetPasswordDTO struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required,min=6,max=64"`
}

// UserDataDTO 令牌内嵌的用户信息
type UserDataDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
}

// SignInResponse 登录响应，refresh token 走 httpOnly cookie
type SignInResponse struct {
	UserData    UserDataDTO `json:"userData"`
	AccessToken string      `json:"accessToken"`
}

// RefreshResponse 刷新响应
type RefreshResponse struct {
	UserData    UserDataDTO `json:"userData"`
	AccessToken string      `json:"accessToken"`
}
