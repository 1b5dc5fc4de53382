package service

import (
	"Hearth/internal/api/dto"
	"Hearth/internal/model"
	"Hearth/internal/pkg/security"
	"Hearth/internal/repository"
	"context"
	log "log/slog"
)

type AuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpDTO) error
	SignIn(ctx context.Context, req *dto.SignInDTO, staleRefreshToken string) (*dto.SignInResponse, string, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error)
	SignOut(ctx context.Context, refreshToken string) error
	CheckAccount(ctx context.Context, req *dto.CheckAccountDTO) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordDTO) error
}

type authServiceImpl struct {
	userRepo  repository.UserRepo
	tokenRepo repository.RefreshTokenRepo
	tokens    *security.TokenManager
}

func NewAuthService(userRepo repository.UserRepo, tokenRepo repository.RefreshTokenRepo, tokens *security.TokenManager) AuthService {
	return &authServiceImpl{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		tokens:    tokens,
	}
}

// SignUp 先查邮箱再查用户名，重复即 409
func (s *authServiceImpl) SignUp(ctx context.Context, req *dto.SignUpDTO) error {
	existing, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailExist
	}

	existing, err = s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUsernameExist
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return err
	}

	return s.userRepo.CreateUser(ctx, &model.User{
		Username: req.Username,
		Password: hashed,
		Email:    req.Email,
	})
}

// SignIn 成功后签发双令牌并持久化 refresh token
// 携带的旧 cookie 令牌尽力删除，失败不影响登录
func (s *authServiceImpl) SignIn(ctx context.Context, req *dto.SignInDTO, staleRefreshToken string) (*dto.SignInResponse, string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", err
	}
	if user == nil || security.CheckPasswordHash(req.Password, user.Password) != nil {
		return nil, "", ErrInvalidCredential
	}

	if staleRefreshToken != "" {
		if err = s.tokenRepo.Delete(ctx, staleRefreshToken); err != nil {
			log.WarnContext(ctx, "清理旧 refresh token 失败", "err", err)
		}
	}

	userID := user.ID.Hex()
	accessToken, err := s.tokens.GenerateAccess(user.Username, userID, user.Admin)
	if err != nil {
		return nil, "", err
	}
	refreshToken, err := s.tokens.GenerateRefresh(user.Username, userID, user.Admin)
	if err != nil {
		return nil, "", err
	}

	if err = s.tokenRepo.Save(ctx, refreshToken); err != nil {
		return nil, "", err
	}

	return &dto.SignInResponse{
		UserData: dto.UserDataDTO{
			ID:       userID,
			Username: user.Username,
			Admin:    user.Admin,
		},
		AccessToken: accessToken,
	}, refreshToken, nil
}

// Refresh 只认仍在存储中的 refresh token，签名有效但已被登出的令牌一律拒绝
func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	if refreshToken == "" {
		return nil, ErrNotSignin
	}

	exists, err := s.tokenRepo.Exists(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotSignin
	}

	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, ErrNotSignin
	}

	accessToken, err := s.tokens.GenerateAccess(claims.Username, claims.UserID, claims.Admin)
	if err != nil {
		return nil, err
	}

	return &dto.RefreshResponse{
		UserData: dto.UserDataDTO{
			ID:       claims.UserID,
			Username: claims.Username,
			Admin:    claims.Admin,
		},
		AccessToken: accessToken,
	}, nil
}

// SignOut 尽力删除，无论结果如何都视为登出成功
func (s *authServiceImpl) SignOut(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.tokenRepo.Delete(ctx, refreshToken); err != nil {
		log.WarnContext(ctx, "删除 refresh token 失败", "err", err)
	}
	return nil
}

// CheckAccount 重置密码前确认用户名与邮箱匹配
func (s *authServiceImpl) CheckAccount(ctx context.Context, req *dto.CheckAccountDTO) error {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return err
	}
	if user == nil || user.Email != req.Email {
		return ErrUserNotFound
	}
	return nil
}

func (s *authServiceImpl) ResetPassword(ctx context.Context, req *dto.ResetPasswordDTO) error {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return err
	}
	if user == nil || user.Email != req.Email {
		return ErrUserNotFound
	}

	hashed, err := security.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, user.ID, hashed)
}
