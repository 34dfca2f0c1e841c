package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/config"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/token"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates the single configured administrator
type AuthService struct {
	admin        config.AdminConfig
	tokenManager token.Manager
}

func NewAuthService(admin config.AdminConfig, tokenManager token.Manager) *AuthService {
	return &AuthService{
		admin:        admin,
		tokenManager: tokenManager,
	}
}

func (a *AuthService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	// 1. Compare username (constant time)
	usernameOK := subtle.ConstantTimeCompare([]byte(request.Username), []byte(a.admin.Username)) == 1

	// 2. Validate password, always run bcrypt so a wrong username costs the same
	passwordErr := bcrypt.CompareHashAndPassword([]byte(a.admin.PasswordHash), []byte(request.Password))

	if !usernameOK || passwordErr != nil {
		log.Warn("로그인 실패 - invalid credentials", "username", logger.MaskUsername(request.Username))
		return nil, fmt.Errorf("error %w", ErrIncorrectCredentials)
	}

	// 3. Generate JWT tokens
	accessToken, err := a.tokenManager.GenerateAccessToken(a.admin.Username)
	if err != nil {
		log.Error("access token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := a.tokenManager.GenerateRefreshToken(a.admin.Username)
	if err != nil {
		log.Error("refresh token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	log.Info("로그인 성공", "username", logger.MaskUsername(a.admin.Username))
	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
