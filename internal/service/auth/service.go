package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/auth"
	"github.com/aryamhrt/internal-access-management-tools/internal/domain/user"
	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/googleid"
	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/jwt"
	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	user.Repository
	jwt.Service
	oauth.GoogleService
}

func NewAuthService(userRepository user.Repository, jwtService jwt.Service, googleService oauth.GoogleService) auth.AuthService {
	return &AuthServiceImpl{
		Repository:    userRepository,
		Service:       jwtService,
		GoogleService: googleService,
	}
}

// GoogleLogin implements auth.AuthService.
//
// Login never provisions accounts. The credential only proves who is at
// the keyboard; access is decided by the user directory.
func (a *AuthServiceImpl) GoogleLogin(ctx context.Context, req auth.GoogleLoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	claims, err := googleid.Decode(req.Credential)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredential
	}

	return a.loginByEmail(ctx, claims.Email)
}

// OAuthGoogleURL implements auth.AuthService.
func (a *AuthServiceImpl) OAuthGoogleURL(userAgent string) (string, string) {
	state := a.GoogleService.GenerateState(userAgent)
	return a.GoogleService.AuthURL(state), state
}

// OAuthCallbackGoogle implements auth.AuthService.
func (a *AuthServiceImpl) OAuthCallbackGoogle(ctx context.Context, code string) (auth.LoginResponse, error) {
	profile, err := a.GoogleService.Exchange(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredential
	}

	return a.loginByEmail(ctx, profile.Email)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	a.Service.RevokeToken(token)
	return nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, userID string) (user.UserResponse, error) {
	userData, err := a.Repository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, auth.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user.ToResponse(userData), nil
}

func (a *AuthServiceImpl) loginByEmail(ctx context.Context, email string) (auth.LoginResponse, error) {
	userData, err := a.Repository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrUserNotFound
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !userData.IsActive() {
		return auth.LoginResponse{}, auth.ErrUserInactive
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Name, userData.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	refreshToken, refreshExp, err := a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return auth.LoginResponse{
		User:         user.ToResponse(userData),
		Token:        token,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
		RefreshExp:   refreshExp,
	}, nil
}
