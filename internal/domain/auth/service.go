package auth

import (
	"context"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/user"
)

type AuthService interface {
	// GoogleLogin signs in with a Google Identity Services credential
	// posted by the frontend button.
	GoogleLogin(ctx context.Context, req GoogleLoginRequest) (LoginResponse, error)
	// OAuthGoogleURL starts the redirect flow; the returned state must be
	// echoed back on the callback.
	OAuthGoogleURL(userAgent string) (url string, state string)
	OAuthCallbackGoogle(ctx context.Context, code string) (LoginResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, userID string) (user.UserResponse, error)
}
