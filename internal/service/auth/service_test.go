package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/auth"
	"github.com/aryamhrt/internal-access-management-tools/internal/domain/user"
	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/jwt"
	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/oauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type stubUserRepo struct {
	users []user.User
}

func (s *stubUserRepo) List(ctx context.Context) ([]user.User, error) {
	return s.users, nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (s *stubUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	s.users = append(s.users, u)
	return u, nil
}

func (s *stubUserRepo) Update(ctx context.Context, update user.UpdateUserRequest) (user.User, error) {
	for _, u := range s.users {
		if u.ID == update.ID {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

type stubGoogleService struct {
	profile oauth.GoogleProfile
	err     error
}

func (s *stubGoogleService) GenerateState(userAgent string) string { return "state-token" }
func (s *stubGoogleService) AuthURL(state string) string {
	return "https://accounts.google.test/auth?state=" + state
}
func (s *stubGoogleService) Exchange(ctx context.Context, code string) (oauth.GoogleProfile, error) {
	return s.profile, s.err
}

func makeCredential(t *testing.T, email, name string) string {
	t.Helper()
	header, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	require.NoError(t, err)
	payload, err := json.Marshal(map[string]string{
		"sub":   "109876543210987654321",
		"email": email,
		"name":  name,
	})
	require.NoError(t, err)

	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "." + enc.EncodeToString([]byte("sig"))
}

func newTestService(repo *stubUserRepo, google oauth.GoogleService) auth.AuthService {
	if google == nil {
		google = &stubGoogleService{}
	}
	jwtSvc := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(repo, jwtSvc, google)
}

func activeUser(id, email string, role user.Role) user.User {
	return user.User{
		ID:       id,
		Name:     "Test User",
		Email:    email,
		Role:     role,
		Status:   user.StatusActive,
		JoinDate: time.Now(),
	}
}

func TestGoogleLogin_Success(t *testing.T) {
	repo := &stubUserRepo{users: []user.User{activeUser("usr-1", "ana@company.test", user.RoleEmployee)}}
	svc := newTestService(repo, nil)

	resp, err := svc.GoogleLogin(context.Background(), auth.GoogleLoginRequest{
		Credential: makeCredential(t, "ana@company.test", "Ana"),
	})
	require.NoError(t, err)

	assert.Equal(t, "usr-1", resp.User.ID)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestGoogleLogin_CaseInsensitiveEmail(t *testing.T) {
	repo := &stubUserRepo{users: []user.User{activeUser("usr-1", "Ana@Company.Test", user.RoleEmployee)}}
	svc := newTestService(repo, nil)

	resp, err := svc.GoogleLogin(context.Background(), auth.GoogleLoginRequest{
		Credential: makeCredential(t, "ana@company.test", "Ana"),
	})
	require.NoError(t, err)
	assert.Equal(t, "usr-1", resp.User.ID)
}

func TestGoogleLogin_UnknownEmail(t *testing.T) {
	repo := &stubUserRepo{users: []user.User{activeUser("usr-1", "ana@company.test", user.RoleEmployee)}}
	svc := newTestService(repo, nil)

	_, err := svc.GoogleLogin(context.Background(), auth.GoogleLoginRequest{
		Credential: makeCredential(t, "stranger@elsewhere.test", "Stranger"),
	})
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestGoogleLogin_OffboardedUser(t *testing.T) {
	offboarded := activeUser("usr-1", "ana@company.test", user.RoleEmployee)
	offboarded.Status = user.StatusOffboard
	repo := &stubUserRepo{users: []user.User{offboarded}}
	svc := newTestService(repo, nil)

	_, err := svc.GoogleLogin(context.Background(), auth.GoogleLoginRequest{
		Credential: makeCredential(t, "ana@company.test", "Ana"),
	})
	assert.ErrorIs(t, err, auth.ErrUserInactive)
}

func TestGoogleLogin_BadCredential(t *testing.T) {
	repo := &stubUserRepo{}
	svc := newTestService(repo, nil)

	_, err := svc.GoogleLogin(context.Background(), auth.GoogleLoginRequest{Credential: "garbage"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredential)

	_, err = svc.GoogleLogin(context.Background(), auth.GoogleLoginRequest{})
	assert.Error(t, err)
}

func TestOAuthCallbackGoogle(t *testing.T) {
	repo := &stubUserRepo{users: []user.User{activeUser("usr-1", "ana@company.test", user.RoleEmployee)}}
	google := &stubGoogleService{profile: oauth.GoogleProfile{
		GoogleID: "109876543210987654321",
		Email:    "ana@company.test",
		Name:     "Ana",
	}}
	svc := newTestService(repo, google)

	resp, err := svc.OAuthCallbackGoogle(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "usr-1", resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestOAuthCallbackGoogle_ExchangeFails(t *testing.T) {
	repo := &stubUserRepo{}
	google := &stubGoogleService{err: assert.AnError}
	svc := newTestService(repo, google)

	_, err := svc.OAuthCallbackGoogle(context.Background(), "bad-code")
	assert.ErrorIs(t, err, auth.ErrInvalidCredential)
}

func TestMe(t *testing.T) {
	repo := &stubUserRepo{users: []user.User{activeUser("usr-1", "ana@company.test", user.RoleEmployee)}}
	svc := newTestService(repo, nil)

	me, err := svc.Me(context.Background(), "usr-1")
	require.NoError(t, err)
	assert.Equal(t, "ana@company.test", me.Email)

	_, err = svc.Me(context.Background(), "usr-missing")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestLogout_RevokesToken(t *testing.T) {
	repo := &stubUserRepo{users: []user.User{activeUser("usr-1", "ana@company.test", user.RoleEmployee)}}
	jwtSvc := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	svc := NewAuthService(repo, jwtSvc, &stubGoogleService{})

	token, _, err := jwtSvc.GenerateAccessToken("usr-1", "ana@company.test", "Ana", user.RoleEmployee)
	require.NoError(t, err)
	assert.False(t, jwtSvc.IsTokenRevoked(token))

	require.NoError(t, svc.Logout(context.Background(), token))
	assert.True(t, jwtSvc.IsTokenRevoked(token))

	assert.ErrorIs(t, svc.Logout(context.Background(), ""), auth.ErrInvalidToken)
}
