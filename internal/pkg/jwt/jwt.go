package jwt

import (
	"net/http"
	"sync"
	"time"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(userID string, email string, name string, role user.Role) (token string, expiresAt int64, err error)
	GenerateRefreshToken(userID string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
	revokedTokens              map[string]int64
	mu                         sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:              make(map[string]int64),
	}
}

func (j *JWTService) GenerateAccessToken(userID string, email string, name string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id": userID,
		"email":   email,
		"name":    name,
		"role":    string(role),
		"type":    "access",
		"exp":     expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(userID string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"exp":     expiresAt,
		"type":    "refresh",
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

// RevokeToken blocklists a token until its own lifetime has passed. Once
// the token expires the signature check rejects it anyway, so the entry
// can be dropped; each revocation also sweeps out stale entries.
func (j *JWTService) RevokeToken(token string) {
	ttl, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		// Tokens are never issued with a bad duration; keep the entry
		// for a day as an upper bound.
		ttl = 24 * time.Hour
	}

	now := time.Now()
	j.mu.Lock()
	defer j.mu.Unlock()
	j.pruneExpiredLocked(now)
	j.revokedTokens[token] = now.Add(ttl).UnixNano()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	expiresAt, revoked := j.revokedTokens[token]
	j.mu.RUnlock()
	if !revoked {
		return false
	}
	if time.Now().UnixNano() >= expiresAt {
		j.mu.Lock()
		delete(j.revokedTokens, token)
		j.mu.Unlock()
		return false
	}
	return true
}

// Callers hold the write lock.
func (j *JWTService) pruneExpiredLocked(now time.Time) {
	for token, expiresAt := range j.revokedTokens {
		if now.UnixNano() >= expiresAt {
			delete(j.revokedTokens, token)
		}
	}
}
