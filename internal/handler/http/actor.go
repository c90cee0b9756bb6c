package http

import (
	"context"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/auth"
	"github.com/aryamhrt/internal-access-management-tools/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// actorFromContext rebuilds the acting user from the verified token
// claims. Everything behind AuthRequired can rely on these fields.
func actorFromContext(ctx context.Context) (user.User, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.User{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.User{}, auth.ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return user.User{
		ID:     userID,
		Name:   name,
		Email:  email,
		Role:   user.Role(role),
		Status: user.StatusActive,
	}, nil
}
