package auth

import "errors"

var (
	ErrInvalidToken      = errors.New("invalid or missing token")
	ErrTokenExpired      = errors.New("token expired")
	ErrInvalidCredential = errors.New("invalid identity credential")
	ErrUserNotFound      = errors.New("email is not registered in the user directory")
	ErrUserInactive      = errors.New("account is not active")
)
