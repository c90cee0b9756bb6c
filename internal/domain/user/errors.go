package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserEmailExists        = errors.New("email already registered")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrSuperAdminRequired     = errors.New("super admin access required")
	ErrAlreadyOffboarded      = errors.New("user already offboarded")
)
