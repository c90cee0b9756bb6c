package auth

import (
	"github.com/aryamhrt/internal-access-management-tools/internal/domain/user"
	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/validator"
)

type GoogleLoginRequest struct {
	Credential string `json:"credential"`
}

func (r *GoogleLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Credential) {
		errs = append(errs, validator.ValidationError{
			Field:   "credential",
			Message: "credential is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	User         user.UserResponse `json:"user"`
	Token        string            `json:"token"`
	ExpiresAt    int64             `json:"expires_at"`
	RefreshToken string            `json:"-"`
	RefreshExp   int64             `json:"-"`
}
