package user

import (
	"time"

	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	Status       string  `json:"status"`
	JoinDate     string  `json:"join_date"`
	OffboardDate *string `json:"offboard_date,omitempty"`
	InvitedBy    *string `json:"invited_by,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Status:    string(u.Status),
		JoinDate:  u.JoinDate.Format(time.RFC3339),
		InvitedBy: u.InvitedBy,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.OffboardDate != nil {
		d := u.OffboardDate.Format(time.RFC3339)
		resp.OffboardDate = &d
	}
	return resp
}

// CreateUserRequest represents request to provision a new user
type CreateUserRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	InvitedBy *string `json:"invited_by,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else {
		validRoles := []string{string(RoleSuperAdmin), string(RoleAppAdmin), string(RoleEmployee)}
		if !validator.IsInSlice(r.Role, validRoles) {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "invalid role",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateUserRequest represents a partial update; nil fields are left as-is
type UpdateUserRequest struct {
	ID           string     `json:"id"`
	Name         *string    `json:"name,omitempty"`
	Role         *string    `json:"role,omitempty"`
	Status       *string    `json:"status,omitempty"`
	OffboardDate *time.Time `json:"offboard_date,omitempty"`
	InvitedBy    *string    `json:"invited_by,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Role != nil {
		validRoles := []string{string(RoleSuperAdmin), string(RoleAppAdmin), string(RoleEmployee)}
		if !validator.IsInSlice(*r.Role, validRoles) {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "invalid role",
			})
		}
	}

	if r.Status != nil {
		validStatuses := []string{string(StatusActive), string(StatusOffboard)}
		if !validator.IsInSlice(*r.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "invalid status",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
