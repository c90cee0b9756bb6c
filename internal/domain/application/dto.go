package application

import (
	"time"

	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/validator"
)

type ApplicationResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	AdminEmails []string `json:"admin_emails"`
	CreatedAt   string   `json:"created_at"`
	CreatedBy   string   `json:"created_by"`
}

func ToResponse(app Application) ApplicationResponse {
	emails := app.AdminEmails
	if emails == nil {
		emails = []string{}
	}
	return ApplicationResponse{
		ID:          app.ID,
		Name:        app.Name,
		Category:    app.Category,
		Description: app.Description,
		AdminEmails: emails,
		CreatedAt:   app.CreatedAt.Format(time.RFC3339),
		CreatedBy:   app.CreatedBy,
	}
}

type CreateApplicationRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	AdminEmails []string `json:"admin_emails,omitempty"`
}

func (r *CreateApplicationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	}

	for _, email := range r.AdminEmails {
		if !validator.IsValidEmail(email) {
			errs = append(errs, validator.ValidationError{
				Field:   "admin_emails",
				Message: "invalid email format: " + email,
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateApplicationRequest is a partial update; nil fields are left as-is
type UpdateApplicationRequest struct {
	ID          string    `json:"id"`
	Name        *string   `json:"name,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Description *string   `json:"description,omitempty"`
	AdminEmails *[]string `json:"admin_emails,omitempty"`
}

func (r *UpdateApplicationRequest) Validate() error {
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

	if r.AdminEmails != nil {
		for _, email := range *r.AdminEmails {
			if !validator.IsValidEmail(email) {
				errs = append(errs, validator.ValidationError{
					Field:   "admin_emails",
					Message: "invalid email format: " + email,
				})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
