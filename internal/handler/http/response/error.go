package response

import (
	"errors"
	"net/http"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/access"
	"github.com/aryamhrt/internal-access-management-tools/internal/domain/application"
	"github.com/aryamhrt/internal-access-management-tools/internal/domain/auth"
	"github.com/aryamhrt/internal-access-management-tools/internal/domain/user"
	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidCredential):
		Unauthorized(w, "Invalid identity credential")
	case errors.Is(err, auth.ErrUserNotFound):
		Unauthorized(w, "Email is not registered")
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "Account is not active")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAlreadyOffboarded):
		Conflict(w, "User is already offboarded")
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrSuperAdminRequired):
		Forbidden(w, err.Error())

	// Application domain errors
	case errors.Is(err, application.ErrApplicationNotFound):
		NotFound(w, "Application not found")

	// Access domain errors
	case errors.Is(err, access.ErrRequestNotFound):
		NotFound(w, "Access request not found")
	case errors.Is(err, access.ErrGrantNotFound):
		NotFound(w, "Registry entry not found")
	case errors.Is(err, access.ErrRequestAlreadyProcessed):
		Conflict(w, "Access request already processed")
	case errors.Is(err, access.ErrDuplicateRequest):
		Conflict(w, "A pending request or active access already exists")
	case errors.Is(err, access.ErrNotAllowed):
		Forbidden(w, "Not allowed for this application")
	case errors.Is(err, access.ErrPartialApproval):
		// The request was stamped but the registry write failed; the
		// distinct code tells the operator to reconcile by hand.
		InternalServerError(w, "PARTIAL_FAILURE", "Request approved but access registry update failed")

	// Default
	default:
		InternalServerError(w, "BACKEND_ERROR", "An unexpected error occurred")
	}
}
