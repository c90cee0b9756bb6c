package access

import (
	"time"

	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/validator"
)

type RequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	ApplicationID string  `json:"application_id"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
	RequestDate   string  `json:"request_date"`
	ApprovedDate  *string `json:"approved_date,omitempty"`
	ApprovedBy    *string `json:"approved_by,omitempty"`
	AdminNotes    *string `json:"admin_notes,omitempty"`
	Justification string  `json:"justification"`
	AutoGenerated bool    `json:"auto_generated"`
}

func ToRequestResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		ApplicationID: r.ApplicationID,
		Type:          string(r.Type),
		Status:        string(r.Status),
		RequestDate:   r.RequestDate.Format(time.RFC3339),
		ApprovedBy:    r.ApprovedBy,
		AdminNotes:    r.AdminNotes,
		Justification: r.Justification,
		AutoGenerated: r.AutoGenerated,
	}
	if r.ApprovedDate != nil {
		d := r.ApprovedDate.Format(time.RFC3339)
		resp.ApprovedDate = &d
	}
	return resp
}

type GrantResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	ApplicationID string  `json:"application_id"`
	GrantedDate   string  `json:"granted_date"`
	GrantedBy     string  `json:"granted_by"`
	Status        string  `json:"status"`
	RevokedDate   *string `json:"revoked_date,omitempty"`
	RevokedBy     *string `json:"revoked_by,omitempty"`
}

func ToGrantResponse(g Grant) GrantResponse {
	resp := GrantResponse{
		ID:            g.ID,
		EmployeeID:    g.EmployeeID,
		ApplicationID: g.ApplicationID,
		GrantedDate:   g.GrantedDate.Format(time.RFC3339),
		GrantedBy:     g.GrantedBy,
		Status:        string(g.Status),
		RevokedBy:     g.RevokedBy,
	}
	if g.RevokedDate != nil {
		d := g.RevokedDate.Format(time.RFC3339)
		resp.RevokedDate = &d
	}
	return resp
}

type CreateRequestRequest struct {
	EmployeeID    string `json:"employee_id"`
	ApplicationID string `json:"application_id"`
	Justification string `json:"justification"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.ApplicationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "application_id",
			Message: "application_id is required",
		})
	}

	if validator.IsEmpty(r.Justification) {
		errs = append(errs, validator.ValidationError{
			Field:   "justification",
			Message: "justification is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ResolveRequestRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type RevokeGrantRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// UpdateRequestRequest is a partial update applied by the repositories;
// nil fields are left as-is
type UpdateRequestRequest struct {
	ID           string
	Status       *RequestStatus
	ApprovedDate *time.Time
	ApprovedBy   *string
	AdminNotes   *string
}

type UpdateGrantRequest struct {
	ID          string
	Status      *GrantStatus
	RevokedDate *time.Time
	RevokedBy   *string
}
