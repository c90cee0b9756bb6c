package access

import "time"

type RequestType string

const (
	RequestTypeNew    RequestType = "new"
	RequestTypeUpdate RequestType = "update"
	RequestTypeDelete RequestType = "delete"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Request is a pending or resolved ask for access to an application.
//
// ApprovedDate and ApprovedBy record the resolution regardless of outcome:
// a rejection stamps them too. The naming is kept from the stored field
// names so records round-trip unchanged across all backends.
type Request struct {
	ID            string
	EmployeeID    string
	ApplicationID string
	Type          RequestType
	Status        RequestStatus
	RequestDate   time.Time
	ApprovedDate  *time.Time
	ApprovedBy    *string
	AdminNotes    *string
	Justification string
	AutoGenerated bool
}

// IsResolved reports whether the request has left the pending state.
// approved and rejected are terminal.
func (r *Request) IsResolved() bool {
	return r.Status == RequestStatusApproved || r.Status == RequestStatusRejected
}

type GrantStatus string

const (
	GrantStatusActive  GrantStatus = "active"
	GrantStatusRevoked GrantStatus = "revoked"
)

// Grant is a registry entry recording a currently or formerly granted
// access. Created only by approving a Request; never deleted.
type Grant struct {
	ID            string
	EmployeeID    string
	ApplicationID string
	GrantedDate   time.Time
	GrantedBy     string
	Status        GrantStatus
	RevokedDate   *time.Time
	RevokedBy     *string
}
