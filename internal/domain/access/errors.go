package access

import "errors"

var (
	ErrRequestNotFound         = errors.New("access request not found")
	ErrGrantNotFound           = errors.New("registry entry not found")
	ErrRequestAlreadyProcessed = errors.New("access request already processed")
	ErrDuplicateRequest        = errors.New("a pending request or active grant already exists for this application")
	ErrNotAllowed              = errors.New("not allowed to perform this action")

	// ErrPartialApproval marks an approve that updated the request but
	// failed to create the registry entry. The request shows approved with
	// no matching grant; manual reconciliation is required, so this must
	// never be collapsed into a generic failure.
	ErrPartialApproval = errors.New("request approved but registry entry creation failed")
)
