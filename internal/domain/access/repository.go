package access

import "context"

// RequestFilter is an exact-match conjunctive filter. Nil fields are not
// applied. Backends that cannot filter natively post-filter client-side;
// either way the result is identical.
type RequestFilter struct {
	Status        *RequestStatus
	EmployeeID    *string
	ApplicationID *string
}

type GrantFilter struct {
	Status        *GrantStatus
	EmployeeID    *string
	ApplicationID *string
}

// RequestRepository - collection access for the AccessRequests store
type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter RequestFilter) ([]Request, error)
	Update(ctx context.Context, update UpdateRequestRequest) (Request, error)
}

// GrantRepository - collection access for the AccessRegistry store
type GrantRepository interface {
	Create(ctx context.Context, grant Grant) (Grant, error)
	GetByID(ctx context.Context, id string) (Grant, error)
	List(ctx context.Context, filter GrantFilter) ([]Grant, error)
	Update(ctx context.Context, update UpdateGrantRequest) (Grant, error)
}
