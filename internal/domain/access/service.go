package access

import (
	"context"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/user"
)

// AccessService owns the request lifecycle and the grant registry. Every
// operation takes the acting user so the per-application authorization
// rules live here rather than in the transport layer.
type AccessService interface {
	CreateRequest(ctx context.Context, actor user.User, req CreateRequestRequest) (RequestResponse, error)
	GetRequest(ctx context.Context, actor user.User, id string) (RequestResponse, error)
	ListRequests(ctx context.Context, actor user.User, filter RequestFilter) ([]RequestResponse, error)
	// ApproveRequest resolves the request and records the grant. When the
	// grant write fails after the request was already stamped, the error
	// wraps ErrPartialApproval.
	ApproveRequest(ctx context.Context, actor user.User, id string, req ResolveRequestRequest) (RequestResponse, *GrantResponse, error)
	RejectRequest(ctx context.Context, actor user.User, id string, req ResolveRequestRequest) (RequestResponse, error)
	ListGrants(ctx context.Context, actor user.User, filter GrantFilter) ([]GrantResponse, error)
	RevokeGrant(ctx context.Context, actor user.User, id string, req RevokeGrantRequest) (GrantResponse, error)
}
