package access

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/access"
	"github.com/aryamhrt/internal-access-management-tools/internal/domain/user"
	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/cache"
	"github.com/aryamhrt/internal-access-management-tools/internal/service/authz"
)

const (
	requestsCachePrefix  = "access_requests"
	registryCachePrefix  = "access_registry"
	dashboardCachePrefix = "dashboard"
)

type AccessServiceImpl struct {
	access.RequestRepository
	access.GrantRepository
	policy *authz.Policy
	cache  cache.Cache
}

func NewAccessService(requestRepository access.RequestRepository, grantRepository access.GrantRepository, policy *authz.Policy, c cache.Cache) access.AccessService {
	return &AccessServiceImpl{
		RequestRepository: requestRepository,
		GrantRepository:   grantRepository,
		policy:            policy,
		cache:             c,
	}
}

// CreateRequest implements access.AccessService.
func (s *AccessServiceImpl) CreateRequest(ctx context.Context, actor user.User, req access.CreateRequestRequest) (access.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return access.RequestResponse{}, err
	}
	if err := s.policy.CanCreateRequest(actor, req.EmployeeID); err != nil {
		return access.RequestResponse{}, err
	}

	// Reject duplicates up front: a pending request or an active grant
	// for the same employee and application already covers this ask.
	pending := access.RequestStatusPending
	open, err := s.RequestRepository.List(ctx, access.RequestFilter{
		Status:        &pending,
		EmployeeID:    &req.EmployeeID,
		ApplicationID: &req.ApplicationID,
	})
	if err != nil {
		return access.RequestResponse{}, fmt.Errorf("failed to list pending requests: %w", err)
	}
	if len(open) > 0 {
		return access.RequestResponse{}, access.ErrDuplicateRequest
	}

	active := access.GrantStatusActive
	grants, err := s.GrantRepository.List(ctx, access.GrantFilter{
		Status:        &active,
		EmployeeID:    &req.EmployeeID,
		ApplicationID: &req.ApplicationID,
	})
	if err != nil {
		return access.RequestResponse{}, fmt.Errorf("failed to list active grants: %w", err)
	}
	if len(grants) > 0 {
		return access.RequestResponse{}, access.ErrDuplicateRequest
	}

	created, err := s.RequestRepository.Create(ctx, access.Request{
		EmployeeID:    req.EmployeeID,
		ApplicationID: req.ApplicationID,
		Type:          access.RequestTypeNew,
		Status:        access.RequestStatusPending,
		RequestDate:   time.Now(),
		Justification: req.Justification,
		AutoGenerated: false,
	})
	if err != nil {
		return access.RequestResponse{}, fmt.Errorf("failed to create access request: %w", err)
	}

	s.cache.Invalidate(ctx, requestsCachePrefix)
	s.cache.Invalidate(ctx, dashboardCachePrefix)

	return access.ToRequestResponse(created), nil
}

// GetRequest implements access.AccessService.
func (s *AccessServiceImpl) GetRequest(ctx context.Context, actor user.User, id string) (access.RequestResponse, error) {
	req, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return access.RequestResponse{}, err
	}
	if err := s.policy.CanViewRequest(actor, req); err != nil {
		return access.RequestResponse{}, err
	}
	return access.ToRequestResponse(req), nil
}

// ListRequests implements access.AccessService.
func (s *AccessServiceImpl) ListRequests(ctx context.Context, actor user.User, filter access.RequestFilter) ([]access.RequestResponse, error) {
	filter = s.policy.ScopeRequestFilter(actor, filter)

	key := requestsCacheKey(filter)
	var responses []access.RequestResponse
	if data, ok := s.cache.Get(ctx, key); ok {
		if err := json.Unmarshal(data, &responses); err == nil {
			return responses, nil
		}
	}

	requests, err := s.RequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list access requests: %w", err)
	}

	responses = make([]access.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, access.ToRequestResponse(req))
	}

	if data, err := json.Marshal(responses); err == nil {
		s.cache.Set(ctx, key, data, cache.DefaultTTL)
	}
	return responses, nil
}

// atomicStore is implemented by backends that can run both approve
// writes in one transaction. The request and registry repositories must
// share the store for the transactional context to cover both.
type atomicStore interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ApproveRequest implements access.AccessService.
//
// Approval is two writes: stamp the request, then record the grant. On a
// transactional backend both writes commit or roll back together. On the
// remote stores a registry write failure leaves the request approved and
// the error wraps access.ErrPartialApproval so the caller can report the
// inconsistency instead of a silent half-state.
func (s *AccessServiceImpl) ApproveRequest(ctx context.Context, actor user.User, id string, req access.ResolveRequestRequest) (access.RequestResponse, *access.GrantResponse, error) {
	request, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return access.RequestResponse{}, nil, err
	}
	if request.IsResolved() {
		return access.RequestResponse{}, nil, access.ErrRequestAlreadyProcessed
	}
	if err := s.policy.CanResolve(ctx, actor, request.ApplicationID); err != nil {
		return access.RequestResponse{}, nil, err
	}

	now := time.Now()
	approved := access.RequestStatusApproved
	update := access.UpdateRequestRequest{
		ID:           id,
		Status:       &approved,
		ApprovedDate: &now,
		ApprovedBy:   &actor.Email,
		AdminNotes:   req.Notes,
	}
	newGrant := access.Grant{
		EmployeeID:    request.EmployeeID,
		ApplicationID: request.ApplicationID,
		GrantedDate:   now,
		GrantedBy:     actor.Email,
		Status:        access.GrantStatusActive,
	}

	var updated access.Request
	var grant access.Grant
	if store, ok := s.RequestRepository.(atomicStore); ok {
		err = store.WithTransaction(ctx, func(ctx context.Context) error {
			var txErr error
			if updated, txErr = s.RequestRepository.Update(ctx, update); txErr != nil {
				return txErr
			}
			grant, txErr = s.GrantRepository.Create(ctx, newGrant)
			return txErr
		})
		if err != nil {
			return access.RequestResponse{}, nil, fmt.Errorf("failed to approve request: %w", err)
		}
	} else {
		updated, err = s.RequestRepository.Update(ctx, update)
		if err != nil {
			return access.RequestResponse{}, nil, fmt.Errorf("failed to approve request: %w", err)
		}

		s.cache.Invalidate(ctx, requestsCachePrefix)
		s.cache.Invalidate(ctx, dashboardCachePrefix)

		grant, err = s.GrantRepository.Create(ctx, newGrant)
		if err != nil {
			resp := access.ToRequestResponse(updated)
			return resp, nil, fmt.Errorf("%w: request %s approved but registry write failed: %v", access.ErrPartialApproval, id, err)
		}
	}

	s.cache.Invalidate(ctx, requestsCachePrefix)
	s.cache.Invalidate(ctx, dashboardCachePrefix)
	s.cache.Invalidate(ctx, registryCachePrefix)

	grantResp := access.ToGrantResponse(grant)
	return access.ToRequestResponse(updated), &grantResp, nil
}

// RejectRequest implements access.AccessService.
//
// The resolution stamps reuse the approved_date and approved_by fields;
// the stored records keep one column pair for either outcome.
func (s *AccessServiceImpl) RejectRequest(ctx context.Context, actor user.User, id string, req access.ResolveRequestRequest) (access.RequestResponse, error) {
	request, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		return access.RequestResponse{}, err
	}
	if request.IsResolved() {
		return access.RequestResponse{}, access.ErrRequestAlreadyProcessed
	}
	if err := s.policy.CanResolve(ctx, actor, request.ApplicationID); err != nil {
		return access.RequestResponse{}, err
	}

	now := time.Now()
	rejected := access.RequestStatusRejected
	updated, err := s.RequestRepository.Update(ctx, access.UpdateRequestRequest{
		ID:           id,
		Status:       &rejected,
		ApprovedDate: &now,
		ApprovedBy:   &actor.Email,
		AdminNotes:   req.Notes,
	})
	if err != nil {
		return access.RequestResponse{}, fmt.Errorf("failed to reject request: %w", err)
	}

	s.cache.Invalidate(ctx, requestsCachePrefix)
	s.cache.Invalidate(ctx, dashboardCachePrefix)

	return access.ToRequestResponse(updated), nil
}

// ListGrants implements access.AccessService.
func (s *AccessServiceImpl) ListGrants(ctx context.Context, actor user.User, filter access.GrantFilter) ([]access.GrantResponse, error) {
	filter = s.policy.ScopeGrantFilter(actor, filter)

	key := registryCacheKey(filter)
	var responses []access.GrantResponse
	if data, ok := s.cache.Get(ctx, key); ok {
		if err := json.Unmarshal(data, &responses); err == nil {
			return responses, nil
		}
	}

	grants, err := s.GrantRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list registry entries: %w", err)
	}

	responses = make([]access.GrantResponse, 0, len(grants))
	for _, grant := range grants {
		responses = append(responses, access.ToGrantResponse(grant))
	}

	if data, err := json.Marshal(responses); err == nil {
		s.cache.Set(ctx, key, data, cache.DefaultTTL)
	}
	return responses, nil
}

// RevokeGrant implements access.AccessService.
//
// Revoking an already revoked entry is not an error; the stamps are
// simply overwritten with the latest revocation.
func (s *AccessServiceImpl) RevokeGrant(ctx context.Context, actor user.User, id string, req access.RevokeGrantRequest) (access.GrantResponse, error) {
	grant, err := s.GrantRepository.GetByID(ctx, id)
	if err != nil {
		return access.GrantResponse{}, err
	}
	if err := s.policy.CanResolve(ctx, actor, grant.ApplicationID); err != nil {
		return access.GrantResponse{}, err
	}

	now := time.Now()
	revoked := access.GrantStatusRevoked
	updated, err := s.GrantRepository.Update(ctx, access.UpdateGrantRequest{
		ID:          id,
		Status:      &revoked,
		RevokedDate: &now,
		RevokedBy:   &actor.Email,
	})
	if err != nil {
		return access.GrantResponse{}, fmt.Errorf("failed to revoke registry entry: %w", err)
	}

	s.cache.Invalidate(ctx, registryCachePrefix)
	s.cache.Invalidate(ctx, dashboardCachePrefix)

	return access.ToGrantResponse(updated), nil
}

func requestsCacheKey(filter access.RequestFilter) string {
	return requestsCachePrefix + ":" + filterKey((*string)(filter.Status), filter.EmployeeID, filter.ApplicationID)
}

func registryCacheKey(filter access.GrantFilter) string {
	return registryCachePrefix + ":" + filterKey((*string)(filter.Status), filter.EmployeeID, filter.ApplicationID)
}

func filterKey(status, employeeID, applicationID *string) string {
	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	return deref(status) + "|" + deref(employeeID) + "|" + deref(applicationID)
}
