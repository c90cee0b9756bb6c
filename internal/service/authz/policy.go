// Package authz holds the per-application authorization rules for the
// access lifecycle. Route-level role gates live in the HTTP middleware;
// anything that depends on which application a request targets is
// decided here.
package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/access"
	"github.com/aryamhrt/internal-access-management-tools/internal/domain/application"
	"github.com/aryamhrt/internal-access-management-tools/internal/domain/user"
)

type Policy struct {
	applicationRepository application.Repository
}

func NewPolicy(applicationRepository application.Repository) *Policy {
	return &Policy{applicationRepository: applicationRepository}
}

// CanCreateRequest allows employees to raise requests for themselves only.
// Admins of either level may raise a request on anyone's behalf, for any
// application; per-application scoping only applies when resolving.
func (p *Policy) CanCreateRequest(actor user.User, employeeID string) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.ID != employeeID {
		return access.ErrNotAllowed
	}
	return nil
}

// CanResolve decides whether the actor may approve, reject or revoke for
// the given application. App admins qualify through the application's
// admin email list; if the application no longer exists only a super
// admin may still resolve the dangling entry.
func (p *Policy) CanResolve(ctx context.Context, actor user.User, applicationID string) error {
	if actor.IsSuperAdmin() {
		return nil
	}
	if actor.Role != user.RoleAppAdmin {
		return access.ErrNotAllowed
	}

	app, err := p.applicationRepository.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, application.ErrApplicationNotFound) {
			return access.ErrNotAllowed
		}
		return fmt.Errorf("failed to get application for authorization: %w", err)
	}
	if !actor.AdministersEmails(app.AdminEmails) {
		return access.ErrNotAllowed
	}
	return nil
}

// ScopeRequestFilter narrows a list filter to what the actor may see.
// Employees only see their own requests; admins see everything.
func (p *Policy) ScopeRequestFilter(actor user.User, filter access.RequestFilter) access.RequestFilter {
	if !actor.IsAdmin() {
		id := actor.ID
		filter.EmployeeID = &id
	}
	return filter
}

// ScopeGrantFilter mirrors ScopeRequestFilter for the registry.
func (p *Policy) ScopeGrantFilter(actor user.User, filter access.GrantFilter) access.GrantFilter {
	if !actor.IsAdmin() {
		id := actor.ID
		filter.EmployeeID = &id
	}
	return filter
}

// CanViewRequest lets employees read their own requests and admins read
// anything.
func (p *Policy) CanViewRequest(actor user.User, req access.Request) error {
	if actor.IsAdmin() || actor.ID == req.EmployeeID {
		return nil
	}
	return access.ErrNotAllowed
}
