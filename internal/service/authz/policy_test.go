package authz

import (
	"context"
	"testing"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/access"
	"github.com/aryamhrt/internal-access-management-tools/internal/domain/application"
	"github.com/aryamhrt/internal-access-management-tools/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

type stubApplicationRepo struct {
	apps map[string]application.Application
}

func (s *stubApplicationRepo) List(ctx context.Context) ([]application.Application, error) {
	var out []application.Application
	for _, app := range s.apps {
		out = append(out, app)
	}
	return out, nil
}

func (s *stubApplicationRepo) GetByID(ctx context.Context, id string) (application.Application, error) {
	app, ok := s.apps[id]
	if !ok {
		return application.Application{}, application.ErrApplicationNotFound
	}
	return app, nil
}

func (s *stubApplicationRepo) Create(ctx context.Context, app application.Application) (application.Application, error) {
	s.apps[app.ID] = app
	return app, nil
}

func (s *stubApplicationRepo) Update(ctx context.Context, update application.UpdateApplicationRequest) (application.Application, error) {
	return s.apps[update.ID], nil
}

func (s *stubApplicationRepo) Delete(ctx context.Context, id string) error {
	delete(s.apps, id)
	return nil
}

func newTestPolicy() *Policy {
	return NewPolicy(&stubApplicationRepo{apps: map[string]application.Application{
		"app-jira": {
			ID:          "app-jira",
			Name:        "Jira",
			AdminEmails: []string{"Budi@Company.Test"},
		},
		"app-figma": {
			ID:          "app-figma",
			Name:        "Figma",
			AdminEmails: []string{"citra@company.test"},
		},
	}})
}

func TestPolicy_CanCreateRequest(t *testing.T) {
	p := newTestPolicy()

	employee := user.User{ID: "emp-1", Role: user.RoleEmployee}
	appAdmin := user.User{ID: "adm-2", Email: "budi@company.test", Role: user.RoleAppAdmin}
	superAdmin := user.User{ID: "adm-1", Role: user.RoleSuperAdmin}

	assert.NoError(t, p.CanCreateRequest(employee, "emp-1"))
	assert.ErrorIs(t, p.CanCreateRequest(employee, "emp-2"), access.ErrNotAllowed)
	// Both admin levels may raise requests on an employee's behalf
	assert.NoError(t, p.CanCreateRequest(appAdmin, "emp-2"))
	assert.NoError(t, p.CanCreateRequest(superAdmin, "emp-2"))
}

func TestPolicy_CanResolve_SuperAdmin(t *testing.T) {
	p := newTestPolicy()
	superAdmin := user.User{ID: "adm-1", Role: user.RoleSuperAdmin}

	assert.NoError(t, p.CanResolve(context.Background(), superAdmin, "app-jira"))
	// Super admin may resolve even when the application was deleted
	assert.NoError(t, p.CanResolve(context.Background(), superAdmin, "app-gone"))
}

func TestPolicy_CanResolve_AppAdmin(t *testing.T) {
	p := newTestPolicy()
	ctx := context.Background()
	budi := user.User{ID: "adm-2", Email: "budi@company.test", Role: user.RoleAppAdmin}

	// Email match is case-insensitive against the stored admin list
	assert.NoError(t, p.CanResolve(ctx, budi, "app-jira"))
	assert.ErrorIs(t, p.CanResolve(ctx, budi, "app-figma"), access.ErrNotAllowed)
	// A dangling application id denies app admins
	assert.ErrorIs(t, p.CanResolve(ctx, budi, "app-gone"), access.ErrNotAllowed)
}

func TestPolicy_CanResolve_Employee(t *testing.T) {
	p := newTestPolicy()
	employee := user.User{ID: "emp-1", Email: "budi@company.test", Role: user.RoleEmployee}

	assert.ErrorIs(t, p.CanResolve(context.Background(), employee, "app-jira"), access.ErrNotAllowed)
}

func TestPolicy_ScopeRequestFilter(t *testing.T) {
	p := newTestPolicy()

	employee := user.User{ID: "emp-1", Role: user.RoleEmployee}
	scoped := p.ScopeRequestFilter(employee, access.RequestFilter{})
	assert.NotNil(t, scoped.EmployeeID)
	assert.Equal(t, "emp-1", *scoped.EmployeeID)

	// An employee cannot widen the filter to someone else
	other := "emp-2"
	scoped = p.ScopeRequestFilter(employee, access.RequestFilter{EmployeeID: &other})
	assert.Equal(t, "emp-1", *scoped.EmployeeID)

	admin := user.User{ID: "adm-1", Role: user.RoleAppAdmin}
	scoped = p.ScopeRequestFilter(admin, access.RequestFilter{})
	assert.Nil(t, scoped.EmployeeID)
}

func TestPolicy_CanViewRequest(t *testing.T) {
	p := newTestPolicy()
	req := access.Request{ID: "req-1", EmployeeID: "emp-1"}

	owner := user.User{ID: "emp-1", Role: user.RoleEmployee}
	stranger := user.User{ID: "emp-2", Role: user.RoleEmployee}
	admin := user.User{ID: "adm-1", Role: user.RoleAppAdmin}

	assert.NoError(t, p.CanViewRequest(owner, req))
	assert.ErrorIs(t, p.CanViewRequest(stranger, req), access.ErrNotAllowed)
	assert.NoError(t, p.CanViewRequest(admin, req))
}
