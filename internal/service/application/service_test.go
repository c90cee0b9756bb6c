package application

import (
	"context"
	"fmt"
	"testing"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/application"
	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/cache"
	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memApplicationRepo struct {
	apps map[string]application.Application
	seq  int
}

func newMemApplicationRepo() *memApplicationRepo {
	return &memApplicationRepo{apps: make(map[string]application.Application)}
}

func (r *memApplicationRepo) List(ctx context.Context) ([]application.Application, error) {
	out := make([]application.Application, 0, len(r.apps))
	for _, app := range r.apps {
		out = append(out, app)
	}
	return out, nil
}

func (r *memApplicationRepo) GetByID(ctx context.Context, id string) (application.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return application.Application{}, application.ErrApplicationNotFound
	}
	return app, nil
}

func (r *memApplicationRepo) Create(ctx context.Context, app application.Application) (application.Application, error) {
	r.seq++
	app.ID = fmt.Sprintf("app-%d", r.seq)
	r.apps[app.ID] = app
	return app, nil
}

func (r *memApplicationRepo) Update(ctx context.Context, update application.UpdateApplicationRequest) (application.Application, error) {
	app, ok := r.apps[update.ID]
	if !ok {
		return application.Application{}, application.ErrApplicationNotFound
	}
	if update.Name != nil {
		app.Name = *update.Name
	}
	if update.Category != nil {
		app.Category = *update.Category
	}
	if update.Description != nil {
		app.Description = *update.Description
	}
	if update.AdminEmails != nil {
		app.AdminEmails = *update.AdminEmails
	}
	r.apps[update.ID] = app
	return app, nil
}

func (r *memApplicationRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.apps[id]; !ok {
		return application.ErrApplicationNotFound
	}
	delete(r.apps, id)
	return nil
}

func newTestService() (application.ApplicationService, *memApplicationRepo) {
	repo := newMemApplicationRepo()
	return NewApplicationService(repo, cache.NewMemoryCache()), repo
}

func TestCreate(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.Create(context.Background(), application.CreateApplicationRequest{
		Name:        "Jira",
		Category:    "engineering",
		AdminEmails: []string{"budi@company.test"},
	}, "root@company.test")
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "root@company.test", repo.apps[created.ID].CreatedBy)
	assert.Equal(t, []string{"budi@company.test"}, created.AdminEmails)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), application.CreateApplicationRequest{
		Name:        "Jira",
		Category:    "engineering",
		AdminEmails: []string{"not-an-email"},
	}, "root@company.test")

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	_, err = svc.Create(context.Background(), application.CreateApplicationRequest{
		Category: "engineering",
	}, "root@company.test")
	require.ErrorAs(t, err, &verrs)
}

func TestUpdate(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), application.CreateApplicationRequest{
		Name:     "Jira",
		Category: "engineering",
	}, "root@company.test")
	require.NoError(t, err)

	name := "Jira Cloud"
	updated, err := svc.Update(context.Background(), application.UpdateApplicationRequest{
		ID:   created.ID,
		Name: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jira Cloud", updated.Name)

	_, err = svc.Update(context.Background(), application.UpdateApplicationRequest{ID: "app-404", Name: &name})
	assert.ErrorIs(t, err, application.ErrApplicationNotFound)
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.Create(context.Background(), application.CreateApplicationRequest{
		Name:     "Jira",
		Category: "engineering",
	}, "root@company.test")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.apps)

	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, application.ErrApplicationNotFound)
}

func TestList_CachesResult(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Create(context.Background(), application.CreateApplicationRequest{
		Name:     "Jira",
		Category: "engineering",
	}, "root@company.test")
	require.NoError(t, err)

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	repo.apps["app-raw"] = application.Application{ID: "app-raw", Name: "Raw"}
	second, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 1)
}
