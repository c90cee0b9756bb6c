package sheets

import (
	"context"
	"net/url"
	"testing"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationRepository_List_AdminEmailEncodings(t *testing.T) {
	server := newScriptServer(t, func(path string, params url.Values) (interface{}, error) {
		require.Equal(t, "applications", path)
		return []map[string]interface{}{
			{
				"id":           "app-1",
				"name":         "Jira",
				"category":     "engineering",
				"admin_emails": []string{"budi@company.test", "citra@company.test"},
			},
			{
				// Older script builds answered a comma-joined cell value
				"id":           "app-2",
				"name":         "Figma",
				"category":     "design",
				"admin_emails": "dewi@company.test, eka@company.test",
			},
			{
				"id":       "app-3",
				"name":     "Slack",
				"category": "communication",
			},
		}, nil
	})
	defer server.Close()

	repo := NewApplicationRepository(NewClient(server.URL))
	apps, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 3)

	assert.Equal(t, []string{"budi@company.test", "citra@company.test"}, apps[0].AdminEmails)
	assert.Equal(t, []string{"dewi@company.test", "eka@company.test"}, apps[1].AdminEmails)
	assert.Empty(t, apps[2].AdminEmails)
}

func TestApplicationRepository_Create(t *testing.T) {
	var gotParams url.Values
	server := newScriptServer(t, func(path string, params url.Values) (interface{}, error) {
		require.Equal(t, "applications", path)
		gotParams = params
		return map[string]interface{}{
			"id":           "app-9",
			"name":         params.Get("name"),
			"category":     params.Get("category"),
			"admin_emails": params.Get("admin_emails"),
			"created_by":   params.Get("created_by"),
		}, nil
	})
	defer server.Close()

	repo := NewApplicationRepository(NewClient(server.URL))
	created, err := repo.Create(context.Background(), application.Application{
		Name:        "GitLab",
		Category:    "engineering",
		Description: "Source hosting",
		AdminEmails: []string{"budi@company.test", "citra@company.test"},
		CreatedBy:   "root@company.test",
	})
	require.NoError(t, err)

	assert.Equal(t, "app-9", created.ID)
	assert.Equal(t, "budi@company.test,citra@company.test", gotParams.Get("admin_emails"))
	assert.Equal(t, "Source hosting", gotParams.Get("description"))
	assert.Equal(t, []string{"budi@company.test", "citra@company.test"}, created.AdminEmails)
}

func TestApplicationRepository_Update(t *testing.T) {
	var gotParams url.Values
	server := newScriptServer(t, func(path string, params url.Values) (interface{}, error) {
		require.Equal(t, "applications/update", path)
		gotParams = params
		return map[string]interface{}{
			"id":       params.Get("id"),
			"name":     params.Get("name"),
			"category": "engineering",
		}, nil
	})
	defer server.Close()

	repo := NewApplicationRepository(NewClient(server.URL))
	name := "Jira Cloud"
	updated, err := repo.Update(context.Background(), application.UpdateApplicationRequest{ID: "app-1", Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Jira Cloud", updated.Name)
	// Unset fields stay out of the request
	assert.False(t, gotParams.Has("category"))
	assert.False(t, gotParams.Has("admin_emails"))
}

func TestApplicationRepository_Delete(t *testing.T) {
	server := newScriptServer(t, func(path string, params url.Values) (interface{}, error) {
		require.Equal(t, "applications/delete", path)
		require.Equal(t, "app-1", params.Get("id"))
		return map[string]interface{}{"deleted": true}, nil
	})
	defer server.Close()

	repo := NewApplicationRepository(NewClient(server.URL))
	err := repo.Delete(context.Background(), "app-1")
	require.NoError(t, err)
}

func TestApplicationRepository_GetByID_NotFound(t *testing.T) {
	server := newScriptServer(t, func(path string, params url.Values) (interface{}, error) {
		return []map[string]interface{}{}, nil
	})
	defer server.Close()

	repo := NewApplicationRepository(NewClient(server.URL))
	_, err := repo.GetByID(context.Background(), "app-404")
	assert.ErrorIs(t, err, application.ErrApplicationNotFound)
}
