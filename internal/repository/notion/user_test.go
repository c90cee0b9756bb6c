package notion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userPages() []Page {
	return []Page{
		{
			ID:          "page-1",
			CreatedTime: time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC),
			Properties: map[string]Property{
				"Name":      titleProp("Ana Pratiwi"),
				"Email":     emailProp("Ana@Company.Test"),
				"Role":      selectProp("employee"),
				"Status":    selectProp("active"),
				"Join Date": dateProp(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)),
			},
		},
		{
			// Page without role and status selects
			ID: "page-2",
			Properties: map[string]Property{
				"Name":  titleProp("Budi Santoso"),
				"Email": emailProp("budi@company.test"),
			},
		},
		{
			ID:       "page-3",
			Archived: true,
			Properties: map[string]Property{
				"Name": titleProp("Removed Person"),
			},
		},
	}
}

func TestNotionUserRepository_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(queryResponse{Results: userPages()})
	}))
	defer server.Close()

	repo := NewUserRepository(NewClientWithBaseURL("key", server.URL), "db-users")
	users, err := repo.List(context.Background())
	require.NoError(t, err)

	// Archived pages are filtered out
	require.Len(t, users, 2)
	assert.Equal(t, "page-1", users[0].ID)
	assert.Equal(t, user.RoleEmployee, users[1].Role)
	assert.Equal(t, user.StatusActive, users[1].Status)
}

func TestNotionUserRepository_GetByEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(queryResponse{Results: userPages()})
	}))
	defer server.Close()

	repo := NewUserRepository(NewClientWithBaseURL("key", server.URL), "db-users")

	found, err := repo.GetByEmail(context.Background(), "ana@company.test")
	require.NoError(t, err)
	assert.Equal(t, "page-1", found.ID)

	_, err = repo.GetByEmail(context.Background(), "nobody@company.test")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestNotionUserRepository_GetByID_Archived(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pages/page-3":
			json.NewEncoder(w).Encode(userPages()[2])
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	repo := NewUserRepository(NewClientWithBaseURL("key", server.URL), "db-users")

	// Archived pages read as deleted
	_, err := repo.GetByID(context.Background(), "page-3")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	_, err = repo.GetByID(context.Background(), "page-404")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestNotionUserRepository_Create(t *testing.T) {
	var gotProps Properties
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pages", r.URL.Path)
		var payload struct {
			Parent     map[string]string `json:"parent"`
			Properties Properties        `json:"properties"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "dbusers", payload.Parent["database_id"])
		gotProps = payload.Properties
		json.NewEncoder(w).Encode(Page{ID: "page-9", Properties: payload.Properties})
	}))
	defer server.Close()

	repo := NewUserRepository(NewClientWithBaseURL("key", server.URL), "db-users")
	invitedBy := "root@company.test"
	created, err := repo.Create(context.Background(), user.User{
		Name:      "Citra Dewi",
		Email:     "citra@company.test",
		Role:      user.RoleAppAdmin,
		Status:    user.StatusActive,
		JoinDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		InvitedBy: &invitedBy,
	})
	require.NoError(t, err)

	assert.Equal(t, "page-9", created.ID)
	assert.Equal(t, user.RoleAppAdmin, created.Role)

	page := Page{Properties: gotProps}
	assert.Equal(t, "Citra Dewi", page.title("Name"))
	assert.Equal(t, "citra@company.test", page.email("Email"))
	assert.Equal(t, "root@company.test", page.text("Invited By"))
}

func TestNotionUserRepository_Update_OnlySetFields(t *testing.T) {
	var gotProps Properties
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/pages/page-1", r.URL.Path)
		var payload struct {
			Properties Properties `json:"properties"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		gotProps = payload.Properties
		json.NewEncoder(w).Encode(userPages()[0])
	}))
	defer server.Close()

	repo := NewUserRepository(NewClientWithBaseURL("key", server.URL), "db-users")
	status := string(user.StatusOffboard)
	offboardDate := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	_, err := repo.Update(context.Background(), user.UpdateUserRequest{
		ID:           "page-1",
		Status:       &status,
		OffboardDate: &offboardDate,
	})
	require.NoError(t, err)

	assert.Len(t, gotProps, 2)
	assert.Contains(t, gotProps, "Status")
	assert.Contains(t, gotProps, "Offboard Date")
}
