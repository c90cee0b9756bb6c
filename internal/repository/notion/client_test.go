package notion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_QueryDatabase(t *testing.T) {
	var gotPath, gotAuth, gotVersion string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Notion-Version")
		require.Equal(t, http.MethodPost, r.Method)
		json.NewEncoder(w).Encode(queryResponse{Results: []Page{
			{ID: "page-1", Properties: map[string]Property{"Name": titleProp("Jira")}},
		}})
	}))
	defer server.Close()

	client := NewClientWithBaseURL("secret-key", server.URL)
	pages, err := client.QueryDatabase(context.Background(), "aaaa-bbbb-cccc")
	require.NoError(t, err)

	// Database ids are sent without hyphens
	assert.Equal(t, "/databases/aaaabbbbcccc/query", gotPath)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "2022-06-28", gotVersion)
	require.Len(t, pages, 1)
	assert.Equal(t, "Jira", pages[0].title("Name"))
}

func TestClient_GetPage_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClientWithBaseURL("secret-key", server.URL)
	_, err := client.GetPage(context.Background(), "page-404")
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestClient_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"object":"error","message":"body failed validation"}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("secret-key", server.URL)
	_, err := client.CreatePage(context.Background(), "db-1", Properties{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "body failed validation")
}

func TestClient_ArchivePage(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/pages/page-1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(Page{ID: "page-1", Archived: true})
	}))
	defer server.Close()

	client := NewClientWithBaseURL("secret-key", server.URL)
	require.NoError(t, client.ArchivePage(context.Background(), "page-1"))
	assert.Equal(t, true, gotBody["archived"])
}
