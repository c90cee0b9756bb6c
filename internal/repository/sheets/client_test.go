package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newScriptServer fakes an Apps Script deployment: one URL, the logical
// path in the query string, the standard envelope in the body.
func newScriptServer(t *testing.T, handle func(path string, params url.Values) (interface{}, error)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		data, err := handle(params.Get("path"), params)

		w.Header().Set("Content-Type", "application/json")
		if err != nil {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"error":   map[string]string{"code": "ERROR", "message": err.Error()},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}))
}

func TestClient_Get(t *testing.T) {
	var gotPath string
	var gotStatus string
	server := newScriptServer(t, func(path string, params url.Values) (interface{}, error) {
		gotPath = path
		gotStatus = params.Get("status")
		return []map[string]string{{"id": "row-1"}}, nil
	})
	defer server.Close()

	client := NewClient(server.URL)
	params := url.Values{}
	params.Set("status", "pending")
	data, err := client.Get(context.Background(), "access-requests", params)
	require.NoError(t, err)

	assert.Equal(t, "access-requests", gotPath)
	assert.Equal(t, "pending", gotStatus)

	var rows []map[string]string
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "row-1", rows[0]["id"])
}

func TestClient_ErrorEnvelope(t *testing.T) {
	server := newScriptServer(t, func(path string, params url.Values) (interface{}, error) {
		return nil, fmt.Errorf("User not found")
	})
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Post(context.Background(), "users/update", url.Values{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "User not found", apiErr.Message)
	assert.True(t, IsNotFound(err))
}

func TestClient_FollowsRedirectPage(t *testing.T) {
	// The web app answers POSTs with an HTML interstitial pointing at the
	// real response URL; the client must follow it.
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]string{"id": "created-1"},
		})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `<HTML><HEAD><TITLE>Moved Temporarily</TITLE></HEAD><BODY>The document has moved <A HREF="%s/final">here</A>.</BODY></HTML>`, server.URL)
	})

	client := NewClient(server.URL)
	data, err := client.Post(context.Background(), "users", url.Values{})
	require.NoError(t, err)

	var row map[string]string
	require.NoError(t, json.Unmarshal(data, &row))
	assert.Equal(t, "created-1", row["id"])
}

func TestClient_InvalidBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>maintenance</html>")
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Get(context.Background(), "users", nil)
	assert.Error(t, err)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&APIError{Code: "ERROR", Message: "Application not found"}))
	assert.False(t, IsNotFound(&APIError{Code: "ERROR", Message: "quota exceeded"}))
	assert.False(t, IsNotFound(fmt.Errorf("plain error")))
}
