// Package notion implements the collection repositories over the Notion
// REST API: each collection is a database, each record a page whose
// properties carry the fields. Exact-match filters are applied
// client-side after querying, so filter behavior is identical to the
// other backends.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"
	notionVersion  = "2022-06-28"
)

// ErrPageNotFound is returned when Notion answers 404 for a page id.
var ErrPageNotFound = errors.New("notion page not found")

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point at a fake server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

type queryResponse struct {
	Results []Page `json:"results"`
}

// QueryDatabase returns every page of the database.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string) ([]Page, error) {
	body, err := c.do(ctx, http.MethodPost, "/databases/"+formatDatabaseID(databaseID)+"/query", map[string]any{})
	if err != nil {
		return nil, err
	}

	var resp queryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("notion backend: decode query response: %w", err)
	}
	return resp.Results, nil
}

func (c *Client) CreatePage(ctx context.Context, databaseID string, properties Properties) (Page, error) {
	body, err := c.do(ctx, http.MethodPost, "/pages", map[string]any{
		"parent":     map[string]any{"database_id": formatDatabaseID(databaseID)},
		"properties": properties,
	})
	if err != nil {
		return Page{}, err
	}
	return decodePage(body)
}

func (c *Client) UpdatePage(ctx context.Context, pageID string, properties Properties) (Page, error) {
	body, err := c.do(ctx, http.MethodPatch, "/pages/"+pageID, map[string]any{
		"properties": properties,
	})
	if err != nil {
		return Page{}, err
	}
	return decodePage(body)
}

// ArchivePage is the Notion equivalent of a delete.
func (c *Client) ArchivePage(ctx context.Context, pageID string) error {
	_, err := c.do(ctx, http.MethodPatch, "/pages/"+pageID, map[string]any{
		"archived": true,
	})
	return err
}

func (c *Client) GetPage(ctx context.Context, pageID string) (Page, error) {
	body, err := c.do(ctx, http.MethodGet, "/pages/"+pageID, nil)
	if err != nil {
		return Page{}, err
	}
	return decodePage(body)
}

func decodePage(body []byte) (Page, error) {
	var page Page
	if err := json.Unmarshal(body, &page); err != nil {
		return Page{}, fmt.Errorf("notion backend: decode page: %w", err)
	}
	return page, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("notion backend: encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("notion backend: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", notionVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("notion backend: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("notion backend: read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrPageNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("notion backend: %s %s: %s", resp.Status, path, strings.TrimSpace(string(body)))
	}

	return body, nil
}

// Notion rejects hyphenated database ids on some endpoints.
func formatDatabaseID(id string) string {
	return strings.ReplaceAll(id, "-", "")
}
