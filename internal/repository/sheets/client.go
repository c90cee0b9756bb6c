// Package sheets implements the collection repositories over the Apps
// Script web-app protocol: every operation is a GET or POST against a
// single deployment URL with the logical path passed as a query
// parameter, answering with the standard JSON envelope.
package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Client talks to one Apps Script deployment.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Script responses arrive via an HTML interstitial redirect;
			// it is followed manually in do so the second hop keeps the
			// same headers.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return nil
			},
		},
	}
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     *envelopeError  `json:"error,omitempty"`
	Timestamp string          `json:"timestamp"`
	RequestID string          `json:"request_id"`
}

// APIError is a script-reported failure (success:false envelope).
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sheets backend: %s: %s", e.Code, e.Message)
}

// IsNotFound reports whether the script rejected the operation because the
// target row does not exist. The script signals this only through the
// error message, so the match is textual.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && strings.Contains(strings.ToLower(apiErr.Message), "not found")
}

var redirectHrefRegex = regexp.MustCompile(`HREF="([^"]+)">here`)

func (c *Client) Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, params)
}

func (c *Client) Post(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, params)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("path", path)
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	body, err := c.fetch(ctx, method, c.baseURL+"?"+query.Encode())
	if err != nil {
		return nil, err
	}

	// The web app answers POSTs with a "Moved Temporarily" HTML page
	// pointing at the real response URL.
	if strings.Contains(body, "Moved Temporarily") && strings.Contains(body, "here</A>") {
		match := redirectHrefRegex.FindStringSubmatch(body)
		if match == nil {
			return nil, fmt.Errorf("sheets backend: redirect page without target URL")
		}
		body, err = c.fetch(ctx, method, match[1])
		if err != nil {
			return nil, err
		}
	}

	var env envelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		return nil, fmt.Errorf("sheets backend: invalid response format: %w", err)
	}

	if !env.Success {
		apiErr := &APIError{Code: "ERROR", Message: env.Message}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return nil, apiErr
	}

	return env.Data, nil
}

func (c *Client) fetch(ctx context.Context, method, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("sheets backend: build request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sheets backend: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("sheets backend: read response: %w", err)
	}
	return string(body), nil
}
