// Package client implements the HTTP contract of the banking API: the auth
// endpoints and the authenticated accounts resource. Responses are decoded
// into model structs and handed back unmodified; all user-facing messaging
// is the caller's responsibility.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go-bank-cli/common"
)

// TokenSource supplies the bearer token for authenticated requests. It is
// consulted on every call so a login or logout between requests takes
// effect immediately.
type TokenSource interface {
	Token() string
}

type apiClient struct {
	baseURL    string
	httpClient *http.Client
}

func newAPIClient(baseURL string, httpClient *http.Client) apiClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return apiClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// doJSON sends one request and decodes the response into out (when out is
// non-nil). A non-2xx status becomes a *common.APIError carrying whatever
// detail string the server put in the error body.
func (c *apiClient) doJSON(ctx context.Context, method, path string, header http.Header, body, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("could not build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &common.APIError{StatusCode: resp.StatusCode}
		// Best effort: the error body is expected to be {"detail": "..."},
		// but anything undecodable just leaves Detail empty.
		_ = json.Unmarshal(respBody, apiErr)
		return apiErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("could not decode response body: %w", err)
		}
	}
	return nil
}
