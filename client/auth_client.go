package client

import (
	"context"
	"encoding/json"
	"net/http"

	"go-bank-cli/common"
	"go-bank-cli/logger"
	"go-bank-cli/model"
)

// IAuthClient is the contract the login and register views depend on.
type IAuthClient interface {
	LoginUser(ctx context.Context, email, password string) (*model.TokenResponse, error)
	RegisterUser(ctx context.Context, payload interface{}) (json.RawMessage, error)
}

// AuthClient issues the unauthenticated /auth requests.
type AuthClient struct {
	apiClient
}

func NewAuthClient(baseURL string, httpClient *http.Client) *AuthClient {
	return &AuthClient{apiClient: newAPIClient(baseURL, httpClient)}
}

// LoginUser exchanges credentials for a session payload. Storing the token
// is the caller's job.
func (c *AuthClient) LoginUser(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	req := model.LoginRequest{Email: email, Password: password}
	if err := common.ValidatePayload(req); err != nil {
		return nil, err
	}

	logger.Log.WithField("email", email).Info("Sending login request")

	var token model.TokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, req, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// RegisterUser passes an opaque registration payload through and returns the
// server response verbatim.
func (c *AuthClient) RegisterUser(ctx context.Context, payload interface{}) (json.RawMessage, error) {
	logger.Log.Info("Sending registration request")

	var resp json.RawMessage
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", nil, payload, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
