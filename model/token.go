// file: model/token.go

package model

// TokenResponse is the session payload POST /auth/login returns.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
