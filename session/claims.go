package session

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoSession = errors.New("no active session")

// Claims decodes the stored token's registered claims without verifying the
// signature. The client has no signing key; verification is the server's
// job. This exists only so views can show who is logged in and until when.
func (s *Store) Claims() (*jwt.RegisteredClaims, error) {
	token := s.Token()
	if token == "" {
		return nil, ErrNoSession
	}

	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
