// Package session persists the bearer token between invocations. It is the
// CLI's stand-in for browser local storage: one token under one fixed path,
// written on login, removed on logout, read fresh on every request.
package session

import (
	"os"
	"path/filepath"
	"strings"

	"go-bank-cli/logger"
)

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save writes the token, creating the parent directory on first use.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		logger.Log.WithError(err).Error("Failed to persist session token")
		return err
	}
	return nil
}

// Token returns the stored token, or the empty string when no session
// exists. It rereads the file on every call; nothing is cached.
func (s *Store) Token() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Clear removes the stored token. Clearing an absent session is not an
// error: logout succeeds even when no token was present.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
