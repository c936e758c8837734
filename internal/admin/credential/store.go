// Package credential persists the operator's admin token on the local
// machine for CLI use. The token is stored as-is in a single file readable
// only by the owner; the server never sees this file and keeps only hashes.
package credential

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/trivalleytech/site-api/internal/errors"
)

// ErrNoCredential indicates that no token is currently saved.
var ErrNoCredential = errors.Wrap(errors.ErrNotFound, "no saved admin token")

// Store reads and writes the saved admin token file.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path. An empty path
// falls back to admin-token under the user config directory.
func NewStore(path string) (*Store, error) {
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve user config dir")
		}
		path = filepath.Join(configDir, "site-api", "admin-token")
	}
	return &Store{path: path}, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the saved token, or ErrNoCredential when none exists.
func (s *Store) Get() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoCredential
		}
		return "", errors.Wrap(err, "failed to read token file")
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoCredential
	}
	return token, nil
}

// Set saves the token, creating the parent directory as needed. The file is
// written owner-only since it holds a plaintext credential.
func (s *Store) Set(token string) error {
	if token == "" {
		return errors.Wrap(errors.ErrInvalidInput, "token must not be empty")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create token dir")
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return errors.Wrap(err, "failed to write token file")
	}
	return nil
}

// Remove deletes the saved token. Removing an absent token is a no-op.
func (s *Store) Remove() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove token file")
	}
	return nil
}
