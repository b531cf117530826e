// Package credential persists the admin bearer token across CLI invocations.
// Exactly one value survives a process restart: the token, stored in a fixed
// file under the user config dir. Everything else is in-memory state.
package credential

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenFileName is the well-known file holding the bearer token.
const TokenFileName = "token"

// configDirName is the folio directory under the user config dir.
const configDirName = "folio"

// DefaultPath returns the default token file location
// (e.g. ~/.config/folio/token).
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("no user config dir: %w", err)
	}
	return filepath.Join(configDir, configDirName, TokenFileName), nil
}

// Store holds the bearer credential: an in-memory copy read by request
// gateways, backed by the token file. The token is read once at construction;
// Set and Clear keep file and memory in sync.
type Store struct {
	mu    sync.Mutex
	path  string
	token string
}

// Open loads the credential store backed by the given file. A missing file
// simply means no credential is present.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read token file: %w", err)
	}
	s.token = strings.TrimSpace(string(data))
	return s, nil
}

// OpenDefault opens the store at the default path.
func OpenDefault() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Token returns the current bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Set stores a new token in memory and on disk. The file is written with
// owner-only permissions.
func (s *Store) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	s.token = token
	return nil
}

// Clear removes the token from memory and disk. Clearing an already-empty
// store is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
