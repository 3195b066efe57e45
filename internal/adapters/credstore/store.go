// Package credstore persists the login (token + user) as a JSON file, the
// client-side analog of the app's secure storage. It is the only component
// allowed to mutate the identity; everything else reads snapshots.
package credstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sainath-666/pgstay/internal/domain"
)

type Store struct {
	path string
}

func New(path string) *Store { return &Store{path: path} }

// Identity returns the cached login, or nil when none is saved.
func (s *Store) Identity(ctx context.Context) (*domain.Identity, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	var id domain.Identity
	if err := json.Unmarshal(b, &id); err != nil {
		return nil, fmt.Errorf("decode credentials: %w", err)
	}
	if id.Token == "" {
		return nil, nil
	}
	return &id, nil
}

func (s *Store) Save(ctx context.Context, id domain.Identity) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	b, err := json.MarshalIndent(id, "", "  ")
	if err != nil {
		return err
	}
	// token is a secret: owner-only perms
	return os.WriteFile(s.path, b, 0o600)
}

func (s *Store) Clear(ctx context.Context) error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
