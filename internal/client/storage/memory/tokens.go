// Package memory provides a process-local TokenStorage for tests and for
// running the client without a database file.
package memory

import (
	"context"
	"sync"

	"github.com/iudanet/dogbrowser/internal/client/storage"
)

var _ storage.TokenStorage = (*Storage)(nil)

// Storage keeps tokens in a map guarded by a mutex
type Storage struct {
	tokens map[string]string
	mu     sync.RWMutex
}

// New creates an empty in-memory token storage
func New() *Storage {
	return &Storage{tokens: make(map[string]string)}
}

// GetToken returns the token stored under key
func (s *Storage) GetToken(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.tokens[key]
	if !ok {
		return "", storage.ErrTokenNotFound
	}
	return value, nil
}

// SetToken stores value under key
func (s *Storage) SetToken(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[key] = value
	return nil
}

// DeleteToken removes key
func (s *Storage) DeleteToken(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, key)
	return nil
}
