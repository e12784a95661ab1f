package storage

import (
	"context"
)

//go:generate moq -out tokens_mock.go . TokenStorage

// Fixed keys of the durable token store
const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
)

// TokenStorage defines interface for storing authentication tokens on client
// Это нижний слой хранения: значения сохраняются как есть, без шифрования
// и без проверки срока действия. Пишет в хранилище только auth.Service.
type TokenStorage interface {
	// GetToken returns the stored value for key
	// Returns ErrTokenNotFound if nothing is stored under key
	GetToken(ctx context.Context, key string) (string, error)

	// SetToken stores value under key, replacing any previous value
	SetToken(ctx context.Context, key, value string) error

	// DeleteToken removes key; deleting a missing key is not an error
	DeleteToken(ctx context.Context, key string) error
}
