package storage

import "errors"

// Common client storage errors
var (
	// ErrTokenNotFound indicates that no token is stored under the requested key
	ErrTokenNotFound = errors.New("token not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
