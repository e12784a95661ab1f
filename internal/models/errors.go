package models

import "errors"

// Service-level error kinds. Transport-level kinds (network, status, decode)
// live in internal/client/api.
var (
	// ErrValidation indicates bad caller input (e.g. empty breed name)
	ErrValidation = errors.New("validation error")

	// ErrAPILogic indicates a well-formed response with a non-"success" status or wrong shape
	ErrAPILogic = errors.New("api returned unsuccessful response")

	// ErrAuthRequired indicates that an operation needs a stored token which is absent
	ErrAuthRequired = errors.New("authentication required")
)
