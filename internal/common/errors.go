// Package common defines shared sentinel errors used across the service and
// HTTP layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("already exists")

	// Request-level errors (malformed or out-of-range input).
	ErrorValidation = errors.New("validation error")

	// Anything unexpected from the storage layer.
	ErrorInternal = errors.New("internal error")
)
