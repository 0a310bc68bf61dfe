package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that login has not been performed
	ErrSessionNotFound = errors.New("session not found")
)
