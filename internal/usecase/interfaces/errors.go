package interfaces

import "errors"

// Errors returned by repository implementations for conditional writes.
var (
	ErrAlreadyExists          = errors.New("item already exists")
	ErrConcurrentModification = errors.New("item modified concurrently")
)
