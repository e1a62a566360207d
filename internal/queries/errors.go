package queries

import "errors"

// Query-related errors
var (
	// ErrInvalidUserID indicates the viewer id is missing or non-positive
	ErrInvalidUserID = errors.New("invalid user ID")
)
