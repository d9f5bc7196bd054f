package chatkit_errors

import "errors"

// Common errors
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrUnresolvedMedia = errors.New("media not resolvable")
)
