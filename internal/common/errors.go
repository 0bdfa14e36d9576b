package common

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidToken marks an access token that cannot be decoded.
	ErrInvalidToken = errors.New("invalid token")
)
