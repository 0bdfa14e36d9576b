package session

import "errors"

var (
	// ErrAuthenticationFailed is returned by Login when the backend rejects
	// the credentials or answers with an unusable payload.
	ErrAuthenticationFailed = errors.New("authentication failed")

	ErrMissingCredentials = errors.New("username and password are required")
	ErrNoStore            = errors.New("session store not found in context")

	// errSessionChanged marks a refresh result that arrived after the session
	// it belonged to was replaced or cleared.
	errSessionChanged = errors.New("session changed during refresh")
)
