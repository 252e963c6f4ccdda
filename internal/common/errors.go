// Package common defines shared constants and sentinel errors used across
// the client, its storage layer and the dev backend. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Session-level errors.
	ErrorNotAuthenticated = errors.New("not logged in")
	ErrorAlreadyApplied   = errors.New("already applied to this job")

	// Credential decoding errors.
	ErrInvalidToken = errors.New("invalid token")
)
