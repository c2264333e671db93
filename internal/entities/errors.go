// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrPolicyBlocked signals the structured protocol was refused for
	// organization/SSO policy reasons.
	ErrPolicyBlocked = errors.New("policy blocked")
	// ErrNotFound signals a missing resource on the remote platform.
	ErrNotFound = errors.New("not found")
	// ErrForbidden signals the remote platform denied access.
	ErrForbidden = errors.New("forbidden")
	// ErrCacheMiss signals an absent or expired cache entry.
	ErrCacheMiss = errors.New("cache miss")
)
