package sdk

import "errors"

// Sentinel errors for common SDK error conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrInvalidConfig indicates the provided configuration is invalid or
	// incomplete.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoEnvironment indicates a rover was configured without an
	// environment to act against.
	ErrNoEnvironment = errors.New("no environment configured")
)
