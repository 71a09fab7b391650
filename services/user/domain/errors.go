package domain

import "errors"

// Sentinel errors for the user domain. Use errors.Is() to check these.
var (
	// ErrUserNotFound indicates the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailExists indicates a user with the same email already exists.
	ErrEmailExists = errors.New("a user with this email already exists")

	// ErrInvalidCredentials indicates a failed login attempt. The message is
	// deliberately identical for unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoFields indicates an update request that names no updatable fields.
	ErrNoFields = errors.New("no fields to update")

	// ErrInvalidRole indicates a role outside the assignable set.
	ErrInvalidRole = errors.New("invalid role")
)
