package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates that username/password pair did not match exactly
	ErrInvalidCredentials = errors.New("invalid credentials")
)
