// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrInvalidCredentials is returned when the submitted password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotConfigured is returned when no operator password hash has been configured.
	ErrNotConfigured = errors.New("operator authentication is not configured")
)
