package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrServiceUnreachable indicates the recipe service cannot be reached
	ErrServiceUnreachable = errors.New("recipe service is unreachable")

	// ErrMissingFields indicates a required signup field was left empty
	ErrMissingFields = errors.New("username and password are required")

	// ErrUserExists indicates the username is already taken
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials indicates an unknown user or wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAlreadyFavorite indicates the recipe is already in the favorites list
	ErrAlreadyFavorite = errors.New("recipe is already a favorite")
)
