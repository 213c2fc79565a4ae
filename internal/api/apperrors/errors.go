// Package apperrors defines the sentinel errors shared between the
// service, repository and controller layers. Controllers map them to HTTP
// status codes; anything outside this set is treated as an infrastructure
// failure and surfaced as a generic 500.
package apperrors

import "errors"

var (
	ErrValidation = errors.New("validation error")

	ErrNotFound = errors.New("not found")

	ErrDuplicateUser = errors.New("username already taken")

	// ErrInvalidCredentials covers both unknown-username and wrong-password
	// logins so the response does not reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrUnauthenticated = errors.New("authentication required")
)
