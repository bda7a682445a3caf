package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for common domain errors.
*/

// ErrNotFound converts a repository not-found error into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// NotFound builds a 404 with a caller-supplied domain and message, used where
// the workflows must report the exact linkage that is missing.
func NotFound(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrAlreadyExists converts a duplicate error into a 409 AppError.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrEmailAlreadyExists - the email is already registered.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"account",
	"User with the same email already exists",
	http.StatusConflict,
)

// ErrInvalidCredentials - wrong email or password.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"account",
	"User not found or password is incorrect",
	http.StatusUnauthorized,
)

// ErrAlreadyApplied - the user already applied to this job.
var ErrAlreadyApplied = New(
	CodeConflict,
	"application",
	"Already applied to job",
	http.StatusConflict,
)
