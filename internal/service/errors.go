package service

import "errors"

// Sentinel errors returned by service methods. Conflict conditions reuse the
// sentinels of the store package so that a conflict caught by the advisory
// pre-check and one caught by the database constraint look identical to
// callers.
var (
	// ErrInvalidDataProvided is returned when a required field (username,
	// email, or password on create; credentials on authenticate) is missing.
	// A caller-input error, never retried.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUserNotFound is returned when an operation targets an id that does
	// not exist in the directory.
	ErrUserNotFound = errors.New("user not found")

	// ErrWrongPassword is returned by Authenticate when the supplied
	// plaintext does not match the stored digest.
	ErrWrongPassword = errors.New("wrong password")
)
