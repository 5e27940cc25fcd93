// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Currently it holds the credential hashing primitives built on bcrypt.
package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor applied to every new digest.
const PasswordHashCost = 10

// ErrHashingFailure is returned when the bcrypt primitive itself fails:
// the plaintext exceeds bcrypt's length limit, the digest passed to
// [VerifyPassword] is malformed, or the underlying implementation reports a
// resource error. A plain mismatch is NOT a hashing failure.
var ErrHashingFailure = errors.New("password hashing failure")

// HashPassword derives a salted one-way bcrypt digest from plaintext using
// [PasswordHashCost]. The returned digest embeds its own salt and cost and
// can be handed directly to [VerifyPassword].
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingFailure, err)
	}

	return string(digest), nil
}

// VerifyPassword compares plaintext against a bcrypt digest.
//
// A mismatch is an ordinary outcome and yields (false, nil); an error is
// returned only when the digest is malformed or the primitive fails, wrapped
// as [ErrHashingFailure]. The comparison is performed by bcrypt itself and is
// safe against timing side channels.
func VerifyPassword(plaintext, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrHashingFailure, err)
	}
}
