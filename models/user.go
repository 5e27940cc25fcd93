// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the public representation of a directory account. It carries every
// persisted column except the password hash and is safe to return to any
// caller.
type User struct {
	// ID is the server-assigned surrogate identifier of the user.
	// It is generated by the database and never changes.
	ID uuid.UUID `json:"id"`

	// Username is the unique login name of the user.
	Username string `json:"username"`

	// Email is the unique email address of the user.
	Email string `json:"email"`

	// FirstName is the optional given name. Nil when the column is NULL.
	FirstName *string `json:"first_name"`

	// LastName is the optional family name. Nil when the column is NULL.
	LastName *string `json:"last_name"`

	// IsActive reports whether the account is enabled.
	// New accounts take the database default.
	IsActive bool `json:"is_active"`

	// EmailVerified reports whether the email address has been confirmed.
	// New accounts take the database default.
	EmailVerified bool `json:"email_verified"`

	// CreatedAt is set once by the database when the row is inserted.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed by the database on every mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// FullUser is the complete persisted record including the password hash.
// It is returned only by the authentication lookup path and MUST never cross
// a trust boundary.
type FullUser struct {
	User

	// PasswordHash is the bcrypt digest of the user's password.
	// It is never serialized and never plaintext.
	PasswordHash string `json:"-"`
}

// UserIdentity is the minimal projection returned after a hard delete.
type UserIdentity struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// CreateUserInput carries the caller-supplied fields for account creation.
// Username, Email and Password are required; the optional name fields are
// stored as NULL when nil.
type CreateUserInput struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// UserUpdate is a partial-update payload. Only non-nil fields are written;
// nil fields leave the stored value untouched. Password, when present, is
// hashed and written to the password_hash column.
type UserUpdate struct {
	Username      *string `json:"username"`
	Email         *string `json:"email"`
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	IsActive      *bool   `json:"is_active"`
	EmailVerified *bool   `json:"email_verified"`
	Password      *string `json:"password"`
}

// Empty reports whether the update carries no fields at all, neither
// allow-listed columns nor a password change.
func (u UserUpdate) Empty() bool {
	return u.Username == nil &&
		u.Email == nil &&
		u.FirstName == nil &&
		u.LastName == nil &&
		u.IsActive == nil &&
		u.EmailVerified == nil &&
		u.Password == nil
}
