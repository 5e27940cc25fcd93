// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/user-directory/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows, so the same
// scanning code serves single-row and multi-row paths.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser maps one row of [publicUserColumns] to a public [models.User].
// The password hash is never part of the source projection.
func scanUser(s rowScanner) (models.User, error) {
	var u models.User
	err := s.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.IsActive,
		&u.EmailVerified,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	return u, err
}

// scanFullUser maps one row of [fullUserColumns] to a [models.FullUser],
// password hash included. Used solely behind the authentication lookup.
func scanFullUser(s rowScanner) (models.FullUser, error) {
	var u models.FullUser
	err := s.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.IsActive,
		&u.EmailVerified,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	return u, err
}

// scanIdentity maps one row of [identityColumns] to a [models.UserIdentity].
func scanIdentity(s rowScanner) (models.UserIdentity, error) {
	var ident models.UserIdentity
	err := s.Scan(&ident.ID, &ident.Username, &ident.Email)

	return ident, err
}

// scanUsers drains rows into a slice of public users.
func scanUsers(rows *sql.Rows) ([]models.User, error) {
	users := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}
