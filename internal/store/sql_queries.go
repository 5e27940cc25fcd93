// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/user-directory/models"
	"github.com/google/uuid"
)

// psql is the statement builder shared by all queries; PostgreSQL positional
// placeholders, parameters are always bound, never interpolated.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const usersTable = "users"

// publicUserColumns are the columns returned by every public read path.
// password_hash is deliberately absent.
var publicUserColumns = []string{
	"id",
	"username",
	"email",
	"first_name",
	"last_name",
	"is_active",
	"email_verified",
	"created_at",
	"updated_at",
}

// fullUserColumns are all persisted columns in schema order, including
// password_hash. Selected only by the authentication lookup.
var fullUserColumns = []string{
	"id",
	"username",
	"email",
	"password_hash",
	"first_name",
	"last_name",
	"is_active",
	"email_verified",
	"created_at",
	"updated_at",
}

// identityColumns are the delete projection.
var identityColumns = []string{"id", "username", "email"}

// userUpdateField pairs an updatable column with its extractor from the
// partial payload. The slice below is the allow-list AND the deterministic
// order of generated SET clauses; password_hash is handled separately and is
// always appended last.
type userUpdateField struct {
	column string
	value  func(models.UserUpdate) (any, bool)
}

var userUpdateFields = []userUpdateField{
	{"username", func(u models.UserUpdate) (any, bool) {
		if u.Username == nil {
			return nil, false
		}
		return *u.Username, true
	}},
	{"email", func(u models.UserUpdate) (any, bool) {
		if u.Email == nil {
			return nil, false
		}
		return *u.Email, true
	}},
	{"first_name", func(u models.UserUpdate) (any, bool) {
		if u.FirstName == nil {
			return nil, false
		}
		return *u.FirstName, true
	}},
	{"last_name", func(u models.UserUpdate) (any, bool) {
		if u.LastName == nil {
			return nil, false
		}
		return *u.LastName, true
	}},
	{"is_active", func(u models.UserUpdate) (any, bool) {
		if u.IsActive == nil {
			return nil, false
		}
		return *u.IsActive, true
	}},
	{"email_verified", func(u models.UserUpdate) (any, bool) {
		if u.EmailVerified == nil {
			return nil, false
		}
		return *u.EmailVerified, true
	}},
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// buildSelectAllUsersQuery lists every user through the public projection,
// newest first.
func buildSelectAllUsersQuery() (string, []any, error) {
	return psql.Select(publicUserColumns...).
		From(usersTable).
		OrderBy("created_at DESC").
		ToSql()
}

func buildSelectUserByIDQuery(id uuid.UUID) (string, []any, error) {
	return psql.Select(publicUserColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectUserByEmailQuery(email string) (string, []any, error) {
	return psql.Select(publicUserColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildSelectUserByUsernameQuery(username string) (string, []any, error) {
	return psql.Select(publicUserColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

// buildSelectForAuthenticationQuery selects the complete row including
// password_hash.
func buildSelectForAuthenticationQuery(username string) (string, []any, error) {
	return psql.Select(fullUserColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

// buildExistsQuery probes whether any row holds the given value in column.
// column must be one of the fixed identifiers passed by the repository,
// never caller input.
func buildExistsQuery(column string, value any) (string, []any, error) {
	return psql.Select("1").
		From(usersTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}

// buildInsertUserQuery inserts a new user with an already-hashed password.
// id, is_active, email_verified, and both timestamps are left to the
// database defaults; the full public projection is returned.
func buildInsertUserQuery(in models.CreateUserInput, passwordHash string) (string, []any, error) {
	return psql.Insert(usersTable).
		Columns("username", "email", "first_name", "last_name", "password_hash").
		Values(in.Username, in.Email, in.FirstName, in.LastName, passwordHash).
		Suffix(returning(publicUserColumns)).
		ToSql()
}

// buildUpdateUserQuery builds the dynamic partial UPDATE. Only fields present
// in upd produce SET clauses, in the fixed [userUpdateFields] order; a
// non-empty passwordHash is always appended last. Returns
// [ErrNoFieldsToUpdate] when the statement would have no SET clause at all.
func buildUpdateUserQuery(id uuid.UUID, upd models.UserUpdate, passwordHash string) (string, []any, error) {
	builder := psql.Update(usersTable)

	assigned := 0
	for _, field := range userUpdateFields {
		if v, ok := field.value(upd); ok {
			builder = builder.Set(field.column, v)
			assigned++
		}
	}

	if passwordHash != "" {
		builder = builder.Set("password_hash", passwordHash)
		assigned++
	}

	if assigned == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix(returning(publicUserColumns)).
		ToSql()
}

// buildDeleteUserQuery hard-deletes a row and returns its identity
// projection.
func buildDeleteUserQuery(id uuid.UUID) (string, []any, error) {
	return psql.Delete(usersTable).
		Where(sq.Eq{"id": id}).
		Suffix(returning(identityColumns)).
		ToSql()
}
