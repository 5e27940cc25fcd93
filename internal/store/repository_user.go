package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/utils"
	"github.com/MKhiriev/user-directory/models"
	"github.com/google/uuid"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It is stateless across calls: every method routes its query through the
// injected pool pair and maps the resulting rows.
//
// Absence is not an error: lookup methods return a nil pointer with a nil
// error when no row matches, so callers can distinguish "no such row" from a
// store failure.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	pools  *Pools
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// pool pair and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(pools *Pools, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		pools:  pools,
		logger: logger,
	}
}

// FindAll returns every user through the public projection, newest first.
// Unbounded; pagination is a deliberate non-feature of this repository.
func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllUsersQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.pools.Route(OpRead).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAll").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// FindByID returns the user with the given id, or nil when absent.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query, args, err := buildSelectUserByIDQuery(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, OpRead, query, args)
}

// FindByEmail returns the user with the given email, or nil when absent.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query, args, err := buildSelectUserByEmailQuery(email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, OpRead, query, args)
}

// FindByUsername returns the user with the given username, or nil when absent.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query, args, err := buildSelectUserByUsernameQuery(username)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, OpRead, query, args)
}

// GetForAuthentication returns the complete record including the password
// hash, or nil when absent. This is the only read that exposes the hash and
// exists solely for the authentication collaborator.
func (r *userRepository) GetForAuthentication(ctx context.Context, username string) (*models.FullUser, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectForAuthenticationQuery(username)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.pools.Route(OpRead).QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.GetForAuthentication").Msg("error: row is nil")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	user, err := scanFullUser(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		log.Err(err).Str("func", "*userRepository.GetForAuthentication").Msg("error: scanning error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &user, nil
}

// ExistsByEmail reports whether any user holds the given email. Routed
// through the write pool so a row inserted moments earlier is visible to the
// probe regardless of replica lag.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email", email)
}

// ExistsByUsername reports whether any user holds the given username.
// Routed through the write pool, same as [userRepository.ExistsByEmail].
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username", username)
}

// Create persists a new user record and returns the public projection with
// server-assigned fields (id, timestamps, boolean defaults).
//
// The plaintext password is hashed here; the INSERT carries only the digest
// and returns all public columns via a RETURNING clause, so the caller
// receives the canonical database representation of the new account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → the matching conflict sentinel
//     ([ErrEmailAlreadyExists], [ErrUsernameAlreadyExists], or
//     [ErrUserAlreadyExists] when the constraint is unrecognised).
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *userRepository) Create(ctx context.Context, input models.CreateUserInput) (*models.User, error) {
	log := logger.FromContext(ctx)

	digest, err := utils.HashPassword(input.Password)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("error: hashing password")
		return nil, err
	}

	query, args, err := buildInsertUserQuery(input, digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.pools.Route(OpWrite).QueryRowContext(ctx, query, args...)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("error: row is nil")

		if conflict := translateConstraintError(err); conflict != nil {
			return nil, conflict
		}
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved user from db
	user, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("error: scanning error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &user, nil
}

// Update applies a partial update: only the fields present in upd are
// written, in the fixed allow-list order, with the password digest appended
// last when a password change was requested. Absent fields keep their stored
// values. Returns the updated public projection, or nil when no row has the
// given id.
//
// Returns [ErrNoFieldsToUpdate] without touching the store when upd carries
// nothing; unique violations are translated the same way as in
// [userRepository.Create].
func (r *userRepository) Update(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (*models.User, error) {
	log := logger.FromContext(ctx)

	var digest string
	if upd.Password != nil && *upd.Password != "" {
		var err error
		if digest, err = utils.HashPassword(*upd.Password); err != nil {
			log.Err(err).Str("func", "*userRepository.Update").Msg("error: hashing password")
			return nil, err
		}
	}

	query, args, err := buildUpdateUserQuery(id, upd, digest)
	if err != nil {
		if errors.Is(err, ErrNoFieldsToUpdate) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.pools.Route(OpWrite).QueryRowContext(ctx, query, args...)

	// update user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.Update").Msg("error: row is nil")

		if conflict := translateConstraintError(err); conflict != nil {
			return nil, conflict
		}
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	user, err := scanUser(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		log.Err(err).Str("func", "*userRepository.Update").Msg("error: scanning error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &user, nil
}

// Delete hard-deletes the user with the given id and returns the identity of
// the removed row, or nil when no such id existed. A second delete of the
// same id therefore returns absent, not an error.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) (*models.UserIdentity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.pools.Route(OpWrite).QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Msg("error: row is nil")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	ident, err := scanIdentity(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		log.Err(err).Str("func", "*userRepository.Delete").Msg("error: scanning error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &ident, nil
}

// findOne runs a single-row public lookup through the pool selected for op.
func (r *userRepository) findOne(ctx context.Context, op Operation, query string, args []any) (*models.User, error) {
	log := logger.FromContext(ctx)

	row := r.pools.Route(op).QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error: row is nil")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	user, err := scanUser(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error: scanning error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &user, nil
}

// exists runs a uniqueness probe against the write pool.
func (r *userRepository) exists(ctx context.Context, column string, value any) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildExistsQuery(column, value)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.pools.Route(OpUniquenessCheck).QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		log.Err(err).Str("func", "*userRepository.exists").Str("column", column).Msg("error: probe failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}
