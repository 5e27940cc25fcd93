// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/store"
	"github.com/MKhiriev/user-directory/models"
	"github.com/google/uuid"
)

// userService is the concrete implementation of [UserService]. It layers the
// two-phase mutation pattern over the repository: an advisory uniqueness
// probe first, then the pool-targeted mutation. The probe is not atomic with
// the mutation; the database unique constraint is the backstop, and the
// repository translates its violations into the same conflict sentinels, so
// callers cannot tell which of the two mechanisms caught a duplicate.
type userService struct {
	users  store.UserRepository
	logger *logger.Logger
}

// NewUserService constructs a [UserService] on top of the given repository.
func NewUserService(users store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		users:  users,
		logger: logger,
	}
}

// ListUsers returns all users, newest first.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

// GetUser returns the user with the given id or [ErrUserNotFound].
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}
	if user == nil {
		return models.User{}, ErrUserNotFound
	}

	return *user, nil
}

// CreateUser validates the required fields, probes both unique columns
// through the write pool, and inserts the new account.
//
// Returns:
//   - [ErrInvalidDataProvided] when username, email, or password is empty.
//   - [store.ErrEmailAlreadyExists] / [store.ErrUsernameAlreadyExists] when a
//     duplicate is found, whether by the probe or by the database constraint.
func (s *userService) CreateUser(ctx context.Context, input models.CreateUserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if input.Username == "" || input.Email == "" || input.Password == "" {
		log.Error().Str("username", input.Username).Str("email", input.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	taken, err := s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return models.User{}, fmt.Errorf("email uniqueness probe failed: %w", err)
	}
	if taken {
		return models.User{}, store.ErrEmailAlreadyExists
	}

	taken, err = s.users.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return models.User{}, fmt.Errorf("username uniqueness probe failed: %w", err)
	}
	if taken {
		return models.User{}, store.ErrUsernameAlreadyExists
	}

	created, err := s.users.Create(ctx, input)
	if err != nil {
		log.Err(err).Str("username", input.Username).Msg("user creation ended with error")
		return models.User{}, err
	}

	return *created, nil
}

// UpdateUser applies a partial update to the user with the given id.
//
// Uniqueness is re-probed only for columns whose value actually changes, so
// writing a user's current email back to itself is not a conflict. An empty
// payload fails with [store.ErrNoFieldsToUpdate] before any store call.
func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if upd.Empty() {
		return models.User{}, store.ErrNoFieldsToUpdate
	}

	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}
	if existing == nil {
		return models.User{}, ErrUserNotFound
	}

	if upd.Email != nil && *upd.Email != existing.Email {
		taken, err := s.users.ExistsByEmail(ctx, *upd.Email)
		if err != nil {
			return models.User{}, fmt.Errorf("email uniqueness probe failed: %w", err)
		}
		if taken {
			return models.User{}, store.ErrEmailAlreadyExists
		}
	}

	if upd.Username != nil && *upd.Username != existing.Username {
		taken, err := s.users.ExistsByUsername(ctx, *upd.Username)
		if err != nil {
			return models.User{}, fmt.Errorf("username uniqueness probe failed: %w", err)
		}
		if taken {
			return models.User{}, store.ErrUsernameAlreadyExists
		}
	}

	updated, err := s.users.Update(ctx, id, upd)
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("user update ended with error")
		return models.User{}, err
	}
	if updated == nil {
		// row vanished between the lookup and the update
		return models.User{}, ErrUserNotFound
	}

	return *updated, nil
}

// DeleteUser hard-deletes the user with the given id and returns the removed
// identity, or [ErrUserNotFound] when the id does not exist.
func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) (models.UserIdentity, error) {
	ident, err := s.users.Delete(ctx, id)
	if err != nil {
		return models.UserIdentity{}, fmt.Errorf("user deletion failed: %w", err)
	}
	if ident == nil {
		return models.UserIdentity{}, ErrUserNotFound
	}

	return *ident, nil
}
