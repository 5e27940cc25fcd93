// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/store"
	"github.com/MKhiriev/user-directory/internal/utils"
	"github.com/MKhiriev/user-directory/models"
)

// authService is the concrete implementation of [AuthService]. It is the
// only component allowed to read the password hash, and it never returns the
// hash beyond the dedicated lookup method.
type authService struct {
	users  store.UserRepository
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] on top of the given repository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(users store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		users:  users,
		logger: logger,
	}
}

// GetForAuthentication returns the full record including the password hash,
// or nil when no user holds the username. Absence is not an error.
func (a *authService) GetForAuthentication(ctx context.Context, username string) (*models.FullUser, error) {
	user, err := a.users.GetForAuthentication(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("authentication lookup failed: %w", err)
	}

	return user, nil
}

// VerifyPassword delegates to the credential hasher. A mismatch yields
// (false, nil); an error means the digest was malformed.
func (a *authService) VerifyPassword(plaintext, digest string) (bool, error) {
	return utils.VerifyPassword(plaintext, digest)
}

// Authenticate looks the user up by username and verifies the supplied
// password against the stored digest.
//
// Returns the public user record or:
//   - [ErrInvalidDataProvided] if username or password is empty.
//   - [ErrUserNotFound] if no user holds the username.
//   - [ErrWrongPassword] if the password does not match.
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	found, err := a.GetForAuthentication(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, err
	}
	if found == nil {
		return models.User{}, ErrUserNotFound
	}

	ok, err := utils.VerifyPassword(password, found.PasswordHash)
	if err != nil {
		log.Err(err).Str("username", username).Msg("password verification failed")
		return models.User{}, err
	}
	if !ok {
		log.Warn().Str("username", username).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return found.User, nil
}
