package service

import (
	"context"

	"github.com/MKhiriev/user-directory/models"
	"github.com/google/uuid"
)

// UserService is the collaborator-facing CRUD surface of the directory.
// The transport layer consumes it and maps each sentinel to a response.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (models.User, error)
	CreateUser(ctx context.Context, input models.CreateUserInput) (models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) (models.UserIdentity, error)
}

// AuthService is consumed by the external authentication collaborator. It is
// the only surface through which a password hash may travel.
type AuthService interface {
	// GetForAuthentication returns the complete record including the
	// password hash, or nil when no user holds the username.
	GetForAuthentication(ctx context.Context, username string) (*models.FullUser, error)

	// VerifyPassword compares plaintext against a stored digest. A mismatch
	// is (false, nil); an error means the digest was malformed.
	VerifyPassword(plaintext, digest string) (bool, error)

	// Authenticate combines lookup and verification.
	Authenticate(ctx context.Context, username, password string) (models.User, error)
}
