package store

import (
	"context"

	"github.com/MKhiriev/user-directory/models"
	"github.com/google/uuid"
)

// UserRepository is the persistence access layer for the users table.
//
// Lookup methods express absence as a nil pointer with a nil error; a non-nil
// error always means the store itself failed. Mutations translate database
// unique violations into the conflict sentinels declared in this package.
type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	GetForAuthentication(ctx context.Context, username string) (*models.FullUser, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, input models.CreateUserInput) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.UserIdentity, error)
}
