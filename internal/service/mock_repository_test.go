package service

import (
	"context"

	"github.com/MKhiriev/user-directory/models"
	"github.com/google/uuid"
)

// mockUserRepository is a func-field test double for store.UserRepository.
// Tests set only the methods a scenario is expected to hit; an unexpected
// call panics on the nil func and fails the test loudly.
type mockUserRepository struct {
	findAll              func(ctx context.Context) ([]models.User, error)
	findByID             func(ctx context.Context, id uuid.UUID) (*models.User, error)
	findByEmail          func(ctx context.Context, email string) (*models.User, error)
	findByUsername       func(ctx context.Context, username string) (*models.User, error)
	getForAuthentication func(ctx context.Context, username string) (*models.FullUser, error)
	existsByEmail        func(ctx context.Context, email string) (bool, error)
	existsByUsername     func(ctx context.Context, username string) (bool, error)
	create               func(ctx context.Context, input models.CreateUserInput) (*models.User, error)
	update               func(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (*models.User, error)
	delete               func(ctx context.Context, id uuid.UUID) (*models.UserIdentity, error)
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	return m.findAll(ctx)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return m.findByID(ctx, id)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findByEmail(ctx, email)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.findByUsername(ctx, username)
}

func (m *mockUserRepository) GetForAuthentication(ctx context.Context, username string) (*models.FullUser, error) {
	return m.getForAuthentication(ctx, username)
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.existsByEmail(ctx, email)
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return m.existsByUsername(ctx, username)
}

func (m *mockUserRepository) Create(ctx context.Context, input models.CreateUserInput) (*models.User, error) {
	return m.create(ctx, input)
}

func (m *mockUserRepository) Update(ctx context.Context, id uuid.UUID, upd models.UserUpdate) (*models.User, error) {
	return m.update(ctx, id, upd)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) (*models.UserIdentity, error) {
	return m.delete(ctx, id)
}
