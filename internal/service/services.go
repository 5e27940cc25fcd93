package service

import (
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/store"
)

// Services aggregates every service exposed to the transport collaborator.
type Services struct {
	Users UserService
	Auth  AuthService
}

// NewServices wires all services on top of the given storages.
func NewServices(storages *store.Storages, log *logger.Logger) *Services {
	return &Services{
		Users: NewUserService(storages.Users, log),
		Auth:  NewAuthService(storages.Users, log),
	}
}
