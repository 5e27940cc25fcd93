package store

import (
	"context"

	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/migrations"
)

// Storages aggregates every persistence-layer dependency handed to the
// service layer: the repository and the pool pair it routes through.
type Storages struct {
	Users UserRepository
	Pools *Pools
}

// NewStorages connects both pools and wires the user repository on top of
// them.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	pools, err := NewPools(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		Users: NewUserRepository(pools, log),
		Pools: pools,
	}, nil
}

// Migrate applies pending schema migrations. Always runs against the write
// pool; the replica receives the schema through replication.
func (s *Storages) Migrate() error {
	return migrations.Migrate(s.Pools.Write.DB)
}

// Close closes both underlying pools.
func (s *Storages) Close() error {
	return s.Pools.Close()
}
