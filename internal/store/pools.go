// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/models"
)

// poolErrorBuffer bounds the asynchronous error channel. When the sink is
// saturated, further reports are dropped rather than blocking a probe.
const poolErrorBuffer = 16

// Pools owns the two independent connection pools of the primary/replica
// split. It is constructed once at process start and injected into every
// repository; there is no package-level pool state.
//
// Connectivity failures observed by health probes are pushed to a buffered
// error channel (see [Pools.Errors]) so that the background monitor can log
// them without coupling them to in-flight request paths.
type Pools struct {
	Write *DB
	Read  *DB

	logger *logger.Logger
	errs   chan error

	mu     sync.RWMutex
	health models.Health
}

// NewPools connects both pools described by cfg. The write pool is connected
// first; if the read pool fails to connect, the write pool is closed again
// and the error is returned.
func NewPools(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Pools, error) {
	write, err := NewConnectPostgres(ctx, cfg.WriteDSN(), PoolWrite, log)
	if err != nil {
		return nil, fmt.Errorf("connecting write pool: %w", err)
	}

	read, err := NewConnectPostgres(ctx, cfg.ReadDSN(), PoolRead, log)
	if err != nil {
		_ = write.Close()
		return nil, fmt.Errorf("connecting read pool: %w", err)
	}

	return &Pools{
		Write:  write,
		Read:   read,
		logger: log,
		errs:   make(chan error, poolErrorBuffer),
		health: models.Health{WriteOK: true, ReadOK: true},
	}, nil
}

// HealthCheck issues a trivial no-op query against both pools, records the
// outcome as the last-known health state, and returns it. Probe failures are
// additionally reported on the asynchronous error channel.
func (p *Pools) HealthCheck(ctx context.Context) models.Health {
	h := models.Health{
		WriteOK: p.probe(ctx, p.Write),
		ReadOK:  p.probe(ctx, p.Read),
	}

	p.mu.Lock()
	p.health = h
	p.mu.Unlock()

	return h
}

// Health returns the health state recorded by the most recent probe without
// touching the database.
func (p *Pools) Health() models.Health {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.health
}

// Errors exposes the asynchronous pool error channel. Consumed by the
// background monitor; errors reported here never terminate in-flight queries.
func (p *Pools) Errors() <-chan error {
	return p.errs
}

// Close closes both pools and returns the joined error, if any.
func (p *Pools) Close() error {
	return errors.Join(p.Write.Close(), p.Read.Close())
}

func (p *Pools) probe(ctx context.Context, db *DB) bool {
	var one int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		p.report(fmt.Errorf("%s pool probe: %w", db.role, err))
		return false
	}

	return true
}

func (p *Pools) report(err error) {
	select {
	case p.errs <- err:
	default:
	}
}
