// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/user-directory/internal/logger"
)

// probeTimeout caps a single health probe round against both pools.
const probeTimeout = 5 * time.Second

// PoolMonitor is the background worker that keeps the pool health state
// fresh and drains the asynchronous pool error channel into the log.
//
// It implements the workers.Worker interface. Asynchronous connectivity
// errors are decoupled from request paths: a request that already completed
// is unaffected, and new requests keep being attempted while the pooling
// primitive reconnects on its own.
type PoolMonitor struct {
	pools      *Pools
	interval   time.Duration
	classifier *PostgresErrorClassifier
	logger     *logger.Logger
	done       chan struct{}
}

// NewPoolMonitor constructs a monitor probing pools every interval.
func NewPoolMonitor(pools *Pools, interval time.Duration, log *logger.Logger) *PoolMonitor {
	return &PoolMonitor{
		pools:      pools,
		interval:   interval,
		classifier: NewPostgresErrorClassifier(),
		logger:     log,
		done:       make(chan struct{}),
	}
}

// Run starts the probe loop and the error drain in their own goroutines and
// returns immediately.
func (m *PoolMonitor) Run() {
	go m.probeLoop()
	go m.drainErrors()
}

// Stop terminates both goroutines started by Run.
func (m *PoolMonitor) Stop() {
	close(m.done)
}

func (m *PoolMonitor) probeLoop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
			h := m.pools.HealthCheck(ctx)
			cancel()

			if !h.OK() {
				m.logger.Warn().
					Bool("write_ok", h.WriteOK).
					Bool("read_ok", h.ReadOK).
					Msg("pool health probe failed")
			}
		}
	}
}

func (m *PoolMonitor) drainErrors() {
	for {
		select {
		case <-m.done:
			return
		case err := <-m.pools.Errors():
			if m.classifier.Classify(err) == Retryable {
				m.logger.Warn().Err(err).Msg("transient pool error")
				continue
			}
			m.logger.Error().Err(err).Msg("pool error")
		}
	}
}
