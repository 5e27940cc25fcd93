package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

// PoolRole labels which side of the primary/replica split a connection pool
// serves. It shows up in logs and in pool-level error reports.
type PoolRole string

const (
	// PoolWrite is the primary pool. All mutations and uniqueness probes go
	// through it.
	PoolWrite PoolRole = "write"

	// PoolRead is the replica pool. Plain lookups and listings go through it.
	PoolRead PoolRole = "read"
)

// DB is a single managed connection pool. It embeds *sql.DB so the full
// database/sql API is available; the pooling primitive handles connection
// checkout, return, and reconnection on its own.
type DB struct {
	*sql.DB
	role   PoolRole
	logger *logger.Logger
}

// NewConnectPostgres opens a PostgreSQL pool for the given role via the pgx
// stdlib driver, configures its connection limits, and verifies reachability
// with a ping before returning.
func NewConnectPostgres(ctx context.Context, dsn string, role PoolRole, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("pool", string(role)).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("pool", string(role)).Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("pool", string(role)).Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		role:   role,
		logger: log,
	}, nil
}

// Role returns which side of the primary/replica split this pool serves.
func (db *DB) Role() PoolRole {
	return db.role
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
