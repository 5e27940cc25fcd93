// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"net/url"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// user-directory service. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds the connection settings for the primary (write) and
	// replica (read) database pools.
	Storage Storage

	// Workers holds configuration for background worker processes, such as
	// the pool health monitor.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the settings for the two database pools. The primary pool
// serves mutations and uniqueness probes; the replica pool serves plain
// reads. Database name and credentials are shared between the pools, the
// endpoints differ.
type Storage struct {
	// Write is the endpoint of the primary (write) pool.
	// Env: WRITE_DB_HOST, WRITE_DB_PORT. Defaults: localhost:6000.
	Write Pool `envPrefix:"WRITE_DB_"`

	// Read is the endpoint of the replica (read) pool.
	// Env: READ_DB_HOST, READ_DB_PORT. Defaults: localhost:6001.
	Read Pool `envPrefix:"READ_DB_"`

	// Database is the database name used by both pools.
	// Env: DB_NAME. Default: postgres.
	Database string `env:"DB_NAME"`

	// User is the database role used by both pools.
	// Env: DB_USER. Default: postgres.
	User string `env:"DB_USER"`

	// Password is the database password used by both pools.
	// Env: DB_PASSWORD. Default: password.
	Password string `env:"DB_PASSWORD"`
}

// Pool holds the network endpoint of a single database pool.
type Pool struct {
	Host string `env:"HOST"`
	Port int    `env:"PORT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// MonitorInterval is the period between pool health probes issued by the
	// background monitor (e.g. "30s", "1m").
	// Env: WORKERS_MONITOR_INTERVAL. Default: 30s.
	MonitorInterval time.Duration `env:"MONITOR_INTERVAL"`
}

// WriteDSN returns the PostgreSQL connection string for the primary pool.
func (s Storage) WriteDSN() string {
	return s.dsn(s.Write)
}

// ReadDSN returns the PostgreSQL connection string for the replica pool.
func (s Storage) ReadDSN() string {
	return s.dsn(s.Read)
}

func (s Storage) dsn(p Pool) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(s.User, s.Password),
		Host:     net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
		Path:     "/" + s.Database,
		RawQuery: url.Values{"sslmode": {"disable"}}.Encode(),
	}

	return u.String()
}

// defaultConfig returns the built-in fallback values documented on the
// [StructuredConfig] fields. It is merged as the lowest-priority source so
// that any field left unset by env, flags, and JSON still ends up populated.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Write:    Pool{Host: "localhost", Port: 6000},
			Read:     Pool{Host: "localhost", Port: 6001},
			Database: "postgres",
			User:     "postgres",
			Password: "password",
		},
		Workers: Workers{
			MonitorInterval: 30 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
