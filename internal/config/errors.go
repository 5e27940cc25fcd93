package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid database pool settings
	// (for example, an empty host, an out-of-range port, or a missing
	// database name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a non-positive monitor interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
