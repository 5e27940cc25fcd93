// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	for _, pool := range []Pool{cfg.Storage.Write, cfg.Storage.Read} {
		if pool.Host == "" || pool.Port < 1 || pool.Port > 65535 {
			return ErrInvalidStorageConfigs
		}
	}

	if cfg.Storage.Database == "" || cfg.Storage.User == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.MonitorInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
