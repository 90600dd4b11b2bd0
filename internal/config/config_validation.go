// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
//
// The API key must be non-empty: an empty secret would make the
// authorization gate unsatisfiable, and the gate rejects empty headers
// anyway. The database must be reachable through a known driver and a
// resolvable connection string.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.APIKey == "" {
		return fmt.Errorf("%w: api key is empty", ErrInvalidAppConfigs)
	}
	if cfg.App.AnswerAuthor == "" {
		return fmt.Errorf("%w: answer author is empty", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is empty", ErrInvalidServerConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.ConnectionString() == "" {
		return fmt.Errorf("%w: no DSN and no host/name given", ErrInvalidStorageConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.APIKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
