// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Prasetyo

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by both binaries. Per-binary requirements are enforced
// by [ServerConfig.validate] and [ClientConfig.validate] on the derived
// views instead, so a client does not need a DSN and a server does not
// need a remote base URL.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.Driver != "" &&
		cfg.Storage.DB.Driver != DriverPostgres &&
		cfg.Storage.DB.Driver != DriverSQLite {
		return ErrUnsupportedDriver
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
