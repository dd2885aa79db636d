package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
)

// ServerConfig is the server-specific view of the merged configuration.
type ServerConfig struct {
	// App contains application-level settings.
	App App
	// Storage contains database connection settings.
	Storage Storage
	// Server contains HTTP listener settings.
	Server Server
}

// GetServerConfig builds and validates the server config view from the
// merged structured configuration. Defaults are applied before validation:
// the listen address falls back to localhost:8080, the request timeout to
// 30 seconds, and the driver is inferred from the DSN scheme when unset.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
	}

	if serverCfg.Server.HTTPAddress == "" {
		serverCfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if serverCfg.Server.RequestTimeout <= 0 {
		serverCfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if serverCfg.Storage.DB.Driver == "" {
		serverCfg.Storage.DB.Driver = inferDriver(serverCfg.Storage.DB.DSN)
	}

	return serverCfg, serverCfg.validate()
}

// inferDriver picks the database driver from the DSN scheme. Anything that
// does not look like a Postgres URI is treated as a SQLite file path.
func inferDriver(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}
