package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrUnsupportedDriver indicates a database driver other than
	// "pgx" or "sqlite3".
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN on the server).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a missing remote base URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
