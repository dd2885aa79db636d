package config

import (
	"fmt"
	"time"
)

const defaultBaseURL = "http://localhost:8080"

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the base URL of the data-pengguna server.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientExport holds the CSV export destination settings.
type ClientExport struct {
	// Dir is the directory data_pengguna.csv is written to.
	Dir string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App App
	// Adapter contains the remote endpoint address and timeout.
	Adapter ClientAdapter
	// Export contains CSV export settings.
	Export ClientExport
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration. The remote base URL defaults to
// http://localhost:8080 and the export directory to the current working
// directory.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: cfg.App,
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Export: ClientExport{
			Dir: cfg.Export.Dir,
		},
	}

	if clientCfg.Adapter.BaseURL == "" {
		clientCfg.Adapter.BaseURL = defaultBaseURL
	}
	if clientCfg.Adapter.RequestTimeout <= 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if clientCfg.Export.Dir == "" {
		clientCfg.Export.Dir = "."
	}

	return clientCfg, clientCfg.validate()
}
