package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations for file-based configuration.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Export struct {
		Dir string `json:"dir"`
	} `json:"export,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Export: Export{
			Dir: jsonCfg.Export.Dir,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
