package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/carlog/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// leave the current values alone.
type JSONConfig struct {
	APIBaseURL     string          `json:"api_base_url"`
	DataDir        string          `json:"data_dir"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       string          `json:"log_level"`
	LogFormat      string          `json:"log_format"`
}

// parseJSON overlays cfg with the file at path. An empty path is a no-op.
func parseJSON(cfg *Config, path string) error {

	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read json: %w", err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("config: parse json %s: %w", path, err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
	return nil
}
