package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvAPIURL         = "CARLOG_API_URL"
	EnvDataDir        = "CARLOG_DATA_DIR"
	EnvRequestTimeout = "CARLOG_REQUEST_TIMEOUT"
	EnvLogLevel       = "CARLOG_LOG_LEVEL"
	EnvLogFormat      = "CARLOG_LOG_FORMAT"
	EnvStoreKey       = "CARLOG_STORE_KEY"
)

const defaultEnvFile = ".env"

// parseEnv overlays cfg with CARLOG_* values. The .env file is read without
// touching the process environment; lookup (os.LookupEnv) wins over it. An
// explicitly named file must exist, the default ./.env may be absent.
func parseEnv(cfg *Config, envFile string, lookup func(string) (string, bool)) error {

	explicit := envFile != ""
	if !explicit {
		envFile = defaultEnvFile
	}

	fileVars, err := godotenv.Read(envFile)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: read env file: %w", err)
		}
		fileVars = map[string]string{}
	}

	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	if v, ok := get(EnvAPIURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := get(EnvDataDir); ok && v != "" {
		cfg.DataDir = v
	}
	if v, ok := get(EnvRequestTimeout); ok && v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvRequestTimeout, err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := get(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := get(EnvLogFormat); ok && v != "" {
		cfg.LogFormat = v
	}
	if v, ok := get(EnvStoreKey); ok {
		cfg.StoreKey = v
	}
	return nil
}

// parseTimeout accepts a Go duration ("15s") or a plain number of seconds.
func parseTimeout(s string) (time.Duration, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(s)
}
