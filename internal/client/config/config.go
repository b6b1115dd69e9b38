package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/dmitrijs2005/carlog/internal/flagx"
)

// Config holds runtime settings for the carlog CLI.
//
// StoreKey, when set, is the passphrase used to seal tokens at rest.
type Config struct {
	APIBaseURL     string
	DataDir        string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
	StoreKey       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.DataDir = ".carlog"
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.StoreKey = ""
}

// LoadConfig applies defaults, then the .env file, the environment, the JSON
// file, and finally the flags in args (os.Args[1:] in production).
func LoadConfig(args []string) (*Config, error) {

	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, flagx.EnvFilePath(args), os.LookupEnv); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, flagx.JSONConfigPath(args)); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {

	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: api url %q must be an absolute http(s) URL", c.APIBaseURL)
	}
	if c.DataDir == "" {
		return fmt.Errorf("config: data dir is required")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("config: request timeout must not be negative")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("config: log format %q, want text or json", c.LogFormat)
	}
	return nil
}
