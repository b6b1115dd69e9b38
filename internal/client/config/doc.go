// Package config loads runtime configuration for the carlog CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file (see parseEnv): the path given with -e/-env, or ./.env if
//     it exists.
//  3. Process environment variables with the CARLOG_ prefix, which override
//     the .env file.
//  4. Optional JSON file (see parseJSON) selected via -c or -config.
//  5. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-a string        API base URL, e.g. http://localhost:5000/api
//	-d string        directory for the local database
//	-t int           request timeout in seconds (0 disables it)
//	-l string        log level: debug, info, warn, error
//	-log-format str  log format: text or json
//
// Environment
//
//	CARLOG_API_URL, CARLOG_DATA_DIR, CARLOG_REQUEST_TIMEOUT ("15s" or
//	seconds), CARLOG_LOG_LEVEL, CARLOG_LOG_FORMAT, CARLOG_STORE_KEY
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "15s" or integer
// nanoseconds:
//
//	{
//	  "api_base_url": "https://carlog.example.com/api",
//	  "data_dir": "/home/ana/.carlog",
//	  "request_timeout": "15s",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// The store key is deliberately not read from JSON; pass it through the
// environment.
package config
