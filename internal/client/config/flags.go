package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/carlog/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. args is
// filtered with flagx.FilterArgs first so -c and -e, which belong to the
// other loaders, do not trip the flag set.
func parseFlags(cfg *Config, args []string) error {

	args = flagx.FilterArgs(args, "-a", "-d", "-t", "-l", "-log-format")

	fs := flag.NewFlagSet("carlog", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory for the local database")
	timeout := fs.Int("t", int(cfg.RequestTimeout/time.Second), "request timeout (in seconds, 0 disables)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("config: flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
