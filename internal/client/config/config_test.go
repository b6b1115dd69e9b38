package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func noEnv(string) (string, bool) { return "", false }

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://localhost:5000/api", c.APIBaseURL)
	assert.Equal(t, ".carlog", c.DataDir)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, "text", c.LogFormat)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_NoSources(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	if diff := cmp.Diff(defaults(), *cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEnv_FileThenProcessEnv(t *testing.T) {
	envFile := writeFile(t, "carlog.env", `
CARLOG_API_URL=https://file.example.com/api
CARLOG_DATA_DIR=/var/lib/carlog
CARLOG_REQUEST_TIMEOUT=30
CARLOG_STORE_KEY=from-file
`)
	lookup := func(k string) (string, bool) {
		if k == EnvAPIURL {
			return "https://env.example.com/api", true
		}
		return "", false
	}

	c := defaults()
	require.NoError(t, parseEnv(&c, envFile, lookup))

	assert.Equal(t, "https://env.example.com/api", c.APIBaseURL)
	assert.Equal(t, "/var/lib/carlog", c.DataDir)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, "from-file", c.StoreKey)
}

func TestParseEnv_DurationString(t *testing.T) {
	c := defaults()
	lookup := func(k string) (string, bool) {
		if k == EnvRequestTimeout {
			return "1m30s", true
		}
		return "", false
	}
	require.NoError(t, parseEnv(&c, "", lookup))
	assert.Equal(t, 90*time.Second, c.RequestTimeout)
}

func TestParseEnv_Errors(t *testing.T) {
	c := defaults()
	err := parseEnv(&c, filepath.Join(t.TempDir(), "missing.env"), noEnv)
	require.Error(t, err)

	lookup := func(k string) (string, bool) {
		if k == EnvRequestTimeout {
			return "soon", true
		}
		return "", false
	}
	require.Error(t, parseEnv(&c, "", lookup))
}

func TestParseJSON(t *testing.T) {
	p := writeFile(t, "cfg.json", `{"api_base_url":"https://json.example.com/api","request_timeout":"5s","log_level":"debug"}`)

	c := defaults()
	require.NoError(t, parseJSON(&c, p))

	want := defaults()
	want.APIBaseURL = "https://json.example.com/api"
	want.RequestTimeout = 5 * time.Second
	want.LogLevel = "debug"
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSON_ZeroTimeoutDisables(t *testing.T) {
	p := writeFile(t, "cfg.json", `{"request_timeout":0}`)
	c := defaults()
	require.NoError(t, parseJSON(&c, p))
	assert.Zero(t, c.RequestTimeout)
}

func TestParseJSON_Errors(t *testing.T) {
	c := defaults()
	require.NoError(t, parseJSON(&c, ""))
	require.Error(t, parseJSON(&c, filepath.Join(t.TempDir(), "missing.json")))
	require.Error(t, parseJSON(&c, writeFile(t, "bad.json", `{`)))
}

func TestParseFlags(t *testing.T) {
	c := defaults()
	args := []string{"-c", "ignored.json", "-a", "https://flag.example.com/api", "-t", "3", "-log-format=json", "-unknown", "x"}
	require.NoError(t, parseFlags(&c, args))

	assert.Equal(t, "https://flag.example.com/api", c.APIBaseURL)
	assert.Equal(t, 3*time.Second, c.RequestTimeout)
	assert.Equal(t, "json", c.LogFormat)
	assert.Equal(t, ".carlog", c.DataDir)
}

func TestParseFlags_TimeoutUntouchedWhenAbsent(t *testing.T) {
	c := defaults()
	c.RequestTimeout = 1500 * time.Millisecond
	require.NoError(t, parseFlags(&c, []string{"-d", "/tmp/x"}))
	assert.Equal(t, 1500*time.Millisecond, c.RequestTimeout)
}

func TestLoadConfig_Precedence(t *testing.T) {
	envFile := writeFile(t, "carlog.env", "CARLOG_API_URL=https://file.example.com/api\nCARLOG_LOG_LEVEL=info\n")
	jsonFile := writeFile(t, "cfg.json", `{"api_base_url":"https://json.example.com/api","data_dir":"/json"}`)
	t.Setenv(EnvDataDir, "/env")

	cfg, err := LoadConfig([]string{"-e", envFile, "-c", jsonFile, "-d", "/flag"})
	require.NoError(t, err)

	assert.Equal(t, "https://json.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, "/flag", cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := LoadConfig([]string{"-a", "localhost:5000"})
	require.Error(t, err)

	_, err = LoadConfig([]string{"-log-format", "xml"})
	require.Error(t, err)
}
