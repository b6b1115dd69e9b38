package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "short flag with separate value",
			args:    []string{"-c", "conf.json", "-a", "localhost"},
			allowed: []string{"-c", "--config"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "long flag with equals",
			args:    []string{"--config=alt.json", "-a", "localhost"},
			allowed: []string{"-c", "--config"},
			want:    []string{"--config=alt.json"},
		},
		{
			name:    "unknown flags ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag without value at end",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next dash token is not a value",
			args:    []string{"-c", "-d", "dir"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "several allowed flags keep their order",
			args:    []string{"-a", "http://x/api", "-c", "conf.json", "--other", "x"},
			allowed: []string{"-c", "-a"},
			want:    []string{"-a", "http://x/api", "-c", "conf.json"},
		},
		{
			name:    "empty args",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed...))
		})
	}
}

func TestJSONConfigPath(t *testing.T) {
	assert.Equal(t, "/p/short.json", JSONConfigPath([]string{"-c", "/p/short.json"}))
	assert.Equal(t, "/p/long.json", JSONConfigPath([]string{"-config", "/p/long.json"}))
	assert.Equal(t, "/p/eq.json", JSONConfigPath([]string{"--config=/p/eq.json"}))
	assert.Equal(t, "/p/2.json", JSONConfigPath([]string{"-c", "/p/1.json", "-config", "/p/2.json"}))
	assert.Empty(t, JSONConfigPath([]string{"-x", "1", "-a", "host"}))
}

func TestEnvFilePath(t *testing.T) {
	assert.Equal(t, "prod.env", EnvFilePath([]string{"-a", "x", "-e", "prod.env"}))
	assert.Empty(t, EnvFilePath([]string{"-c", "cfg.json"}))
}
