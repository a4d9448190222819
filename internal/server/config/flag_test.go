package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-p", "/api", "-s", "remote", "-r", "http://json-server/persons",
				"-t", "3", "-w", "1", "-l", "debug",
			},
			expected: &Config{
				EndpointAddrHTTP:   "127.0.0.1:9090",
				EndpointPath:       "/api",
				PersonsSource:      "remote",
				RemotePersonsURL:   "http://json-server/persons",
				RemoteFetchTimeout: 3 * time.Second,
				ShutdownTimeout:    1 * time.Second,
				LogLevel:           "debug",
			},
		},
		{
			name: "unrelated flags are ignored",
			args: []string{"cmd", "-c", "cfg.json", "-a", ":8080"},
			expected: &Config{
				EndpointAddrHTTP: ":8080",
			},
		},
		{
			name:        "non-numeric timeout panics",
			args:        []string{"cmd", "-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
