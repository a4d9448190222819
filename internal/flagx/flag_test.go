package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "flag followed by another flag",
			args:         []string{"-s", "-r", "http://remote/persons"},
			allowedFlags: []string{"-s", "-r"},
			want:         []string{"-s", "-r", "http://remote/persons"},
		},
		{
			name:         "value containing equals stays attached",
			args:         []string{"-r=http://host/persons?phone=YES"},
			allowedFlags: []string{"-r"},
			want:         []string{"-r=http://host/persons?phone=YES"},
		},
		{
			name:         "repeated allowed flag is preserved in order",
			args:         []string{"-a", ":1", "-a", ":2"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a", ":1", "-a", ":2"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFilePath(t *testing.T) {
	assert.Equal(t, "/path/short.json", ConfigFilePath([]string{"-c", "/path/short.json"}))
	assert.Equal(t, "/path/long.json", ConfigFilePath([]string{"-a", ":4000", "-config", "/path/long.json"}))
	assert.Equal(t, "/path/2.json", ConfigFilePath([]string{"-c", "/path/1.json", "--config=/path/2.json"}))
	assert.Empty(t, ConfigFilePath([]string{"-x", "1"}))
}

func TestJsonConfigFlags_ReadsOsArgs(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-c", "/etc/personql.json"}
	assert.Equal(t, "/etc/personql.json", JsonConfigFlags())
}
