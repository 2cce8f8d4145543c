package flagx

import (
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
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-d=postgres://x", "-a", ":8080"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d=postgres://x"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-test.v", "-x", "1", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-b"},
			allowedFlags: []string{"-b"},
			want:         []string{"-b"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-b", "-k", "s3"},
			allowedFlags: []string{"-b", "-k"},
			want:         []string{"-b", "-k", "s3"},
		},
		{
			name:         "multiple allowed flags keep order",
			args:         []string{"-a", ":9090", "-test.run", "X", "-b", "remote"},
			allowedFlags: []string{"-a", "-b"},
			want:         []string{"-a", ":9090", "-b", "remote"},
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

func TestConfigFileFlag(t *testing.T) {
	t.Run("short -c", func(t *testing.T) {
		assert.Equal(t, "/etc/registre.json", ConfigFileFlag([]string{"-c", "/etc/registre.json"}))
	})

	t.Run("long -config", func(t *testing.T) {
		assert.Equal(t, "/tmp/r.json", ConfigFileFlag([]string{"-a", ":1", "-config", "/tmp/r.json"}))
	})

	t.Run("absent", func(t *testing.T) {
		assert.Empty(t, ConfigFileFlag([]string{"-b", "remote"}))
	})

	t.Run("last wins", func(t *testing.T) {
		assert.Equal(t, "2.json", ConfigFileFlag([]string{"-c", "1.json", "-config", "2.json"}))
	})
}
