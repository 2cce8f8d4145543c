package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:9090", "-g", "127.0.0.1:9091", "-b", "remote", "-k", "s3",
				"-l", "local.db", "-d", "db", "-m", "gemini-x", "-u", "http://gemini",
				"-t", "3", "-s", "bucket", "-r", "us-west-1", "-e", "http://endpoint",
			},
			expected: &Config{
				EndpointAddrHTTP: "127.0.0.1:9090",
				EndpointAddrGRPC: "127.0.0.1:9091",
				Backend:          "remote",
				BlobDriver:       "s3",
				LocalDSN:         "local.db",
				DatabaseDSN:      "db",
				GeminiModel:      "gemini-x",
				GeminiBaseURL:    "http://gemini",
				EnrichTimeout:    3 * time.Second,
				S3Bucket:         "bucket",
				S3Region:         "us-west-1",
				S3BaseEndpoint:   "http://endpoint",
			},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"-test.v", "-x", "1", "-b", "local"},
			expected: &Config{Backend: "local"},
		},
		{
			name:        "non numeric timeout",
			args:        []string{"-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestParseFlags_KeepsSubSecondTimeoutFromJSON(t *testing.T) {
	for _, timeout := range []string{"500ms", "1500ms"} {
		t.Run(timeout, func(t *testing.T) {
			path := writeTempJSON(t, t.TempDir(), "registre.json", map[string]any{"enrich_timeout": timeout})
			args := []string{"-c", path}
			want, err := time.ParseDuration(timeout)
			require.NoError(t, err)

			config := &Config{}
			config.LoadDefaults()
			parseJson(config, args)
			parseFlags(config, args)

			assert.Equal(t, want, config.EnrichTimeout)
		})
	}
}

func TestParseFlags_TimeoutFlagOverridesJSON(t *testing.T) {
	path := writeTempJSON(t, t.TempDir(), "registre.json", map[string]any{"enrich_timeout": "500ms"})
	args := []string{"-c", path, "-t", "2"}

	config := &Config{}
	config.LoadDefaults()
	parseJson(config, args)
	parseFlags(config, args)

	assert.Equal(t, 2*time.Second, config.EnrichTimeout)
}
