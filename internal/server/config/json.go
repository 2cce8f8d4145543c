package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/registre/internal/flagx"
	"github.com/dmitrijs2005/registre/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "15s" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrHTTP string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	Backend          string         `json:"backend"`
	BlobDriver       string         `json:"blob_driver"`
	LocalDSN         string         `json:"local_dsn"`
	DatabaseDSN      string         `json:"database_dsn"`
	GeminiModel      string         `json:"gemini_model"`
	GeminiBaseURL    string         `json:"gemini_base_url"`
	EnrichTimeout    timex.Duration `json:"enrich_timeout"`
	S3RootUser       string         `json:"s3_root_user"`
	S3RootPassword   string         `json:"s3_root_password"`
	S3Bucket         string         `json:"s3_bucket"`
	S3Region         string         `json:"s3_region"`
	S3BaseEndpoint   string         `json:"s3_base_endpoint"`
}

// parseJson loads the file named by -c / -config into config. Keys missing
// from the file leave the current values untouched. An unreadable file or
// invalid JSON panics, like a bad flag does.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.Backend, c.Backend)
	setString(&config.BlobDriver, c.BlobDriver)
	setString(&config.LocalDSN, c.LocalDSN)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.GeminiModel, c.GeminiModel)
	setString(&config.GeminiBaseURL, c.GeminiBaseURL)
	if c.EnrichTimeout.Duration > 0 {
		config.EnrichTimeout = c.EnrichTimeout.Duration
	}
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
