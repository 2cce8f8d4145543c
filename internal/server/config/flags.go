package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/registre/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-g string   gRPC bind address (e.g., ":50051")
//	-b string   storage backend: local | remote
//	-k string   blob keeper for the local backend: sqlite | s3
//	-l string   SQLite file for the local blob
//	-d string   PostgreSQL DSN for the remote backend
//	-m string   Gemini model name
//	-u string   Gemini API base URL
//	-t int      enrichment timeout, seconds
//	-s string   S3 bucket
//	-r string   S3 region
//	-e string   S3 base endpoint
//
// Only these flags are parsed (see flagx.FilterArgs), so test binaries and
// other components can keep their own.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-b", "-k", "-l", "-d", "-m", "-u", "-t", "-s", "-r", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port of the HTTP server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "address and port of the gRPC server")
	fs.StringVar(&config.Backend, "b", config.Backend, "storage backend (local|remote)")
	fs.StringVar(&config.BlobDriver, "k", config.BlobDriver, "local blob keeper (sqlite|s3)")
	fs.StringVar(&config.LocalDSN, "l", config.LocalDSN, "SQLite file for the local backend")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.GeminiModel, "m", config.GeminiModel, "Gemini model")
	fs.StringVar(&config.GeminiBaseURL, "u", config.GeminiBaseURL, "Gemini API base URL")

	enrichTimeout := fs.Int("t", int(config.EnrichTimeout.Seconds()), "enrichment timeout (in seconds)")

	fs.StringVar(&config.S3Bucket, "s", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "r", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t only overrides when given; the JSON file may carry sub-second values
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.EnrichTimeout = time.Duration(*enrichTimeout) * time.Second
		}
	})
}
