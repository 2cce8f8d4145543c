// Package migrations embeds the goose schema migrations for both storage
// engines: "postgres" for the remote users table and "sqlite" for the local
// key-value table that holds the record blob.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS

// Directories inside Migrations, one per dialect.
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)
