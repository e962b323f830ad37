// Package migrations embeds the SQL schema applied by golang-migrate.
package migrations

import "embed"

// Postgres holds the files under postgres/.
//
//go:embed postgres/*.sql
var Postgres embed.FS

const PostgresDir = "postgres"
