// Package migrations embeds the versioned SQL schema applied by cmd/migrate.
package migrations

import "embed"

// FS holds every {version}_{name}.{up|down}.sql file
//
//go:embed *.sql
var FS embed.FS
