// Package migrations embeds the SQL migration files so a deployed binary
// never depends on loose files on disk.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
