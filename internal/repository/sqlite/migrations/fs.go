// Package migrations embeds the SQL schema migrations and applies them in
// filename order, tracking applied files in a schema_migrations table.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
