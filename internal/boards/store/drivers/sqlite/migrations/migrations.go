// Package migrations embeds the SQLite schema migrations, applied at startup
// through golang-migrate's iofs source.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
