package migrations

import "embed"

// Migrations holds the SQL migration files compiled into the binary. They
// are applied through golang-migrate's iofs source at startup.
//
//go:embed *.sql
var Migrations embed.FS
