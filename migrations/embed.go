// Package migrations compiles the SQL schema migrations into the daemon
// binary, so a deployed netweaved needs no migration files on disk.
package migrations

import (
	"embed"

	"github.com/calebmv/netweave-core/internal/infrastructure/database"
)

//go:embed *.sql
var migrationsFS embed.FS

func init() {
	database.MigrationsFS = migrationsFS
	database.MigrationsDir = "." // embedded files sit at the FS root
}
