// Package database provides SQLite connectivity for the netweave daemon.
//
// It manages the single database file holding connection profiles and the
// audit trail: opening with WAL mode and a busy timeout, running embedded
// schema migrations, and lifecycle management.
//
// The file is chmodded 0600 because system-owned profile secrets are
// stored in it. All queries use parameterised statements.
//
// Usage:
//
//	db, err := database.Open(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx); err != nil {
//	    return err
//	}
//
// Migrations are additive-only: new columns are nullable or carry
// defaults, and every version ships both .up.sql and .down.sql so a
// development rollback stays possible.
package database
