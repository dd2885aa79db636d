// Package migrations embeds the goose SQL migrations for the
// data_pengguna table and applies them at server startup.
//
// The table schema is versioned: revision 1 is the original form variant
// without a phone column, revision 2 adds telepon. Each supported dialect
// carries its own migration set.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate brings the database schema up to the latest revision.
// dialect is a goose dialect name: "pgx" or "sqlite3".
func Migrate(db *sql.DB, dialect string) error {
	dir := "postgres"
	if dialect == "sqlite3" {
		dir = "sqlite"
	}

	sub, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error selecting dialect dir: %w", err)
	}
	goose.SetBaseFS(sub)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
