package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

// SqlFiles holds the schema for the local state store: the content matrix,
// the reminder log and the run leases.
//
//go:embed sql/*.sql
var SqlFiles embed.FS

// Migrate applies the pending migrations. Applied ones are tracked by darwin
// and skipped, so calling it on every start is safe.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := migrator.Migrate(SqlFiles, "sql"); err != nil {
		return fmt.Errorf("failed to migrate state database: %w", err)
	}
	return nil
}
