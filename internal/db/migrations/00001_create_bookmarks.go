package migrations

// The generated integer primary key differs by database driver (AUTOINCREMENT
// for SQLite, BIGSERIAL for PostgreSQL, AUTO_INCREMENT for MySQL), so this is
// a Go migration rather than a single SQL file.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateBookmarks, downCreateBookmarks)
}

func upCreateBookmarks(ctx context.Context, tx *sql.Tx) error {
	var ddl string
	switch dialect {
	case "postgres":
		ddl = `CREATE TABLE IF NOT EXISTS bookmarks (
    id          BIGSERIAL PRIMARY KEY,
    title       TEXT NOT NULL,
    bookmarkurl TEXT NOT NULL,
    description TEXT NOT NULL,
    rating      DOUBLE PRECISION NOT NULL
)`
	case "mysql":
		ddl = `CREATE TABLE IF NOT EXISTS bookmarks (
    id          BIGINT AUTO_INCREMENT PRIMARY KEY,
    title       TEXT NOT NULL,
    bookmarkurl TEXT NOT NULL,
    description TEXT NOT NULL,
    rating      DOUBLE NOT NULL
)`
	default: // sqlite3
		ddl = `CREATE TABLE IF NOT EXISTS bookmarks (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    title       TEXT NOT NULL,
    bookmarkurl TEXT NOT NULL,
    description TEXT NOT NULL,
    rating      REAL NOT NULL
)`
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create bookmarks table: %w", err)
	}
	return nil
}

func downCreateBookmarks(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS bookmarks`)
	return err
}
