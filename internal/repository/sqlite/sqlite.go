package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"daybook/internal/domain"
	"daybook/internal/repository/sqlite/migrations"
)

// DB wraps a SQLite connection and exposes the repositories backed by it.
type DB struct {
	SqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// A single connection serializes writers, so entry mutations from two
	// logged-in sessions cannot interleave and lose updates.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.SqlDB)
}

// Close closes the underlying database.
func (db *DB) Close() error {
	return db.SqlDB.Close()
}

// Users returns the SQLite-backed user repository.
func (db *DB) Users() domain.UserRepository {
	return &UserRepository{db: db.SqlDB}
}

// Entries returns the SQLite-backed entry repository.
func (db *DB) Entries() domain.EntryRepository {
	return &EntryRepository{db: db.SqlDB}
}
