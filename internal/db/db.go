package db

import (
	"context"
	"fmt"
	"log/slog"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

const driverName = "sqlite"

const userSchema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	phone_number TEXT NOT NULL,
	profile_picture TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// emailIndex keeps email unique so concurrent registrations that both pass the
// uniqueness pre-check cannot create two records.
const emailIndex = `CREATE UNIQUE INDEX IF NOT EXISTS users_email_unique ON users (email);`

// Connect opens the SQLite database at dbPath and verifies the connection.
func Connect(ctx context.Context, dbPath string) (*sqlx.DB, error) {
	pool, err := sqlx.Open(driverName, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	// SQLite serializes writers; a single connection also keeps :memory: databases shared.
	pool.SetMaxOpenConns(1)

	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	slog.InfoContext(ctx, "Connected to database", "db.path", dbPath)
	return pool, nil
}

// InitializeDB enables foreign keys and creates the schema if it does not exist.
func InitializeDB(ctx context.Context, DB *sqlx.DB) error {
	if _, err := DB.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := DB.ExecContext(ctx, userSchema); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	if _, err := DB.ExecContext(ctx, emailIndex); err != nil {
		return fmt.Errorf("failed to create users email index: %w", err)
	}

	slog.InfoContext(ctx, "DB connection initialized and schema verified.")

	return nil
}
