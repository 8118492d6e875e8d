package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // register sqlite3 driver

	"github.com/eslsoft/vocquiz/internal/infrastructure/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS dictionary_rows (
	source        TEXT    NOT NULL,
	position      INTEGER NOT NULL,
	word          TEXT    NOT NULL,
	pronunciation TEXT    NOT NULL,
	translation   TEXT    NOT NULL,
	fetched_at    TIMESTAMP NOT NULL,
	PRIMARY KEY (source, position)
);`

// NewSQLite opens the dictionary cache and applies the schema. When caching is
// disabled it returns a nil *sql.DB and a no-op cleanup.
func NewSQLite(cfg *config.Config) (*sql.DB, func(), error) {
	if !cfg.Cache.Enabled {
		return nil, func() {}, nil
	}
	return Open(cfg.Cache.Path)
}

// Open opens (creating if needed) the sqlite database at path.
func Open(path string) (*sql.DB, func(), error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create cache dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?_busy_timeout=5000")
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("apply schema: %w", err)
	}

	cleanup := func() { _ = db.Close() }
	return db, cleanup, nil
}
