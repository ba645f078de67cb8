package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultDSN names a shared in-memory database. It lives as long as one
// connection stays open, so the catalog is rebuilt on every start.
const DefaultDSN = "file:kikaportals?mode=memory&cache=shared"

// Open opens sqlite with sensible defaults.
func Open(dsn string) (*sql.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		dsn = DefaultDSN
	}
	db, err := sql.Open("sqlite3", withForeignKeys(dsn))
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping catalog: %w", err)
	}
	return db, nil
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// OpenCatalog opens the store, applies migrations and loads the seed.
func OpenCatalog(ctx context.Context, dsn, seedPath string) (*sql.DB, error) {
	seed, err := LoadSeed(seedPath)
	if err != nil {
		return nil, err
	}
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	if err := RunMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := SeedCatalog(ctx, db, seed); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
