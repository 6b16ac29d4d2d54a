package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var (
	conn          *sql.DB
	connPath      string
	dbInitialized bool
)

// DefaultPath returns the default database file path (~/.dealboard/dealboard.db).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".dealboard", "dealboard.db"), nil
}

// GetDB returns the shared database connection, opening and migrating it on
// first use. An empty path means DefaultPath.
func GetDB(path string) (*sql.DB, error) {
	if conn != nil && (path == "" || path == connPath) {
		return conn, nil
	}

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	database, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	conn = database
	connPath = path

	if !dbInitialized {
		dbInitialized = true
		if err := InitSchema(conn); err != nil {
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	return conn, nil
}

// Close closes the shared database connection.
func Close() error {
	if conn != nil {
		err := conn.Close()
		conn = nil
		dbInitialized = false
		return err
	}
	return nil
}
