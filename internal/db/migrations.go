package db

import (
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Migration represents a database migration.
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order. Fresh installs get the
// full schema from SchemaSQL; migrations exist for databases created before
// a column was added there.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "add_engagement_counters_to_contacts",
		Up:      migrationV1,
	},
}

// RunMigrations applies all pending migrations.
func RunMigrations(database *sql.DB) error {
	for _, m := range migrations {
		var count int
		err := database.QueryRow(
			"SELECT COUNT(*) FROM schema_migrations WHERE version = ?", m.Version,
		).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to check migration %d: %w", m.Version, err)
		}
		if count > 0 {
			continue
		}

		log.WithFields(log.Fields{
			"component": "db",
			"version":   m.Version,
			"name":      m.Name,
		}).Info("applying migration")

		if err := m.Up(database); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}

		if _, err := database.Exec(
			"INSERT INTO schema_migrations (version, name) VALUES (?, ?)", m.Version, m.Name,
		); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}

	return nil
}

// migrationV1 adds the engagement counters the lead scorer reads. Databases
// created from the current SchemaSQL already have them.
func migrationV1(database *sql.DB) error {
	columns := []string{
		"email_opens INTEGER NOT NULL DEFAULT 0",
		"link_clicks INTEGER NOT NULL DEFAULT 0",
		"page_views INTEGER NOT NULL DEFAULT 0",
		"time_on_site REAL NOT NULL DEFAULT 0",
		"response_rate REAL NOT NULL DEFAULT 0",
		"meetings_scheduled INTEGER NOT NULL DEFAULT 0",
		"emails_sent INTEGER NOT NULL DEFAULT 0",
	}
	for _, col := range columns {
		if _, err := database.Exec("ALTER TABLE contacts ADD COLUMN " + col); err != nil {
			// Column already present on fresh installs.
			continue
		}
	}
	return nil
}
