package db

import (
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// SchemaSQL is the complete schema for fresh installs. It is the single
// source of truth: repository tests load it via GetSchemaSQL so drift between
// test and production schemas fails immediately with "no such column".
const SchemaSQL = `
-- Pipelines (one default per tenant, enforced by the unique partial index)
CREATE TABLE IF NOT EXISTS pipelines (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	is_default BOOLEAN NOT NULL DEFAULT 0,
	is_active BOOLEAN NOT NULL DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_pipelines_default
	ON pipelines(is_default) WHERE is_default = 1;

-- Pipeline stages (ordered; stage_id is the token deals reference)
CREATE TABLE IF NOT EXISTS pipeline_stages (
	pipeline_id TEXT NOT NULL,
	stage_id TEXT NOT NULL,
	name TEXT NOT NULL,
	probability INTEGER NOT NULL DEFAULT 0 CHECK(probability BETWEEN 0 AND 100),
	color TEXT NOT NULL DEFAULT '#6b7280',
	position INTEGER NOT NULL,
	PRIMARY KEY (pipeline_id, stage_id),
	FOREIGN KEY (pipeline_id) REFERENCES pipelines(id) ON DELETE CASCADE
);

-- Companies
CREATE TABLE IF NOT EXISTS companies (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	industry TEXT,
	size INTEGER NOT NULL DEFAULT 0,
	revenue REAL NOT NULL DEFAULT 0,
	growth REAL NOT NULL DEFAULT 0,
	technology TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Contacts (engagement counters feed the lead scorer)
CREATE TABLE IF NOT EXISTS contacts (
	id TEXT PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name TEXT,
	email TEXT,
	phone TEXT,
	title TEXT,
	industry TEXT,
	location TEXT,
	company_id TEXT,
	email_opens INTEGER NOT NULL DEFAULT 0,
	link_clicks INTEGER NOT NULL DEFAULT 0,
	page_views INTEGER NOT NULL DEFAULT 0,
	time_on_site REAL NOT NULL DEFAULT 0,
	response_rate REAL NOT NULL DEFAULT 0,
	meetings_scheduled INTEGER NOT NULL DEFAULT 0,
	emails_sent INTEGER NOT NULL DEFAULT 0,
	last_activity_at DATETIME,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (company_id) REFERENCES companies(id)
);

-- Deals (stage references pipeline_stages.stage_id; status is orthogonal)
CREATE TABLE IF NOT EXISTS deals (
	id TEXT PRIMARY KEY,
	pipeline_id TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT,
	value REAL,
	currency TEXT NOT NULL DEFAULT 'USD',
	stage TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('active', 'won', 'lost', 'on-hold')) DEFAULT 'active',
	probability INTEGER CHECK(probability BETWEEN 0 AND 100),
	close_date DATE,
	contact_id TEXT,
	company_id TEXT,
	owner_id TEXT,
	tags TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (pipeline_id) REFERENCES pipelines(id),
	FOREIGN KEY (contact_id) REFERENCES contacts(id),
	FOREIGN KEY (company_id) REFERENCES companies(id)
);

CREATE INDEX IF NOT EXISTS idx_deals_pipeline ON deals(pipeline_id);
CREATE INDEX IF NOT EXISTS idx_deals_stage ON deals(pipeline_id, stage);

-- Schema migrations tracking
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the authoritative schema for tests and tools.
func GetSchemaSQL() string {
	return SchemaSQL
}

// InitSchema creates the schema and applies pending migrations.
func InitSchema(database *sql.DB) error {
	if _, err := database.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if err := RunMigrations(database); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.WithField("component", "db").Debug("schema initialized")
	return nil
}
