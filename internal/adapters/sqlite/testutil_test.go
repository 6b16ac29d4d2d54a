// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Instead, use
// setupTestDB() and the seed* helpers.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/dealboard/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository tests.
// Uses db.GetSchemaSQL() to prevent test schemas from drifting.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedPipeline inserts a test pipeline with the standard six stages and
// returns its ID.
func seedPipeline(t *testing.T, db *sql.DB, id string, isDefault bool) string {
	t.Helper()
	if id == "" {
		id = "PIPE-001"
	}
	_, err := db.Exec("INSERT INTO pipelines (id, name, is_default, is_active) VALUES (?, 'Sales Pipeline', ?, 1)", id, isDefault)
	if err != nil {
		t.Fatalf("failed to seed pipeline: %v", err)
	}

	stages := []struct {
		stageID     string
		name        string
		probability int
		color       string
	}{
		{"lead", "Lead", 10, "#6b7280"},
		{"qualified", "Qualified", 25, "#3b82f6"},
		{"proposal", "Proposal", 50, "#f59e0b"},
		{"negotiation", "Negotiation", 75, "#f97316"},
		{"closed-won", "Closed Won", 100, "#10b981"},
		{"closed-lost", "Closed Lost", 0, "#ef4444"},
	}
	for i, s := range stages {
		_, err := db.Exec(
			"INSERT INTO pipeline_stages (pipeline_id, stage_id, name, probability, color, position) VALUES (?, ?, ?, ?, ?, ?)",
			id, s.stageID, s.name, s.probability, s.color, i,
		)
		if err != nil {
			t.Fatalf("failed to seed stage %s: %v", s.stageID, err)
		}
	}

	return id
}

// seedCompany inserts a test company and returns its ID.
func seedCompany(t *testing.T, db *sql.DB, id, name string) string {
	t.Helper()
	if id == "" {
		id = "company-001"
	}
	if name == "" {
		name = "Test Company"
	}
	_, err := db.Exec("INSERT INTO companies (id, name, industry, size, revenue, growth) VALUES (?, ?, 'Technology', 100, 5000000, 0.2)", id, name)
	if err != nil {
		t.Fatalf("failed to seed company: %v", err)
	}
	return id
}

// seedContact inserts a test contact and returns its ID.
func seedContact(t *testing.T, db *sql.DB, id, firstName, companyID string) string {
	t.Helper()
	if id == "" {
		id = "contact-001"
	}
	if firstName == "" {
		firstName = "Test"
	}
	var company sql.NullString
	if companyID != "" {
		company = sql.NullString{String: companyID, Valid: true}
	}
	_, err := db.Exec("INSERT INTO contacts (id, first_name, last_name, company_id) VALUES (?, ?, 'Contact', ?)", id, firstName, company)
	if err != nil {
		t.Fatalf("failed to seed contact: %v", err)
	}
	return id
}

// seedDeal inserts a test deal on the given pipeline and returns its ID.
func seedDeal(t *testing.T, db *sql.DB, id, pipelineID, title, stage string) string {
	t.Helper()
	if id == "" {
		id = "deal-001"
	}
	if pipelineID == "" {
		pipelineID = "PIPE-001"
	}
	if title == "" {
		title = "Test Deal"
	}
	if stage == "" {
		stage = "lead"
	}
	_, err := db.Exec(
		"INSERT INTO deals (id, pipeline_id, title, stage, status) VALUES (?, ?, ?, ?, 'active')",
		id, pipelineID, title, stage,
	)
	if err != nil {
		t.Fatalf("failed to seed deal: %v", err)
	}
	return id
}
