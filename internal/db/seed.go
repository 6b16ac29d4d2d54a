package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures populates the database with development fixtures: two
// companies, three contacts, and deals spread across the default pipeline's
// stages. It assumes the default pipeline (PIPE-001) already exists.
func SeedFixtures(database *sql.DB) error {
	now := time.Now().UTC().Format(time.RFC3339)

	companies := []struct {
		id, name, industry string
		size               int
		revenue, growth    float64
		technology         string
	}{
		{"c0a80001-0000-4000-8000-000000000001", "Globex Corporation", "Technology", 800, 25000000, 0.35, "CRM,Sales Tools"},
		{"c0a80001-0000-4000-8000-000000000002", "Initech LLC", "Finance", 90, 4000000, 0.05, "Marketing Automation"},
	}
	for _, c := range companies {
		if _, err := database.Exec(
			"INSERT INTO companies (id, name, industry, size, revenue, growth, technology, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			c.id, c.name, c.industry, c.size, c.revenue, c.growth, c.technology, now,
		); err != nil {
			return fmt.Errorf("seed companies: %w", err)
		}
	}

	contacts := []struct {
		id, first, last, email, title, industry, companyID string
		emailOpens, meetings                               int
		responseRate                                       float64
	}{
		{"a0a80001-0000-4000-8000-000000000001", "Maria", "Santos", "maria@globex.test", "VP of Sales", "Technology", companies[0].id, 8, 2, 0.7},
		{"a0a80001-0000-4000-8000-000000000002", "Tom", "Pek", "tom@initech.test", "Engineer", "Finance", companies[1].id, 1, 0, 0.1},
		{"a0a80001-0000-4000-8000-000000000003", "Ines", "Duarte", "ines@globex.test", "Director of Ops", "Technology", companies[0].id, 5, 1, 0.4},
	}
	for _, c := range contacts {
		if _, err := database.Exec(
			`INSERT INTO contacts (id, first_name, last_name, email, title, industry, company_id,
				email_opens, meetings_scheduled, response_rate, last_activity_at, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.id, c.first, c.last, c.email, c.title, c.industry, c.companyID,
			c.emailOpens, c.meetings, c.responseRate, now, now,
		); err != nil {
			return fmt.Errorf("seed contacts: %w", err)
		}
	}

	deals := []struct {
		id, title, stage, status, contactID, companyID string
		value                                          float64
		probability                                    int
	}{
		{"d0a80001-0000-4000-8000-000000000001", "Globex platform renewal", "lead", "active", contacts[0].id, companies[0].id, 48000, 0},
		{"d0a80001-0000-4000-8000-000000000002", "Initech starter plan", "qualified", "active", contacts[1].id, companies[1].id, 6000, 25},
		{"d0a80001-0000-4000-8000-000000000003", "Globex expansion seats", "proposal", "active", contacts[2].id, companies[0].id, 22000, 50},
		{"d0a80001-0000-4000-8000-000000000004", "Initech analytics add-on", "negotiation", "on-hold", contacts[1].id, companies[1].id, 9500, 75},
		{"d0a80001-0000-4000-8000-000000000005", "Globex pilot", "closed-won", "won", contacts[0].id, companies[0].id, 12000, 100},
	}
	for _, d := range deals {
		var probability sql.NullInt64
		if d.probability > 0 {
			probability = sql.NullInt64{Int64: int64(d.probability), Valid: true}
		}
		if _, err := database.Exec(
			`INSERT INTO deals (id, pipeline_id, title, value, currency, stage, status, probability, contact_id, company_id, created_at)
			 VALUES (?, 'PIPE-001', ?, ?, 'USD', ?, ?, ?, ?, ?, ?)`,
			d.id, d.title, d.value, d.stage, d.status, probability, d.contactID, d.companyID, now,
		); err != nil {
			return fmt.Errorf("seed deals: %w", err)
		}
	}

	return nil
}
