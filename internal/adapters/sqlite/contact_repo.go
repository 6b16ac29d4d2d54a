package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/dealboard/internal/ports/secondary"
)

// ContactRepository implements secondary.ContactRepository with SQLite.
type ContactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new SQLite contact repository.
func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

const contactSelectCols = "id, first_name, last_name, email, phone, title, industry, location, company_id, email_opens, link_clicks, page_views, time_on_site, response_rate, meetings_scheduled, emails_sent, last_activity_at, created_at, updated_at"

func scanContact(scanner interface {
	Scan(dest ...any) error
}) (*secondary.ContactRecord, error) {
	var (
		lastName     sql.NullString
		email        sql.NullString
		phone        sql.NullString
		title        sql.NullString
		industry     sql.NullString
		location     sql.NullString
		companyID    sql.NullString
		lastActivity sql.NullTime
		createdAt    time.Time
		updatedAt    time.Time
	)

	record := &secondary.ContactRecord{}
	err := scanner.Scan(
		&record.ID, &record.FirstName, &lastName, &email, &phone, &title, &industry, &location,
		&companyID, &record.EmailOpens, &record.LinkClicks, &record.PageViews,
		&record.TimeOnSiteSeconds, &record.ResponseRate, &record.MeetingsScheduled,
		&record.EmailsSent, &lastActivity, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.LastName = lastName.String
	record.Email = email.String
	record.Phone = phone.String
	record.Title = title.String
	record.Industry = industry.String
	record.Location = location.String
	record.CompanyID = companyID.String
	if lastActivity.Valid {
		record.LastActivityAt = lastActivity.Time.Format(time.RFC3339)
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// Create persists a new contact.
func (r *ContactRepository) Create(ctx context.Context, record *secondary.ContactRecord) error {
	var lastName, email, phone, title, industry, location, companyID, lastActivity sql.NullString

	if record.LastName != "" {
		lastName = sql.NullString{String: record.LastName, Valid: true}
	}
	if record.Email != "" {
		email = sql.NullString{String: record.Email, Valid: true}
	}
	if record.Phone != "" {
		phone = sql.NullString{String: record.Phone, Valid: true}
	}
	if record.Title != "" {
		title = sql.NullString{String: record.Title, Valid: true}
	}
	if record.Industry != "" {
		industry = sql.NullString{String: record.Industry, Valid: true}
	}
	if record.Location != "" {
		location = sql.NullString{String: record.Location, Valid: true}
	}
	if record.CompanyID != "" {
		companyID = sql.NullString{String: record.CompanyID, Valid: true}
	}
	if record.LastActivityAt != "" {
		lastActivity = sql.NullString{String: record.LastActivityAt, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO contacts (id, first_name, last_name, email, phone, title, industry, location, company_id,
			email_opens, link_clicks, page_views, time_on_site, response_rate, meetings_scheduled, emails_sent, last_activity_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.FirstName, lastName, email, phone, title, industry, location, companyID,
		record.EmailOpens, record.LinkClicks, record.PageViews, record.TimeOnSiteSeconds,
		record.ResponseRate, record.MeetingsScheduled, record.EmailsSent, lastActivity,
	)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	return nil
}

// GetByID retrieves a contact by its ID.
func (r *ContactRepository) GetByID(ctx context.Context, id string) (*secondary.ContactRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+contactSelectCols+" FROM contacts WHERE id = ?",
		id,
	)

	record, err := scanContact(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("contact %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return record, nil
}

// List retrieves all contacts ordered by creation time.
func (r *ContactRepository) List(ctx context.Context) ([]*secondary.ContactRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+contactSelectCols+" FROM contacts ORDER BY created_at ASC, id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*secondary.ContactRecord
	for rows.Next() {
		record, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, record)
	}

	return contacts, nil
}

// Ensure ContactRepository implements the interface
var _ secondary.ContactRepository = (*ContactRepository)(nil)
