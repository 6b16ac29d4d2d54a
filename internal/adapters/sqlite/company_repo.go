package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/dealboard/internal/ports/secondary"
)

// CompanyRepository implements secondary.CompanyRepository with SQLite.
type CompanyRepository struct {
	db *sql.DB
}

// NewCompanyRepository creates a new SQLite company repository.
func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

const companySelectCols = "id, name, industry, size, revenue, growth, technology, created_at, updated_at"

func scanCompany(scanner interface {
	Scan(dest ...any) error
}) (*secondary.CompanyRecord, error) {
	var (
		industry   sql.NullString
		technology sql.NullString
		createdAt  time.Time
		updatedAt  time.Time
	)

	record := &secondary.CompanyRecord{}
	err := scanner.Scan(
		&record.ID, &record.Name, &industry, &record.Size, &record.Revenue, &record.Growth,
		&technology, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Industry = industry.String
	record.Technology = splitTags(technology.String)
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// Create persists a new company.
func (r *CompanyRepository) Create(ctx context.Context, record *secondary.CompanyRecord) error {
	var industry, technology sql.NullString

	if record.Industry != "" {
		industry = sql.NullString{String: record.Industry, Valid: true}
	}
	if len(record.Technology) > 0 {
		technology = sql.NullString{String: joinTags(record.Technology), Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO companies (id, name, industry, size, revenue, growth, technology) VALUES (?, ?, ?, ?, ?, ?, ?)",
		record.ID, record.Name, industry, record.Size, record.Revenue, record.Growth, technology,
	)
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}

	return nil
}

// GetByID retrieves a company by its ID.
func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*secondary.CompanyRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+companySelectCols+" FROM companies WHERE id = ?",
		id,
	)

	record, err := scanCompany(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("company %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return record, nil
}

// List retrieves all companies ordered by name.
func (r *CompanyRepository) List(ctx context.Context) ([]*secondary.CompanyRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+companySelectCols+" FROM companies ORDER BY name ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []*secondary.CompanyRecord
	for rows.Next() {
		record, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, record)
	}

	return companies, nil
}

// Ensure CompanyRepository implements the interface
var _ secondary.CompanyRepository = (*CompanyRepository)(nil)
