// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/example/dealboard/internal/core/deal"
	"github.com/example/dealboard/internal/ports/secondary"
)

// DealRepository implements secondary.DealRepository with SQLite.
type DealRepository struct {
	db *sql.DB
}

// NewDealRepository creates a new SQLite deal repository.
func NewDealRepository(db *sql.DB) *DealRepository {
	return &DealRepository{db: db}
}

const dealSelectCols = "id, pipeline_id, title, description, value, currency, stage, status, probability, close_date, contact_id, company_id, owner_id, tags, created_at, updated_at"

// scanDeal scans a deal row into a DealRecord.
func scanDeal(scanner interface {
	Scan(dest ...any) error
}) (*secondary.DealRecord, error) {
	var (
		desc        sql.NullString
		value       sql.NullFloat64
		probability sql.NullInt64
		closeDate   sql.NullString
		contactID   sql.NullString
		companyID   sql.NullString
		ownerID     sql.NullString
		tags        sql.NullString
		createdAt   time.Time
		updatedAt   time.Time
	)

	record := &secondary.DealRecord{}
	err := scanner.Scan(
		&record.ID, &record.PipelineID, &record.Title, &desc, &value, &record.Currency,
		&record.Stage, &record.Status, &probability, &closeDate,
		&contactID, &companyID, &ownerID, &tags, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Description = desc.String
	record.Value = value.Float64
	record.Probability = int(probability.Int64)
	record.CloseDate = closeDate.String
	record.ContactID = contactID.String
	record.CompanyID = companyID.String
	record.OwnerID = ownerID.String
	record.Tags = splitTags(tags.String)
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// Create persists a new deal.
func (r *DealRepository) Create(ctx context.Context, record *secondary.DealRecord) error {
	var desc, closeDate, contactID, companyID, ownerID, tags sql.NullString
	var value sql.NullFloat64
	var probability sql.NullInt64

	if record.Description != "" {
		desc = sql.NullString{String: record.Description, Valid: true}
	}
	if record.Value != 0 {
		value = sql.NullFloat64{Float64: record.Value, Valid: true}
	}
	if record.Probability != 0 {
		probability = sql.NullInt64{Int64: int64(record.Probability), Valid: true}
	}
	if record.CloseDate != "" {
		closeDate = sql.NullString{String: record.CloseDate, Valid: true}
	}
	if record.ContactID != "" {
		contactID = sql.NullString{String: record.ContactID, Valid: true}
	}
	if record.CompanyID != "" {
		companyID = sql.NullString{String: record.CompanyID, Valid: true}
	}
	if record.OwnerID != "" {
		ownerID = sql.NullString{String: record.OwnerID, Valid: true}
	}
	if len(record.Tags) > 0 {
		tags = sql.NullString{String: joinTags(record.Tags), Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO deals (id, pipeline_id, title, description, value, currency, stage, status, probability, close_date, contact_id, company_id, owner_id, tags)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.PipelineID, record.Title, desc, value, record.Currency,
		record.Stage, record.Status, probability, closeDate, contactID, companyID, ownerID, tags,
	)
	if err != nil {
		return fmt.Errorf("failed to create deal: %w", err)
	}

	return nil
}

// GetByID retrieves a deal by its ID.
func (r *DealRepository) GetByID(ctx context.Context, id string) (*secondary.DealRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+dealSelectCols+" FROM deals WHERE id = ?",
		id,
	)

	record, err := scanDeal(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("deal %s: %w", id, deal.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}

	return record, nil
}

// List retrieves deals matching the given filters, newest first.
func (r *DealRepository) List(ctx context.Context, filters secondary.DealFilters) ([]*secondary.DealRecord, error) {
	query := "SELECT " + dealSelectCols + " FROM deals WHERE 1=1"
	args := []any{}

	if filters.PipelineID != "" {
		query += " AND pipeline_id = ?"
		args = append(args, filters.PipelineID)
	}

	if filters.Stage != "" {
		query += " AND stage = ?"
		args = append(args, filters.Stage)
	}

	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}

	query += " ORDER BY created_at DESC, id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}
	defer rows.Close()

	var deals []*secondary.DealRecord
	for rows.Next() {
		record, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deal: %w", err)
		}
		deals = append(deals, record)
	}

	return deals, nil
}

// Update applies partial field edits to an existing deal.
func (r *DealRepository) Update(ctx context.Context, record *secondary.DealRecord) error {
	query := "UPDATE deals SET updated_at = CURRENT_TIMESTAMP"
	args := []any{}

	if record.Title != "" {
		query += ", title = ?"
		args = append(args, record.Title)
	}

	if record.Description != "" {
		query += ", description = ?"
		args = append(args, record.Description)
	}

	if record.Value != 0 {
		query += ", value = ?"
		args = append(args, record.Value)
	}

	if record.Status != "" {
		query += ", status = ?"
		args = append(args, record.Status)
	}

	if record.Probability != 0 {
		query += ", probability = ?"
		args = append(args, record.Probability)
	}

	if record.CloseDate != "" {
		query += ", close_date = ?"
		args = append(args, record.CloseDate)
	}

	if len(record.Tags) > 0 {
		query += ", tags = ?"
		args = append(args, joinTags(record.Tags))
	}

	query += " WHERE id = ?"
	args = append(args, record.ID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update deal: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("deal %s: %w", record.ID, deal.ErrNotFound)
	}

	return nil
}

// UpdateStage persists a stage transition. The stage's default probability
// is written in the same statement so a torn update cannot leave the deal
// with the old stage's probability.
func (r *DealRepository) UpdateStage(ctx context.Context, id, stageID string, probability int) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE deals SET stage = ?, probability = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		stageID, probability, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update deal stage: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("deal %s: %w", id, deal.ErrNotFound)
	}

	return nil
}

// Delete removes a deal from persistence.
func (r *DealRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM deals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete deal: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("deal %s: %w", id, deal.ErrNotFound)
	}

	return nil
}

// joinTags flattens a tag set into the stored TEXT column.
func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// splitTags parses the stored TEXT column back into a tag set.
func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// Ensure DealRepository implements the interface
var _ secondary.DealRepository = (*DealRepository)(nil)
