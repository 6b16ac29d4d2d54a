package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/dealboard/internal/ports/secondary"
)

// PipelineRepository implements secondary.PipelineRepository with SQLite.
type PipelineRepository struct {
	db *sql.DB
}

// NewPipelineRepository creates a new SQLite pipeline repository.
func NewPipelineRepository(db *sql.DB) *PipelineRepository {
	return &PipelineRepository{db: db}
}

const pipelineSelectCols = "id, name, description, is_default, is_active, created_at, updated_at"

func scanPipeline(scanner interface {
	Scan(dest ...any) error
}) (*secondary.PipelineRecord, error) {
	var (
		desc      sql.NullString
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.PipelineRecord{}
	err := scanner.Scan(
		&record.ID, &record.Name, &desc, &record.IsDefault, &record.IsActive,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Description = desc.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// Create persists a pipeline together with its ordered stages in one
// transaction.
func (r *PipelineRepository) Create(ctx context.Context, pipeline *secondary.PipelineRecord, stages []secondary.StageRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var desc sql.NullString
	if pipeline.Description != "" {
		desc = sql.NullString{String: pipeline.Description, Valid: true}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO pipelines (id, name, description, is_default, is_active) VALUES (?, ?, ?, ?, ?)",
		pipeline.ID, pipeline.Name, desc, pipeline.IsDefault, pipeline.IsActive,
	); err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	for i, s := range stages {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO pipeline_stages (pipeline_id, stage_id, name, probability, color, position) VALUES (?, ?, ?, ?, ?, ?)",
			pipeline.ID, s.StageID, s.Name, s.Probability, s.Color, i,
		); err != nil {
			return fmt.Errorf("failed to create stage %s: %w", s.StageID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit pipeline: %w", err)
	}

	return nil
}

// GetByID retrieves a pipeline by its ID.
func (r *PipelineRepository) GetByID(ctx context.Context, id string) (*secondary.PipelineRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+pipelineSelectCols+" FROM pipelines WHERE id = ?",
		id,
	)

	record, err := scanPipeline(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("pipeline %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pipeline: %w", err)
	}

	return record, nil
}

// GetDefault retrieves the default pipeline, or nil when no pipeline exists.
func (r *PipelineRepository) GetDefault(ctx context.Context) (*secondary.PipelineRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+pipelineSelectCols+" FROM pipelines WHERE is_default = 1 AND is_active = 1",
	)

	record, err := scanPipeline(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get default pipeline: %w", err)
	}

	return record, nil
}

// ListStages retrieves a pipeline's stages in board order.
func (r *PipelineRepository) ListStages(ctx context.Context, pipelineID string) ([]secondary.StageRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT pipeline_id, stage_id, name, probability, color, position FROM pipeline_stages WHERE pipeline_id = ? ORDER BY position ASC",
		pipelineID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}
	defer rows.Close()

	var stages []secondary.StageRecord
	for rows.Next() {
		var s secondary.StageRecord
		if err := rows.Scan(&s.PipelineID, &s.StageID, &s.Name, &s.Probability, &s.Color, &s.Position); err != nil {
			return nil, fmt.Errorf("failed to scan stage: %w", err)
		}
		stages = append(stages, s)
	}

	return stages, nil
}

// GetNextID returns the next available pipeline ID.
func (r *PipelineRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 6) AS INTEGER)), 0) FROM pipelines",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next pipeline ID: %w", err)
	}

	return fmt.Sprintf("PIPE-%03d", maxID+1), nil
}

// Ensure PipelineRepository implements the interface
var _ secondary.PipelineRepository = (*PipelineRepository)(nil)
