package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/example/dealboard/internal/core/stage"
	"github.com/example/dealboard/internal/ports/primary"
	"github.com/example/dealboard/internal/ports/secondary"
)

// PipelineServiceImpl implements the PipelineService interface.
type PipelineServiceImpl struct {
	pipelineRepo secondary.PipelineRepository
}

// NewPipelineService creates a new PipelineService with injected dependencies.
func NewPipelineService(pipelineRepo secondary.PipelineRepository) *PipelineServiceImpl {
	return &PipelineServiceImpl{pipelineRepo: pipelineRepo}
}

// GetDefaultPipeline returns the tenant's default pipeline, or nil when no
// pipeline exists yet.
func (s *PipelineServiceImpl) GetDefaultPipeline(ctx context.Context) (*primary.Pipeline, error) {
	record, err := s.pipelineRepo.GetDefault(ctx)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return s.assemble(ctx, record)
}

// EnsureDefaultPipeline returns the default pipeline, bootstrapping it from
// the six-stage template when the tenant has none.
func (s *PipelineServiceImpl) EnsureDefaultPipeline(ctx context.Context) (*primary.Pipeline, error) {
	existing, err := s.GetDefaultPipeline(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	nextID, err := s.pipelineRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate pipeline ID: %w", err)
	}

	record := &secondary.PipelineRecord{
		ID:        nextID,
		Name:      "Sales Pipeline",
		IsDefault: true,
		IsActive:  true,
	}
	stages := make([]secondary.StageRecord, 0, len(stage.DefaultStages()))
	for i, st := range stage.DefaultStages() {
		stages = append(stages, secondary.StageRecord{
			PipelineID:  nextID,
			StageID:     st.ID,
			Name:        st.Name,
			Probability: st.Probability,
			Color:       st.Color,
			Position:    i,
		})
	}

	if err := s.pipelineRepo.Create(ctx, record, stages); err != nil {
		return nil, fmt.Errorf("failed to bootstrap default pipeline: %w", err)
	}

	log.WithFields(log.Fields{
		"component": "pipeline",
		"pipeline":  nextID,
	}).Info("default pipeline created")

	return s.assemble(ctx, record)
}

// GetPipeline retrieves a pipeline by ID with its stages.
func (s *PipelineServiceImpl) GetPipeline(ctx context.Context, pipelineID string) (*primary.Pipeline, error) {
	record, err := s.pipelineRepo.GetByID(ctx, pipelineID)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, record)
}

func (s *PipelineServiceImpl) assemble(ctx context.Context, record *secondary.PipelineRecord) (*primary.Pipeline, error) {
	stageRecords, err := s.pipelineRepo.ListStages(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stages for %s: %w", record.ID, err)
	}

	pipeline := &primary.Pipeline{
		ID:          record.ID,
		Name:        record.Name,
		Description: record.Description,
		IsDefault:   record.IsDefault,
		Stages:      make([]primary.Stage, len(stageRecords)),
	}
	for i, sr := range stageRecords {
		pipeline.Stages[i] = primary.Stage{
			ID:          sr.StageID,
			Name:        sr.Name,
			Probability: sr.Probability,
			Color:       sr.Color,
		}
	}

	return pipeline, nil
}

// stageRegistryFor loads a pipeline's stages into a registry for guard
// evaluation and board assembly.
func stageRegistryFor(ctx context.Context, repo secondary.PipelineRepository, pipelineID string) (*stage.Registry, error) {
	stageRecords, err := repo.ListStages(ctx, pipelineID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stages for %s: %w", pipelineID, err)
	}

	stages := make([]stage.Stage, len(stageRecords))
	for i, sr := range stageRecords {
		stages[i] = stage.Stage{
			ID:          sr.StageID,
			Name:        sr.Name,
			Probability: sr.Probability,
			Color:       sr.Color,
		}
	}
	return stage.NewRegistry(stages), nil
}

// Ensure PipelineServiceImpl implements the interface
var _ primary.PipelineService = (*PipelineServiceImpl)(nil)
