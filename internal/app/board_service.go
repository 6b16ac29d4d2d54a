package app

import (
	"context"
	"fmt"

	"github.com/example/dealboard/internal/core/board"
	"github.com/example/dealboard/internal/ports/primary"
	"github.com/example/dealboard/internal/ports/secondary"
)

// BoardServiceImpl implements the BoardService interface. It composes the
// deal service's fetch path with the pure aggregation in core/board.
type BoardServiceImpl struct {
	dealService     primary.DealService
	pipelineService primary.PipelineService
	pipelineRepo    secondary.PipelineRepository
}

// NewBoardService creates a new BoardService with injected dependencies.
func NewBoardService(
	dealService primary.DealService,
	pipelineService primary.PipelineService,
	pipelineRepo secondary.PipelineRepository,
) *BoardServiceImpl {
	return &BoardServiceImpl{
		dealService:     dealService,
		pipelineService: pipelineService,
		pipelineRepo:    pipelineRepo,
	}
}

// GetBoard assembles the board for a pipeline. An empty pipelineID means the
// tenant's default pipeline.
func (s *BoardServiceImpl) GetBoard(ctx context.Context, pipelineID string) (*primary.Board, error) {
	var pipeline *primary.Pipeline
	var err error
	if pipelineID == "" {
		pipeline, err = s.pipelineService.GetDefaultPipeline(ctx)
		if err != nil {
			return nil, err
		}
		if pipeline == nil {
			return nil, fmt.Errorf("no default pipeline exists, run init first")
		}
	} else {
		pipeline, err = s.pipelineService.GetPipeline(ctx, pipelineID)
		if err != nil {
			return nil, err
		}
	}

	deals, err := s.dealService.FetchDeals(ctx, pipeline.ID)
	if err != nil {
		return nil, err
	}

	registry, err := stageRegistryFor(ctx, s.pipelineRepo, pipeline.ID)
	if err != nil {
		return nil, err
	}

	facts := make([]board.Deal, len(deals))
	for i, d := range deals {
		facts[i] = board.Deal{
			ID:          d.ID,
			StageID:     d.Stage,
			Status:      d.Status,
			Value:       d.Value,
			Probability: d.Probability,
		}
	}
	stageStats := board.Aggregate(facts, registry)

	byStage := make(map[string][]*primary.Deal)
	for _, d := range deals {
		key := d.Stage
		if !registry.Contains(key) {
			key = board.UnassignedStageID
		}
		byStage[key] = append(byStage[key], d)
	}

	result := &primary.Board{
		Pipeline: pipeline,
		Columns:  make([]primary.BoardColumn, len(pipeline.Stages)),
		Stats:    board.ComputeDealStats(facts),
	}
	for i, st := range pipeline.Stages {
		result.Columns[i] = primary.BoardColumn{
			Stage: st,
			Deals: byStage[st.ID],
			Stats: stageStats[st.ID],
		}
	}

	if orphaned := byStage[board.UnassignedStageID]; len(orphaned) > 0 {
		result.Unassigned = &primary.BoardColumn{
			Stage: primary.Stage{ID: board.UnassignedStageID, Name: "Unassigned"},
			Deals: orphaned,
			Stats: stageStats[board.UnassignedStageID],
		}
	}

	return result, nil
}

// Ensure BoardServiceImpl implements the interface
var _ primary.BoardService = (*BoardServiceImpl)(nil)
