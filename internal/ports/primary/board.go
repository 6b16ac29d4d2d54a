package primary

import (
	"context"

	"github.com/example/dealboard/internal/core/board"
)

// BoardService defines the primary port for the pipeline board view: ordered
// columns of deals plus derived statistics.
type BoardService interface {
	// GetBoard assembles the board for a pipeline. An empty pipelineID means
	// the tenant's default pipeline.
	GetBoard(ctx context.Context, pipelineID string) (*Board, error)
}

// Board is the assembled pipeline board.
type Board struct {
	Pipeline *Pipeline
	Columns  []BoardColumn

	// Unassigned holds deals whose stage resolves to no column. Nil when
	// every deal resolved.
	Unassigned *BoardColumn

	Stats board.DealStats
}

// BoardColumn is one stage column with its deals and per-stage statistics.
type BoardColumn struct {
	Stage Stage
	Deals []*Deal
	Stats board.StageStats
}
