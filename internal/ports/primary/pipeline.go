package primary

import "context"

// PipelineService defines the primary port for pipeline operations.
type PipelineService interface {
	// GetDefaultPipeline returns the tenant's default pipeline with its
	// stages, or nil when no pipeline exists yet.
	GetDefaultPipeline(ctx context.Context) (*Pipeline, error)

	// EnsureDefaultPipeline returns the default pipeline, bootstrapping it
	// from the six-stage template when the tenant has none.
	EnsureDefaultPipeline(ctx context.Context) (*Pipeline, error)

	// GetPipeline retrieves a pipeline by ID with its stages.
	GetPipeline(ctx context.Context, pipelineID string) (*Pipeline, error)
}

// Pipeline is an ordered collection of stages plus metadata.
type Pipeline struct {
	ID          string
	Name        string
	Description string
	IsDefault   bool
	Stages      []Stage
}

// Stage is one step of a pipeline as exposed to consumers.
type Stage struct {
	ID          string
	Name        string
	Probability int
	Color       string
}
