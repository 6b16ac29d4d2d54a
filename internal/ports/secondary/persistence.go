// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// the persistence backend.
package secondary

import "context"

// DealRepository defines the secondary port for deal persistence.
type DealRepository interface {
	// Create persists a new deal.
	Create(ctx context.Context, deal *DealRecord) error

	// GetByID retrieves a deal by its ID.
	GetByID(ctx context.Context, id string) (*DealRecord, error)

	// List retrieves deals matching the given filters.
	List(ctx context.Context, filters DealFilters) ([]*DealRecord, error)

	// Update applies partial field edits to an existing deal.
	Update(ctx context.Context, deal *DealRecord) error

	// UpdateStage persists a stage transition, assigning the stage's default
	// probability and bumping updated_at in the same statement.
	UpdateStage(ctx context.Context, id, stageID string, probability int) error

	// Delete removes a deal from persistence.
	Delete(ctx context.Context, id string) error
}

// DealRecord represents a deal as stored in persistence. Zero Value and
// Probability stand for "not set"; aggregation treats them as 0 either way.
type DealRecord struct {
	ID          string
	PipelineID  string
	Title       string
	Description string
	Value       float64
	Currency    string
	Stage       string
	Status      string
	Probability int
	CloseDate   string // YYYY-MM-DD, empty when unset
	ContactID   string
	CompanyID   string
	OwnerID     string
	Tags        []string
	CreatedAt   string
	UpdatedAt   string
}

// DealFilters contains filter options for querying deals.
type DealFilters struct {
	PipelineID string
	Stage      string
	Status     string
}

// PipelineRepository defines the secondary port for pipeline persistence.
type PipelineRepository interface {
	// Create persists a pipeline together with its ordered stages.
	Create(ctx context.Context, pipeline *PipelineRecord, stages []StageRecord) error

	// GetByID retrieves a pipeline by its ID.
	GetByID(ctx context.Context, id string) (*PipelineRecord, error)

	// GetDefault retrieves the tenant's default pipeline, or nil when no
	// pipeline exists yet.
	GetDefault(ctx context.Context) (*PipelineRecord, error)

	// ListStages retrieves a pipeline's stages in board order.
	ListStages(ctx context.Context, pipelineID string) ([]StageRecord, error)

	// GetNextID returns the next available pipeline ID.
	GetNextID(ctx context.Context) (string, error)
}

// PipelineRecord represents a pipeline as stored in persistence.
type PipelineRecord struct {
	ID          string
	Name        string
	Description string
	IsDefault   bool
	IsActive    bool
	CreatedAt   string
	UpdatedAt   string
}

// StageRecord represents one pipeline stage as stored in persistence.
// StageID is the token deals reference; Position fixes board order.
type StageRecord struct {
	PipelineID  string
	StageID     string
	Name        string
	Probability int
	Color       string
	Position    int
}

// ContactRepository defines the secondary port for contact persistence.
type ContactRepository interface {
	// Create persists a new contact.
	Create(ctx context.Context, contact *ContactRecord) error

	// GetByID retrieves a contact by its ID.
	GetByID(ctx context.Context, id string) (*ContactRecord, error)

	// List retrieves all contacts ordered by creation time.
	List(ctx context.Context) ([]*ContactRecord, error)
}

// ContactRecord represents a contact as stored in persistence. The
// engagement counters feed the lead scorer.
type ContactRecord struct {
	ID                string
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	Title             string
	Industry          string
	Location          string
	CompanyID         string
	EmailOpens        int
	LinkClicks        int
	PageViews         int
	TimeOnSiteSeconds float64
	ResponseRate      float64
	MeetingsScheduled int
	EmailsSent        int
	LastActivityAt    string // RFC3339, empty when never active
	CreatedAt         string
	UpdatedAt         string
}

// CompanyRepository defines the secondary port for company persistence.
type CompanyRepository interface {
	// Create persists a new company.
	Create(ctx context.Context, company *CompanyRecord) error

	// GetByID retrieves a company by its ID.
	GetByID(ctx context.Context, id string) (*CompanyRecord, error)

	// List retrieves all companies ordered by name.
	List(ctx context.Context) ([]*CompanyRecord, error)
}

// CompanyRecord represents a company as stored in persistence.
type CompanyRecord struct {
	ID         string
	Name       string
	Industry   string
	Size       int
	Revenue    float64
	Growth     float64
	Technology []string
	CreatedAt  string
	UpdatedAt  string
}
