// Package primary defines the primary ports (driving adapters) for the
// application: the service interfaces the CLI and other consumers call, and
// the request/response types they exchange.
package primary

import "context"

// DealService defines the primary port for deal operations, including the
// stage-transition controller behind the board's drag gesture.
type DealService interface {
	// CreateDeal creates a new deal, defaulting pipeline, stage, currency,
	// and status when unspecified.
	CreateDeal(ctx context.Context, req CreateDealRequest) (*Deal, error)

	// GetDeal retrieves a deal by ID with resolved relations.
	GetDeal(ctx context.Context, dealID string) (*Deal, error)

	// FetchDeals retrieves all deals of a pipeline with resolved relations
	// and primes the local deal store with them.
	FetchDeals(ctx context.Context, pipelineID string) ([]*Deal, error)

	// MoveDeal transitions a deal to the target stage. Moving a deal onto
	// its own stage is a no-op, not an error. On success the returned record
	// is the authoritative stored one.
	MoveDeal(ctx context.Context, dealID, targetStageID string) (*Deal, error)

	// UpdateDeal applies field edits to a deal.
	UpdateDeal(ctx context.Context, req UpdateDealRequest) (*Deal, error)

	// DeleteDeal removes a deal.
	DeleteDeal(ctx context.Context, dealID string) error
}

// Deal is a sales opportunity as exposed to consumers. Contact and Company
// are resolved relations, nil when the deal has none.
type Deal struct {
	ID          string
	PipelineID  string
	Title       string
	Description string
	Value       float64
	Currency    string
	Stage       string
	Status      string
	Probability int
	CloseDate   string
	ContactID   string
	CompanyID   string
	OwnerID     string
	Tags        []string
	CreatedAt   string
	UpdatedAt   string

	Contact *Contact
	Company *Company
}

// CreateDealRequest carries the fields for deal creation. Zero-valued
// optional fields fall back to defaults: pipeline to the tenant default,
// stage to the pipeline's first stage, currency to the configured default,
// status to active.
type CreateDealRequest struct {
	PipelineID  string
	Title       string
	Description string
	Value       float64
	HasValue    bool
	Currency    string
	Stage       string
	Status      string
	CloseDate   string
	ContactID   string
	CompanyID   string
	OwnerID     string
	Tags        []string
}

// UpdateDealRequest carries partial field edits. Empty strings leave the
// stored value untouched; HasValue gates the Value edit.
type UpdateDealRequest struct {
	DealID      string
	Title       string
	Description string
	Value       float64
	HasValue    bool
	Status      string
	Probability int
	HasProb     bool
	CloseDate   string
	Tags        []string
	HasTags     bool
}

// DealFilters contains filter options for listing deals.
type DealFilters struct {
	PipelineID string
	Stage      string
	Status     string
}
