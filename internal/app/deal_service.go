package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	coredeal "github.com/example/dealboard/internal/core/deal"
	"github.com/example/dealboard/internal/ports/primary"
	"github.com/example/dealboard/internal/ports/secondary"
)

// DealServiceImpl implements the DealService interface. It owns the local
// deal store and publishes a change event after every persisted write.
type DealServiceImpl struct {
	dealRepo        secondary.DealRepository
	pipelineRepo    secondary.PipelineRepository
	contactRepo     secondary.ContactRepository
	companyRepo     secondary.CompanyRepository
	publisher       secondary.DealEventPublisher
	store           *DealStore
	defaultCurrency string
}

// NewDealService creates a new DealService with injected dependencies.
func NewDealService(
	dealRepo secondary.DealRepository,
	pipelineRepo secondary.PipelineRepository,
	contactRepo secondary.ContactRepository,
	companyRepo secondary.CompanyRepository,
	publisher secondary.DealEventPublisher,
	store *DealStore,
	defaultCurrency string,
) *DealServiceImpl {
	return &DealServiceImpl{
		dealRepo:        dealRepo,
		pipelineRepo:    pipelineRepo,
		contactRepo:     contactRepo,
		companyRepo:     companyRepo,
		publisher:       publisher,
		store:           store,
		defaultCurrency: defaultCurrency,
	}
}

// CreateDeal creates a new deal, defaulting pipeline, stage, currency, and
// status when unspecified.
func (s *DealServiceImpl) CreateDeal(ctx context.Context, req primary.CreateDealRequest) (*primary.Deal, error) {
	pipelineID := req.PipelineID
	if pipelineID == "" {
		defaultPipeline, err := s.pipelineRepo.GetDefault(ctx)
		if err != nil {
			return nil, err
		}
		if defaultPipeline == nil {
			return nil, fmt.Errorf("no default pipeline exists: %w", coredeal.ErrInvalid)
		}
		pipelineID = defaultPipeline.ID
	}

	registry, err := stageRegistryFor(ctx, s.pipelineRepo, pipelineID)
	if err != nil {
		return nil, err
	}

	guard := coredeal.CanCreateDeal(coredeal.CreateDealContext{
		Title:      req.Title,
		Value:      req.Value,
		HasValue:   req.HasValue,
		StageID:    req.Stage,
		StageKnown: registry.Contains(req.Stage),
	})
	if !guard.Allowed {
		return nil, guard.Error()
	}

	stageID := req.Stage
	if stageID == "" {
		first, ok := registry.First()
		if !ok {
			return nil, fmt.Errorf("pipeline %s has no stages: %w", pipelineID, coredeal.ErrInvalid)
		}
		stageID = first.ID
	}

	status := req.Status
	if status == "" {
		status = coredeal.StatusActive
	}
	if !coredeal.ValidStatus(status) {
		return nil, fmt.Errorf("invalid status %q: %w", status, coredeal.ErrInvalid)
	}

	currency := req.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}

	record := &secondary.DealRecord{
		ID:          uuid.NewString(),
		PipelineID:  pipelineID,
		Title:       req.Title,
		Description: req.Description,
		Value:       req.Value,
		Currency:    currency,
		Stage:       stageID,
		Status:      status,
		CloseDate:   req.CloseDate,
		ContactID:   req.ContactID,
		CompanyID:   req.CompanyID,
		OwnerID:     req.OwnerID,
		Tags:        req.Tags,
	}

	if err := s.dealRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}

	created, err := s.dealRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created deal: %w", err)
	}

	s.store.Replace(created)
	s.publisher.Publish(secondary.DealEvent{
		Type:       secondary.DealEventInsert,
		PipelineID: created.PipelineID,
		New:        created,
	})

	log.WithFields(log.Fields{
		"component": "deal",
		"deal":      created.ID,
		"stage":     created.Stage,
	}).Info("deal created")

	return s.recordToDeal(ctx, created), nil
}

// GetDeal retrieves a deal by ID with resolved relations.
func (s *DealServiceImpl) GetDeal(ctx context.Context, dealID string) (*primary.Deal, error) {
	record, err := s.dealRepo.GetByID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	return s.recordToDeal(ctx, record), nil
}

// FetchDeals retrieves all deals of a pipeline with resolved relations and
// primes the local deal store with them.
func (s *DealServiceImpl) FetchDeals(ctx context.Context, pipelineID string) ([]*primary.Deal, error) {
	if pipelineID == "" {
		defaultPipeline, err := s.pipelineRepo.GetDefault(ctx)
		if err != nil {
			return nil, err
		}
		if defaultPipeline == nil {
			return nil, nil
		}
		pipelineID = defaultPipeline.ID
	}

	records, err := s.dealRepo.List(ctx, secondary.DealFilters{PipelineID: pipelineID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch deals: %w", err)
	}

	s.store.Load(records)

	deals := make([]*primary.Deal, len(records))
	for i, r := range records {
		deals[i] = s.recordToDeal(ctx, r)
	}
	return deals, nil
}

// MoveDeal transitions a deal to the target stage. The flow is
// validate-then-commit: guards run against the locally known record, the
// stage write goes to persistence in a single attempt, and on success the
// store is reconciled with the refetched stored record. On failure the store
// keeps its previous state.
func (s *DealServiceImpl) MoveDeal(ctx context.Context, dealID, targetStageID string) (*primary.Deal, error) {
	record := s.store.Get(dealID)
	if record == nil {
		fetched, err := s.dealRepo.GetByID(ctx, dealID)
		if err != nil && !errors.Is(err, coredeal.ErrNotFound) {
			return nil, err
		}
		record = fetched
	}

	moveCtx := coredeal.MoveDealContext{
		DealID:        dealID,
		DealExists:    record != nil,
		TargetStageID: targetStageID,
	}
	if record != nil {
		moveCtx.CurrentStage = record.Stage

		registry, err := stageRegistryFor(ctx, s.pipelineRepo, record.PipelineID)
		if err != nil {
			return nil, err
		}
		moveCtx.StageKnown = registry.Contains(targetStageID)

		outcome, guard := coredeal.CanMoveDeal(moveCtx)
		if outcome == coredeal.MoveRejected {
			return nil, guard.Error()
		}
		if outcome == coredeal.MoveNoOp {
			return s.recordToDeal(ctx, record), nil
		}

		target, _ := registry.Get(targetStageID)
		previous := record

		if err := s.dealRepo.UpdateStage(ctx, dealID, target.ID, target.Probability); err != nil {
			log.WithFields(log.Fields{
				"component": "deal",
				"deal":      dealID,
				"stage":     targetStageID,
			}).WithError(err).Warn("stage transition failed")
			return nil, err
		}

		stored, err := s.dealRepo.GetByID(ctx, dealID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch moved deal: %w", err)
		}

		s.store.Replace(stored)
		s.publisher.Publish(secondary.DealEvent{
			Type:       secondary.DealEventUpdate,
			PipelineID: stored.PipelineID,
			New:        stored,
			Old:        previous,
		})

		log.WithFields(log.Fields{
			"component": "deal",
			"deal":      dealID,
			"from":      previous.Stage,
			"to":        stored.Stage,
		}).Info("deal moved")

		return s.recordToDeal(ctx, stored), nil
	}

	_, guard := coredeal.CanMoveDeal(moveCtx)
	return nil, guard.Error()
}

// UpdateDeal applies field edits to a deal.
func (s *DealServiceImpl) UpdateDeal(ctx context.Context, req primary.UpdateDealRequest) (*primary.Deal, error) {
	previous, err := s.dealRepo.GetByID(ctx, req.DealID)
	if err != nil {
		return nil, err
	}

	if req.Status != "" && !coredeal.ValidStatus(req.Status) {
		return nil, fmt.Errorf("invalid status %q: %w", req.Status, coredeal.ErrInvalid)
	}
	if req.HasValue && req.Value < 0 {
		return nil, fmt.Errorf("deal value must be non-negative (got %v): %w", req.Value, coredeal.ErrInvalid)
	}
	if req.HasProb && (req.Probability < 0 || req.Probability > 100) {
		return nil, fmt.Errorf("probability must be between 0 and 100 (got %d): %w", req.Probability, coredeal.ErrInvalid)
	}

	record := &secondary.DealRecord{
		ID:          req.DealID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		CloseDate:   req.CloseDate,
	}
	if req.HasValue {
		record.Value = req.Value
	}
	if req.HasProb {
		record.Probability = req.Probability
	}
	if req.HasTags {
		record.Tags = req.Tags
	}

	if err := s.dealRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	stored, err := s.dealRepo.GetByID(ctx, req.DealID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated deal: %w", err)
	}

	s.store.Replace(stored)
	s.publisher.Publish(secondary.DealEvent{
		Type:       secondary.DealEventUpdate,
		PipelineID: stored.PipelineID,
		New:        stored,
		Old:        previous,
	})

	return s.recordToDeal(ctx, stored), nil
}

// DeleteDeal removes a deal.
func (s *DealServiceImpl) DeleteDeal(ctx context.Context, dealID string) error {
	previous, err := s.dealRepo.GetByID(ctx, dealID)
	if err != nil {
		return err
	}

	if err := s.dealRepo.Delete(ctx, dealID); err != nil {
		return err
	}

	s.store.Remove(dealID)
	s.publisher.Publish(secondary.DealEvent{
		Type:       secondary.DealEventDelete,
		PipelineID: previous.PipelineID,
		Old:        previous,
	})

	log.WithFields(log.Fields{
		"component": "deal",
		"deal":      dealID,
	}).Info("deal deleted")

	return nil
}

// recordToDeal converts a stored record to the primary DTO, resolving the
// contact and company relations when present. A dangling relation resolves
// to nil rather than failing the whole read.
func (s *DealServiceImpl) recordToDeal(ctx context.Context, record *secondary.DealRecord) *primary.Deal {
	deal := &primary.Deal{
		ID:          record.ID,
		PipelineID:  record.PipelineID,
		Title:       record.Title,
		Description: record.Description,
		Value:       record.Value,
		Currency:    record.Currency,
		Stage:       record.Stage,
		Status:      record.Status,
		Probability: record.Probability,
		CloseDate:   record.CloseDate,
		ContactID:   record.ContactID,
		CompanyID:   record.CompanyID,
		OwnerID:     record.OwnerID,
		Tags:        record.Tags,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}

	if record.ContactID != "" && s.contactRepo != nil {
		if contact, err := s.contactRepo.GetByID(ctx, record.ContactID); err == nil {
			deal.Contact = contactRecordToDTO(contact)
		}
	}
	if record.CompanyID != "" && s.companyRepo != nil {
		if company, err := s.companyRepo.GetByID(ctx, record.CompanyID); err == nil {
			deal.Company = companyRecordToDTO(company)
		}
	}

	return deal
}

// Ensure DealServiceImpl implements the interface
var _ primary.DealService = (*DealServiceImpl)(nil)
