package app

import (
	"context"
	"fmt"

	"github.com/example/dealboard/internal/core/deal"
	"github.com/example/dealboard/internal/core/stage"
	"github.com/example/dealboard/internal/ports/secondary"
)

// Ensure mocks implement their interfaces
var (
	_ secondary.DealRepository     = (*mockDealRepository)(nil)
	_ secondary.PipelineRepository = (*mockPipelineRepository)(nil)
	_ secondary.ContactRepository  = (*mockContactRepository)(nil)
	_ secondary.CompanyRepository  = (*mockCompanyRepository)(nil)
	_ secondary.DealEventPublisher = (*recordingPublisher)(nil)
)

// mockDealRepository implements secondary.DealRepository for testing.
type mockDealRepository struct {
	deals map[string]*secondary.DealRecord
	order []string

	getCalls         int
	updateStageCalls int
	updateStageErr   error
	createErr        error
}

func newMockDealRepository() *mockDealRepository {
	return &mockDealRepository{deals: make(map[string]*secondary.DealRecord)}
}

func (m *mockDealRepository) put(record *secondary.DealRecord) {
	if _, ok := m.deals[record.ID]; !ok {
		m.order = append(m.order, record.ID)
	}
	m.deals[record.ID] = record
}

func (m *mockDealRepository) Create(ctx context.Context, record *secondary.DealRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	clone := *record
	if clone.CreatedAt == "" {
		clone.CreatedAt = "2026-01-01T00:00:00Z"
		clone.UpdatedAt = clone.CreatedAt
	}
	m.put(&clone)
	return nil
}

func (m *mockDealRepository) GetByID(ctx context.Context, id string) (*secondary.DealRecord, error) {
	m.getCalls++
	record, ok := m.deals[id]
	if !ok {
		return nil, fmt.Errorf("deal %s: %w", id, deal.ErrNotFound)
	}
	clone := *record
	return &clone, nil
}

func (m *mockDealRepository) List(ctx context.Context, filters secondary.DealFilters) ([]*secondary.DealRecord, error) {
	var out []*secondary.DealRecord
	for _, id := range m.order {
		r := m.deals[id]
		if filters.PipelineID != "" && r.PipelineID != filters.PipelineID {
			continue
		}
		if filters.Stage != "" && r.Stage != filters.Stage {
			continue
		}
		if filters.Status != "" && r.Status != filters.Status {
			continue
		}
		clone := *r
		out = append(out, &clone)
	}
	return out, nil
}

func (m *mockDealRepository) Update(ctx context.Context, record *secondary.DealRecord) error {
	existing, ok := m.deals[record.ID]
	if !ok {
		return fmt.Errorf("deal %s: %w", record.ID, deal.ErrNotFound)
	}
	if record.Title != "" {
		existing.Title = record.Title
	}
	if record.Description != "" {
		existing.Description = record.Description
	}
	if record.Value != 0 {
		existing.Value = record.Value
	}
	if record.Status != "" {
		existing.Status = record.Status
	}
	if record.Probability != 0 {
		existing.Probability = record.Probability
	}
	if record.CloseDate != "" {
		existing.CloseDate = record.CloseDate
	}
	if len(record.Tags) > 0 {
		existing.Tags = record.Tags
	}
	return nil
}

func (m *mockDealRepository) UpdateStage(ctx context.Context, id, stageID string, probability int) error {
	m.updateStageCalls++
	if m.updateStageErr != nil {
		return m.updateStageErr
	}
	existing, ok := m.deals[id]
	if !ok {
		return fmt.Errorf("deal %s: %w", id, deal.ErrNotFound)
	}
	existing.Stage = stageID
	existing.Probability = probability
	return nil
}

func (m *mockDealRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.deals[id]; !ok {
		return fmt.Errorf("deal %s: %w", id, deal.ErrNotFound)
	}
	delete(m.deals, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// mockPipelineRepository implements secondary.PipelineRepository for testing.
// newMockPipelineRepository seeds PIPE-001 with the standard template.
type mockPipelineRepository struct {
	pipelines map[string]*secondary.PipelineRecord
	stages    map[string][]secondary.StageRecord
	defaultID string
}

func newMockPipelineRepository() *mockPipelineRepository {
	m := &mockPipelineRepository{
		pipelines: make(map[string]*secondary.PipelineRecord),
		stages:    make(map[string][]secondary.StageRecord),
	}
	m.seedDefault("PIPE-001")
	return m
}

func newEmptyMockPipelineRepository() *mockPipelineRepository {
	return &mockPipelineRepository{
		pipelines: make(map[string]*secondary.PipelineRecord),
		stages:    make(map[string][]secondary.StageRecord),
	}
}

func (m *mockPipelineRepository) seedDefault(id string) {
	m.pipelines[id] = &secondary.PipelineRecord{
		ID: id, Name: "Sales Pipeline", IsDefault: true, IsActive: true,
	}
	m.defaultID = id
	for i, st := range stage.DefaultStages() {
		m.stages[id] = append(m.stages[id], secondary.StageRecord{
			PipelineID: id, StageID: st.ID, Name: st.Name,
			Probability: st.Probability, Color: st.Color, Position: i,
		})
	}
}

func (m *mockPipelineRepository) Create(ctx context.Context, pipeline *secondary.PipelineRecord, stages []secondary.StageRecord) error {
	clone := *pipeline
	m.pipelines[pipeline.ID] = &clone
	m.stages[pipeline.ID] = stages
	if pipeline.IsDefault {
		m.defaultID = pipeline.ID
	}
	return nil
}

func (m *mockPipelineRepository) GetByID(ctx context.Context, id string) (*secondary.PipelineRecord, error) {
	record, ok := m.pipelines[id]
	if !ok {
		return nil, fmt.Errorf("pipeline %s not found", id)
	}
	clone := *record
	return &clone, nil
}

func (m *mockPipelineRepository) GetDefault(ctx context.Context) (*secondary.PipelineRecord, error) {
	if m.defaultID == "" {
		return nil, nil
	}
	return m.GetByID(ctx, m.defaultID)
}

func (m *mockPipelineRepository) ListStages(ctx context.Context, pipelineID string) ([]secondary.StageRecord, error) {
	return m.stages[pipelineID], nil
}

func (m *mockPipelineRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("PIPE-%03d", len(m.pipelines)+1), nil
}

// mockContactRepository implements secondary.ContactRepository for testing.
type mockContactRepository struct {
	contacts map[string]*secondary.ContactRecord
	order    []string
}

func newMockContactRepository() *mockContactRepository {
	return &mockContactRepository{contacts: make(map[string]*secondary.ContactRecord)}
}

func (m *mockContactRepository) Create(ctx context.Context, record *secondary.ContactRecord) error {
	clone := *record
	if _, ok := m.contacts[record.ID]; !ok {
		m.order = append(m.order, record.ID)
	}
	m.contacts[record.ID] = &clone
	return nil
}

func (m *mockContactRepository) GetByID(ctx context.Context, id string) (*secondary.ContactRecord, error) {
	record, ok := m.contacts[id]
	if !ok {
		return nil, fmt.Errorf("contact %s not found", id)
	}
	clone := *record
	return &clone, nil
}

func (m *mockContactRepository) List(ctx context.Context) ([]*secondary.ContactRecord, error) {
	out := make([]*secondary.ContactRecord, 0, len(m.order))
	for _, id := range m.order {
		clone := *m.contacts[id]
		out = append(out, &clone)
	}
	return out, nil
}

// mockCompanyRepository implements secondary.CompanyRepository for testing.
type mockCompanyRepository struct {
	companies map[string]*secondary.CompanyRecord
}

func newMockCompanyRepository() *mockCompanyRepository {
	return &mockCompanyRepository{companies: make(map[string]*secondary.CompanyRecord)}
}

func (m *mockCompanyRepository) Create(ctx context.Context, record *secondary.CompanyRecord) error {
	clone := *record
	m.companies[record.ID] = &clone
	return nil
}

func (m *mockCompanyRepository) GetByID(ctx context.Context, id string) (*secondary.CompanyRecord, error) {
	record, ok := m.companies[id]
	if !ok {
		return nil, fmt.Errorf("company %s not found", id)
	}
	clone := *record
	return &clone, nil
}

func (m *mockCompanyRepository) List(ctx context.Context) ([]*secondary.CompanyRecord, error) {
	out := make([]*secondary.CompanyRecord, 0, len(m.companies))
	for _, record := range m.companies {
		clone := *record
		out = append(out, &clone)
	}
	return out, nil
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	events []secondary.DealEvent
}

func (p *recordingPublisher) Publish(event secondary.DealEvent) {
	p.events = append(p.events, event)
}
