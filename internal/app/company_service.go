package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	coredeal "github.com/example/dealboard/internal/core/deal"
	"github.com/example/dealboard/internal/ports/primary"
	"github.com/example/dealboard/internal/ports/secondary"
)

// CompanyServiceImpl implements the CompanyService interface.
type CompanyServiceImpl struct {
	companyRepo secondary.CompanyRepository
}

// NewCompanyService creates a new CompanyService with injected dependencies.
func NewCompanyService(companyRepo secondary.CompanyRepository) *CompanyServiceImpl {
	return &CompanyServiceImpl{companyRepo: companyRepo}
}

// CreateCompany creates a new company.
func (s *CompanyServiceImpl) CreateCompany(ctx context.Context, req primary.CreateCompanyRequest) (*primary.Company, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("company name is required: %w", coredeal.ErrInvalid)
	}

	record := &secondary.CompanyRecord{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Industry: req.Industry,
		Size:     req.Size,
		Revenue:  req.Revenue,
		Growth:   req.Growth,
	}
	if err := s.companyRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	created, err := s.companyRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created company: %w", err)
	}
	return companyRecordToDTO(created), nil
}

// ListCompanies lists all companies.
func (s *CompanyServiceImpl) ListCompanies(ctx context.Context) ([]*primary.Company, error) {
	records, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	companies := make([]*primary.Company, len(records))
	for i, r := range records {
		companies[i] = companyRecordToDTO(r)
	}
	return companies, nil
}

func companyRecordToDTO(record *secondary.CompanyRecord) *primary.Company {
	return &primary.Company{
		ID:        record.ID,
		Name:      record.Name,
		Industry:  record.Industry,
		Size:      record.Size,
		Revenue:   record.Revenue,
		Growth:    record.Growth,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

// Ensure CompanyServiceImpl implements the interface
var _ primary.CompanyService = (*CompanyServiceImpl)(nil)
