package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	coredeal "github.com/example/dealboard/internal/core/deal"
	"github.com/example/dealboard/internal/ports/primary"
	"github.com/example/dealboard/internal/ports/secondary"
)

// ContactServiceImpl implements the ContactService interface.
type ContactServiceImpl struct {
	contactRepo secondary.ContactRepository
}

// NewContactService creates a new ContactService with injected dependencies.
func NewContactService(contactRepo secondary.ContactRepository) *ContactServiceImpl {
	return &ContactServiceImpl{contactRepo: contactRepo}
}

// CreateContact creates a new contact.
func (s *ContactServiceImpl) CreateContact(ctx context.Context, req primary.CreateContactRequest) (*primary.Contact, error) {
	if req.FirstName == "" {
		return nil, fmt.Errorf("contact first name is required: %w", coredeal.ErrInvalid)
	}

	record := &secondary.ContactRecord{
		ID:        uuid.NewString(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Title:     req.Title,
		Industry:  req.Industry,
		Location:  req.Location,
		CompanyID: req.CompanyID,
	}
	if err := s.contactRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	created, err := s.contactRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created contact: %w", err)
	}
	return contactRecordToDTO(created), nil
}

// ListContacts lists all contacts.
func (s *ContactServiceImpl) ListContacts(ctx context.Context) ([]*primary.Contact, error) {
	records, err := s.contactRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	contacts := make([]*primary.Contact, len(records))
	for i, r := range records {
		contacts[i] = contactRecordToDTO(r)
	}
	return contacts, nil
}

func contactRecordToDTO(record *secondary.ContactRecord) *primary.Contact {
	return &primary.Contact{
		ID:        record.ID,
		FirstName: record.FirstName,
		LastName:  record.LastName,
		Email:     record.Email,
		Phone:     record.Phone,
		Title:     record.Title,
		Industry:  record.Industry,
		Location:  record.Location,
		CompanyID: record.CompanyID,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

// Ensure ContactServiceImpl implements the interface
var _ primary.ContactService = (*ContactServiceImpl)(nil)
