package primary

import "context"

// ContactService defines the primary port for contact operations.
type ContactService interface {
	// CreateContact creates a new contact.
	CreateContact(ctx context.Context, req CreateContactRequest) (*Contact, error)

	// ListContacts lists all contacts.
	ListContacts(ctx context.Context) ([]*Contact, error)
}

// CompanyService defines the primary port for company operations.
type CompanyService interface {
	// CreateCompany creates a new company.
	CreateCompany(ctx context.Context, req CreateCompanyRequest) (*Company, error)

	// ListCompanies lists all companies.
	ListCompanies(ctx context.Context) ([]*Company, error)
}

// Contact is a person attached to deals and scoring.
type Contact struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Title     string
	Industry  string
	Location  string
	CompanyID string
	CreatedAt string
	UpdatedAt string
}

// CreateContactRequest carries the fields for contact creation.
type CreateContactRequest struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Title     string
	Industry  string
	Location  string
	CompanyID string
}

// Company is an organization attached to deals and contacts.
type Company struct {
	ID        string
	Name      string
	Industry  string
	Size      int
	Revenue   float64
	Growth    float64
	CreatedAt string
	UpdatedAt string
}

// CreateCompanyRequest carries the fields for company creation.
type CreateCompanyRequest struct {
	Name     string
	Industry string
	Size     int
	Revenue  float64
	Growth   float64
}
