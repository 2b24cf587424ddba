package ports

import (
	"context"

	"github.com/jobdeck/job-board-api/internal/core/domain"
)

// CompanyRepository defines persistence for companies.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	FindByID(ctx context.Context, id string) (*domain.Company, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error
}

// CreateCompanyInput carries the fields an employer supplies at creation.
// The owner is always the acting user.
type CreateCompanyInput struct {
	Name        string
	Domain      string
	Description string
	Website     string
	Location    string
}

// UpdateCompanyInput is the allow-list of mutable company fields. Nil
// pointers mean "leave unchanged". Owner and domain are immutable.
type UpdateCompanyInput struct {
	Name        *string
	Description *string
	Website     *string
	Location    *string
	LogoURL     *string
}

// CompanyService defines company use-cases. Every mutation is gated on
// ownership.
type CompanyService interface {
	Create(ctx context.Context, actor *domain.User, in CreateCompanyInput) (*domain.Company, error)
	Get(ctx context.Context, id string) (*domain.Company, error)
	ListMine(ctx context.Context, actor *domain.User) ([]*domain.Company, error)
	Update(ctx context.Context, actor *domain.User, id string, in UpdateCompanyInput) (*domain.Company, error)
	// Deactivate soft-deletes: companies are referenced by jobs and are never
	// physically removed.
	Deactivate(ctx context.Context, actor *domain.User, id string) error
}
