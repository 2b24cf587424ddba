package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobdeck/job-board-api/internal/core/domain"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

// CompanyService manages company records. The owner is fixed at creation;
// there is no transfer operation.
type CompanyService struct {
	companies ports.CompanyRepository
	logger    zerolog.Logger
	now       func() time.Time
}

func NewCompanyService(companies ports.CompanyRepository, logger zerolog.Logger) *CompanyService {
	return &CompanyService{
		companies: companies,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *CompanyService) Create(ctx context.Context, actor *domain.User, in ports.CreateCompanyInput) (*domain.Company, error) {
	if actor.AccountType != domain.AccountEmployer {
		return nil, domain.Forbidden("only employer accounts can create companies")
	}
	if in.Name == "" {
		return nil, domain.Validation("a company must have a name")
	}
	companyDomain := strings.ToLower(strings.TrimSpace(in.Domain))
	if companyDomain == "" {
		return nil, domain.Validation("a company must have a domain")
	}

	now := s.now()
	company := &domain.Company{
		Name:        in.Name,
		Domain:      companyDomain,
		Description: in.Description,
		Website:     in.Website,
		Location:    in.Location,
		OwnerID:     actor.ID,
		Status:      domain.CompanyActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// The unique index on domain turns a racing duplicate into
	// domain.ErrCompanyDomainTaken inside the repository.
	created, err := s.companies.Create(ctx, company)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("company_id", created.ID).Str("owner_id", actor.ID).Msg("company created")
	return created, nil
}

func (s *CompanyService) Get(ctx context.Context, id string) (*domain.Company, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company.Status == domain.CompanyDeleted {
		return nil, domain.ErrCompanyNotFound
	}
	return company, nil
}

func (s *CompanyService) ListMine(ctx context.Context, actor *domain.User) ([]*domain.Company, error) {
	return s.companies.FindByOwner(ctx, actor.ID)
}

func (s *CompanyService) Update(ctx context.Context, actor *domain.User, id string, in ports.UpdateCompanyInput) (*domain.Company, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !company.OwnedBy(actor.ID) {
		return nil, domain.ErrNotCompanyOwner
	}

	if in.Name != nil && *in.Name != "" {
		company.Name = *in.Name
	}
	if in.Description != nil {
		company.Description = *in.Description
	}
	if in.Website != nil {
		company.Website = *in.Website
	}
	if in.Location != nil {
		company.Location = *in.Location
	}
	if in.LogoURL != nil {
		company.LogoURL = *in.LogoURL
	}

	company.UpdatedAt = s.now()
	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Deactivate soft-deletes: companies are referenced by jobs and
// applications and are never physically removed.
func (s *CompanyService) Deactivate(ctx context.Context, actor *domain.User, id string) error {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !company.OwnedBy(actor.ID) {
		return domain.ErrNotCompanyOwner
	}
	company.Status = domain.CompanyInactive
	company.UpdatedAt = s.now()
	return s.companies.Update(ctx, company)
}
