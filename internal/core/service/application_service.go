package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobdeck/job-board-api/internal/core/domain"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

// ApplicationService handles the apply/review flow. Applicants act on their
// own applications; status changes belong to the job's owning actor.
type ApplicationService struct {
	apps      ports.ApplicationRepository
	jobs      ports.JobRepository
	companies ports.CompanyRepository
	notifier  ports.Notifier
	logger    zerolog.Logger
	now       func() time.Time
}

func NewApplicationService(
	apps ports.ApplicationRepository,
	jobs ports.JobRepository,
	companies ports.CompanyRepository,
	notifier ports.Notifier,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		apps:      apps,
		jobs:      jobs,
		companies: companies,
		notifier:  notifier,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Apply creates a pending application. Only the published status gates
// applying; is_active does not.
func (s *ApplicationService) Apply(ctx context.Context, actor *domain.User, jobID, coverLetter string) (*domain.JobApplication, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.JobPublished {
		return nil, domain.NotFound("job is not open for applications")
	}
	if job.CreatedBy == actor.ID {
		return nil, domain.ErrOwnJobApplication
	}

	// Pre-check; the unique (job_id, applicant_id) index is the backstop.
	if existing, err := s.apps.FindByJobAndApplicant(ctx, jobID, actor.ID); err == nil && existing != nil {
		return nil, domain.ErrAlreadyApplied
	}

	now := s.now()
	app := &domain.JobApplication{
		JobID:       job.ID,
		CompanyID:   job.CompanyID, // denormalized for query convenience
		ApplicantID: actor.ID,
		CoverLetter: coverLetter,
		Status:      domain.ApplicationPending,
		AppliedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.apps.Create(ctx, app)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.ApplicationReceived(job, created)
	}
	s.logger.Info().Str("job_id", job.ID).Str("applicant_id", actor.ID).Msg("application submitted")
	return created, nil
}

func (s *ApplicationService) ListForJob(ctx context.Context, actor *domain.User, jobID string) ([]*domain.JobApplication, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := s.requireJobOwner(ctx, job, actor); err != nil {
		return nil, err
	}
	return s.apps.ListByJob(ctx, jobID)
}

func (s *ApplicationService) ListMine(ctx context.Context, actor *domain.User) ([]*domain.JobApplication, error) {
	return s.apps.ListByApplicant(ctx, actor.ID)
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, actor *domain.User, applicationID, status string) (*domain.JobApplication, error) {
	next := domain.ApplicationStatus(status)
	if !next.Valid() {
		return nil, domain.Validation("invalid application status")
	}

	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if err := s.requireJobOwner(ctx, job, actor); err != nil {
		return nil, err
	}

	app.Status = next
	app.UpdatedAt = s.now()
	if err := s.apps.Update(ctx, app); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.ApplicationStatusChanged(job, app)
	}
	s.logger.Info().Str("application_id", app.ID).Str("status", status).Msg("application status updated")
	return app, nil
}

func (s *ApplicationService) requireJobOwner(ctx context.Context, job *domain.JobPost, actor *domain.User) error {
	company, err := s.companies.FindByID(ctx, job.CompanyID)
	if err != nil {
		return err
	}
	if !company.OwnedBy(actor.ID) {
		return domain.ErrNotCompanyOwner
	}
	return nil
}
