package ports

import (
	"context"

	"github.com/jobdeck/job-board-api/internal/core/domain"
)

// ApplicationRepository defines persistence for job applications.
// (job_id, applicant_id) is unique via an index; Create translates the
// duplicate-key violation to domain.ErrAlreadyApplied.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error)
	FindByID(ctx context.Context, id string) (*domain.JobApplication, error)
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*domain.JobApplication, error)
	ListByJob(ctx context.Context, jobID string) ([]*domain.JobApplication, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]*domain.JobApplication, error)
	CountByJob(ctx context.Context, jobID string) (int64, error)
	Update(ctx context.Context, app *domain.JobApplication) error
}

// ApplicationService handles the apply/review flow around a job.
type ApplicationService interface {
	// Apply creates a pending application. The job must be published; the
	// actor must not be its creator and must not have applied before.
	Apply(ctx context.Context, actor *domain.User, jobID, coverLetter string) (*domain.JobApplication, error)
	ListForJob(ctx context.Context, actor *domain.User, jobID string) ([]*domain.JobApplication, error)
	ListMine(ctx context.Context, actor *domain.User) ([]*domain.JobApplication, error)
	UpdateStatus(ctx context.Context, actor *domain.User, applicationID, status string) (*domain.JobApplication, error)
}
