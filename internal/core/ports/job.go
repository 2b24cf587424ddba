package ports

import (
	"context"

	"github.com/jobdeck/job-board-api/internal/core/domain"
)

// ListJobsFilter carries the public listing query after slug resolution:
// CategoryID and TagIDs hold resolved ids, never slugs.
type ListJobsFilter struct {
	Search     string // keyword text search on title/description
	CategoryID string
	TagIDs     []string
	// HideCategories excludes jobs referencing these (inactive) categories.
	HideCategories []string
	Page           int // 1-based
	Limit          int // capped at 100 by the service
}

// JobStats is the live per-company aggregate.
type JobStats struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Active    int64 `json:"active"`
	Draft     int64 `json:"draft"`
}

// JobRepository defines persistence for job posts.
//
// The (company_id, title) pair is unique among is_active=true documents via
// a partial unique index; Create and Update translate the duplicate-key
// violation to domain.ErrDuplicateJobTitle, which is the real consistency
// backstop behind the service's pre-check.
type JobRepository interface {
	Create(ctx context.Context, job *domain.JobPost) (*domain.JobPost, error)
	FindByID(ctx context.Context, id string) (*domain.JobPost, error)
	// FindActiveByTitle resolves the pre-check for duplicate active titles.
	FindActiveByTitle(ctx context.Context, companyID, title string) (*domain.JobPost, error)
	Update(ctx context.Context, job *domain.JobPost) error
	Delete(ctx context.Context, id string) error
	ListPublished(ctx context.Context, filter ListJobsFilter) ([]*domain.JobPost, int64, error)
	ListByCompany(ctx context.Context, companyID string) ([]*domain.JobPost, error)
	Stats(ctx context.Context, companyID string) (*JobStats, error)
	CountPublishedByCategory(ctx context.Context, categoryID string) (int64, error)
	CountPublishedByTag(ctx context.Context, tagID string) (int64, error)
}

// CreateJobInput carries a job creation by a company owner.
type CreateJobInput struct {
	CompanyID        string
	Title            string
	Description      string
	ShortDescription string
	Location         string
	EmploymentType   string
	ExperienceLevel  string
	Salary           string
	Requirements     []string
	CategoryID       string
	TagIDs           []string
}

// UpdateJobInput is the explicit allow-list of mutable job fields. Anything
// else submitted through the update path is ignored, not errored.
type UpdateJobInput struct {
	Title            *string
	Description      *string
	ShortDescription *string
	Location         *string
	EmploymentType   *string
	ExperienceLevel  *string
	Salary           *string
	Requirements     []string
	CategoryID       *string
	TagIDs           []string
}

// ListJobsInput is the transport-level listing query before slug resolution.
type ListJobsInput struct {
	Search       string
	CategorySlug string
	// Tags accepts ids or slugs, matched case-insensitively for slugs.
	Tags  []string
	Page  int
	Limit int
}

// ListJobsResult is one page of the public board.
type ListJobsResult struct {
	Items      []*domain.JobPost
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// JobService drives the job lifecycle state machine. Every mutation checks
// that the actor owns the job's company.
type JobService interface {
	Create(ctx context.Context, actor *domain.User, in CreateJobInput) (*domain.JobPost, error)
	Get(ctx context.Context, id string) (*domain.JobPost, error)
	Publish(ctx context.Context, actor *domain.User, id string) (*domain.JobPost, error)
	Unpublish(ctx context.Context, actor *domain.User, id string) (*domain.JobPost, error)
	ToggleActive(ctx context.Context, actor *domain.User, id string) (*domain.JobPost, error)
	Update(ctx context.Context, actor *domain.User, id string, in UpdateJobInput) (*domain.JobPost, error)
	Duplicate(ctx context.Context, actor *domain.User, id string) (*domain.JobPost, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
	ListPublished(ctx context.Context, in ListJobsInput) (*ListJobsResult, error)
	ListCompanyJobs(ctx context.Context, actor *domain.User, companyID string) ([]*domain.JobPost, error)
	CompanyStats(ctx context.Context, actor *domain.User, companyID string) (*JobStats, error)
}
