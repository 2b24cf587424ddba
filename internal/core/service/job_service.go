package service

import (
	"context"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobdeck/job-board-api/internal/core/domain"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// JobService drives the job lifecycle state machine. Ownership of the job's
// company gates every mutation.
type JobService struct {
	jobs       ports.JobRepository
	companies  ports.CompanyRepository
	categories ports.CategoryRepository
	tags       ports.TagRepository
	apps       ports.ApplicationRepository
	notifier   ports.Notifier
	// hideInactiveTaxonomy excludes jobs of deactivated categories from the
	// public listing. Off by default: stale references stay visible.
	hideInactiveTaxonomy bool
	logger               zerolog.Logger
	now                  func() time.Time
}

func NewJobService(
	jobs ports.JobRepository,
	companies ports.CompanyRepository,
	categories ports.CategoryRepository,
	tags ports.TagRepository,
	apps ports.ApplicationRepository,
	notifier ports.Notifier,
	hideInactiveTaxonomy bool,
	logger zerolog.Logger,
) *JobService {
	return &JobService{
		jobs:                 jobs,
		companies:            companies,
		categories:           categories,
		tags:                 tags,
		apps:                 apps,
		notifier:             notifier,
		hideInactiveTaxonomy: hideInactiveTaxonomy,
		logger:               logger,
		now:                  func() time.Time { return time.Now().UTC() },
	}
}

// ownedCompany resolves the company and enforces the ownership check behind
// every job mutation.
func (s *JobService) ownedCompany(ctx context.Context, companyID string, actor *domain.User) (*domain.Company, error) {
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !company.OwnedBy(actor.ID) {
		return nil, domain.ErrNotCompanyOwner
	}
	return company, nil
}

// ownedJob resolves a job and its company, enforcing ownership.
func (s *JobService) ownedJob(ctx context.Context, jobID string, actor *domain.User) (*domain.JobPost, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedCompany(ctx, job.CompanyID, actor); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) validateCategory(ctx context.Context, categoryID string) error {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return domain.Validation("job category does not exist")
	}
	if !category.IsActive {
		return domain.Validation("job category is inactive")
	}
	return nil
}

func (s *JobService) validateTags(ctx context.Context, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}
	found, err := s.tags.FindByIDs(ctx, tagIDs)
	if err != nil {
		return err
	}
	if len(found) != len(domain.DedupIDs(tagIDs)) {
		return domain.ErrTagNotFound
	}
	return nil
}

func (s *JobService) Create(ctx context.Context, actor *domain.User, in ports.CreateJobInput) (*domain.JobPost, error) {
	if _, err := s.ownedCompany(ctx, in.CompanyID, actor); err != nil {
		return nil, err
	}
	if in.Title == "" {
		return nil, domain.Validation("a job must have a title")
	}
	if in.Description == "" {
		return nil, domain.Validation("a job must have a description")
	}
	if !domain.EmploymentType(in.EmploymentType).Valid() {
		return nil, domain.Validation("invalid employment type")
	}
	if in.ExperienceLevel != "" && !domain.ExperienceLevel(in.ExperienceLevel).Valid() {
		return nil, domain.Validation("invalid experience level")
	}
	if in.CategoryID == "" {
		return nil, domain.Validation("job category is required")
	}
	if err := s.validateCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	if err := s.validateTags(ctx, in.TagIDs); err != nil {
		return nil, err
	}

	// Pre-check for a duplicate active title. The partial unique index on
	// (company_id, title, is_active=true) is the backstop under races.
	if existing, err := s.jobs.FindActiveByTitle(ctx, in.CompanyID, in.Title); err == nil && existing != nil {
		return nil, domain.ErrDuplicateJobTitle
	}

	now := s.now()
	job := &domain.JobPost{
		CompanyID:        in.CompanyID,
		CreatedBy:        actor.ID,
		Title:            in.Title,
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		Location:         in.Location,
		EmploymentType:   domain.EmploymentType(in.EmploymentType),
		ExperienceLevel:  domain.ExperienceLevel(in.ExperienceLevel),
		Salary:           in.Salary,
		Requirements:     in.Requirements,
		CategoryID:       in.CategoryID,
		TagIDs:           domain.DedupIDs(in.TagIDs),
		Status:           domain.JobDraft,
		IsActive:         false,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.jobs.Create(ctx, job)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("job_id", created.ID).Str("company_id", in.CompanyID).Msg("job created")
	return created, nil
}

// Get returns a single job for the public board: published and active only.
func (s *JobService) Get(ctx context.Context, id string) (*domain.JobPost, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !job.PubliclyVisible() {
		return nil, domain.ErrJobNotFound
	}
	return job, nil
}

func (s *JobService) Publish(ctx context.Context, actor *domain.User, id string) (*domain.JobPost, error) {
	job, err := s.ownedJob(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if !job.Status.CanTransitionTo(domain.JobPublished) {
		return nil, domain.Validation("job cannot be published from status " + string(job.Status))
	}
	job.Status = domain.JobPublished
	job.IsActive = true
	job.UpdatedAt = s.now()
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.JobPublished(job)
	}
	s.logger.Info().Str("job_id", job.ID).Msg("job published")
	return job, nil
}

// Unpublish returns the job to draft. IsActive is left untouched: the two
// flags are independently managed.
func (s *JobService) Unpublish(ctx context.Context, actor *domain.User, id string) (*domain.JobPost, error) {
	job, err := s.ownedJob(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if !job.Status.CanTransitionTo(domain.JobDraft) {
		return nil, domain.Validation("job cannot be unpublished from status " + string(job.Status))
	}
	job.Status = domain.JobDraft
	job.UpdatedAt = s.now()
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) ToggleActive(ctx context.Context, actor *domain.User, id string) (*domain.JobPost, error) {
	job, err := s.ownedJob(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if job.Status == domain.JobDraft {
		return nil, domain.Validation("drafts cannot be toggled active; publish first")
	}
	job.IsActive = !job.IsActive
	job.UpdatedAt = s.now()
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Update applies the allow-listed fields only; company, creator, and status
// cannot be changed through this path.
func (s *JobService) Update(ctx context.Context, actor *domain.User, id string, in ports.UpdateJobInput) (*domain.JobPost, error) {
	job, err := s.ownedJob(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	if in.Title != nil && *in.Title != "" {
		job.Title = *in.Title
	}
	if in.Description != nil {
		job.Description = *in.Description
	}
	if in.ShortDescription != nil {
		job.ShortDescription = *in.ShortDescription
	}
	if in.Location != nil {
		job.Location = *in.Location
	}
	if in.EmploymentType != nil {
		if !domain.EmploymentType(*in.EmploymentType).Valid() {
			return nil, domain.Validation("invalid employment type")
		}
		job.EmploymentType = domain.EmploymentType(*in.EmploymentType)
	}
	if in.ExperienceLevel != nil {
		if !domain.ExperienceLevel(*in.ExperienceLevel).Valid() {
			return nil, domain.Validation("invalid experience level")
		}
		job.ExperienceLevel = domain.ExperienceLevel(*in.ExperienceLevel)
	}
	if in.Salary != nil {
		job.Salary = *in.Salary
	}
	if in.Requirements != nil {
		job.Requirements = in.Requirements
	}
	if in.CategoryID != nil {
		if err := s.validateCategory(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		job.CategoryID = *in.CategoryID
	}
	if in.TagIDs != nil {
		if err := s.validateTags(ctx, in.TagIDs); err != nil {
			return nil, err
		}
		job.TagIDs = domain.DedupIDs(in.TagIDs)
	}

	job.UpdatedAt = s.now()
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Duplicate clones a job into a fresh draft. The title suffix avoids the
// active-title uniqueness collision.
func (s *JobService) Duplicate(ctx context.Context, actor *domain.User, id string) (*domain.JobPost, error) {
	job, err := s.ownedJob(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	clone := job.Duplicate(s.now())
	created, err := s.jobs.Create(ctx, clone)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("job_id", id).Str("clone_id", created.ID).Msg("job duplicated")
	return created, nil
}

// Delete removes the job permanently. Blocked while applications exist so
// other users' data is never destroyed silently.
func (s *JobService) Delete(ctx context.Context, actor *domain.User, id string) error {
	job, err := s.ownedJob(ctx, id, actor)
	if err != nil {
		return err
	}
	count, err := s.apps.CountByJob(ctx, job.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.Conflict("job has applications; resolve them before deleting")
	}
	if err := s.jobs.Delete(ctx, job.ID); err != nil {
		return err
	}
	s.logger.Info().Str("job_id", id).Msg("job deleted")
	return nil
}

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

func (s *JobService) ListPublished(ctx context.Context, in ports.ListJobsInput) (*ports.ListJobsResult, error) {
	filter := ports.ListJobsFilter{
		Search: in.Search,
		Page:   in.Page,
		Limit:  in.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	if in.CategorySlug != "" {
		category, err := s.categories.FindBySlug(ctx, in.CategorySlug)
		if err != nil {
			return nil, err
		}
		filter.CategoryID = category.ID
	}

	// Tag filters accept ids or slugs; slugs match case-insensitively.
	if len(in.Tags) > 0 {
		var slugs []string
		for _, token := range in.Tags {
			if objectIDPattern.MatchString(token) {
				filter.TagIDs = append(filter.TagIDs, token)
				continue
			}
			slugs = append(slugs, token)
		}
		if len(slugs) > 0 {
			tags, err := s.tags.FindBySlugs(ctx, slugs)
			if err != nil {
				return nil, err
			}
			for _, tag := range tags {
				filter.TagIDs = append(filter.TagIDs, tag.ID)
			}
		}
		if len(filter.TagIDs) == 0 {
			// Every requested tag was unknown: nothing can match.
			return &ports.ListJobsResult{Items: []*domain.JobPost{}, Page: filter.Page, Limit: filter.Limit}, nil
		}
		filter.TagIDs = domain.DedupIDs(filter.TagIDs)
	}

	if s.hideInactiveTaxonomy {
		categories, err := s.categories.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, category := range categories {
			if !category.IsActive {
				filter.HideCategories = append(filter.HideCategories, category.ID)
			}
		}
	}

	items, total, err := s.jobs.ListPublished(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ports.ListJobsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *JobService) ListCompanyJobs(ctx context.Context, actor *domain.User, companyID string) ([]*domain.JobPost, error) {
	if _, err := s.ownedCompany(ctx, companyID, actor); err != nil {
		return nil, err
	}
	return s.jobs.ListByCompany(ctx, companyID)
}

// CompanyStats computes the per-company aggregate live.
func (s *JobService) CompanyStats(ctx context.Context, actor *domain.User, companyID string) (*ports.JobStats, error) {
	if _, err := s.ownedCompany(ctx, companyID, actor); err != nil {
		return nil, err
	}
	return s.jobs.Stats(ctx, companyID)
}
