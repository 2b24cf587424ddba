package service

import (
	"context"
	"time"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog"

	"github.com/jobdeck/job-board-api/internal/core/domain"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

// TaxonomyService keeps the category⇄tag mirror consistent. Every mirror
// write is an idempotent set operation, so a retry after a partial failure
// converges instead of double-applying.
type TaxonomyService struct {
	categories ports.CategoryRepository
	tags       ports.TagRepository
	jobs       ports.JobRepository
	follows    ports.FollowRepository
	subs       ports.SubscriptionRepository
	logger     zerolog.Logger
	now        func() time.Time
}

func NewTaxonomyService(
	categories ports.CategoryRepository,
	tags ports.TagRepository,
	jobs ports.JobRepository,
	follows ports.FollowRepository,
	subs ports.SubscriptionRepository,
	logger zerolog.Logger,
) *TaxonomyService {
	return &TaxonomyService{
		categories: categories,
		tags:       tags,
		jobs:       jobs,
		follows:    follows,
		subs:       subs,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func requireAdmin(actor *domain.User) error {
	if actor == nil || !actor.IsAdmin() {
		return domain.Forbidden("admin access required")
	}
	return nil
}

// resolveTagIDs verifies that every id references an existing tag. Mirror
// writes must never run against ids that do not resolve.
func (s *TaxonomyService) resolveTagIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := s.tags.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(domain.DedupIDs(ids)) {
		return domain.ErrTagNotFound
	}
	return nil
}

func (s *TaxonomyService) resolveCategoryIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := s.categories.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(domain.DedupIDs(ids)) {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (s *TaxonomyService) CreateCategory(ctx context.Context, actor *domain.User, in ports.CreateCategoryInput) (*domain.JobCategory, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, domain.Validation("category name is required")
	}
	if err := s.resolveTagIDs(ctx, in.TagIDs); err != nil {
		return nil, err
	}

	now := s.now()
	category := &domain.JobCategory{
		Name:        in.Name,
		Slug:        slug.Make(in.Name),
		Description: in.Description,
		Tags:        domain.DedupIDs(in.TagIDs),
		IsActive:    true,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.categories.Create(ctx, category)
	if err != nil {
		return nil, err
	}

	if len(created.Tags) > 0 {
		if err := s.tags.AddCategories(ctx, created.Tags, created.ID); err != nil {
			s.logger.Error().Err(err).Str("category_id", created.ID).Msg("tag mirror update failed")
			return nil, err
		}
	}

	s.logger.Info().Str("category_id", created.ID).Str("slug", created.Slug).Msg("category created")
	return created, nil
}

func (s *TaxonomyService) UpdateCategory(ctx context.Context, actor *domain.User, id string, in ports.UpdateCategoryInput) (*domain.JobCategory, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != "" {
		category.Name = *in.Name
		category.Slug = slug.Make(*in.Name)
	}
	if in.Description != nil {
		category.Description = *in.Description
	}

	var removed, added []string
	if in.TagIDs != nil {
		if err := s.resolveTagIDs(ctx, in.TagIDs); err != nil {
			return nil, err
		}
		next := domain.DedupIDs(in.TagIDs)
		removed, added = domain.DiffIDs(category.Tags, next)
		category.Tags = next
	}

	category.UpdatedAt = s.now()
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}

	// Mirror sync. Pull before add so a half-applied retry still converges.
	if len(removed) > 0 {
		if err := s.tags.RemoveCategories(ctx, removed, category.ID); err != nil {
			s.logger.Error().Err(err).Str("category_id", category.ID).Msg("tag mirror pull failed")
			return nil, err
		}
	}
	if len(added) > 0 {
		if err := s.tags.AddCategories(ctx, added, category.ID); err != nil {
			s.logger.Error().Err(err).Str("category_id", category.ID).Msg("tag mirror add failed")
			return nil, err
		}
	}

	return category, nil
}

func (s *TaxonomyService) ToggleCategoryStatus(ctx context.Context, actor *domain.User, id string) (*domain.JobCategory, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category.IsActive = !category.IsActive
	category.UpdatedAt = s.now()
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	s.logger.Info().Str("category_id", id).Bool("is_active", category.IsActive).Msg("category status toggled")
	return category, nil
}

// ListCategories recomputes job and subscriber counts from source-of-truth
// rows on every call; counts are never stored on the entity.
func (s *TaxonomyService) ListCategories(ctx context.Context) ([]ports.CategorySummary, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.CategorySummary, 0, len(categories))
	for _, category := range categories {
		target := domain.TargetRef{Type: domain.TargetCategory, ID: category.ID}

		jobCount, err := s.jobs.CountPublishedByCategory(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		followCount, err := s.follows.CountByTarget(ctx, target)
		if err != nil {
			return nil, err
		}
		subCount, err := s.subs.CountActiveByTarget(ctx, target)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, ports.CategorySummary{
			Category:    category,
			JobCount:    jobCount,
			Subscribers: followCount + subCount,
		})
	}
	return summaries, nil
}

func (s *TaxonomyService) GetCategoryBySlug(ctx context.Context, slugValue string) (*domain.JobCategory, error) {
	category, err := s.categories.FindBySlug(ctx, slugValue)
	if err != nil {
		return nil, err
	}
	if !category.IsActive {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

func (s *TaxonomyService) CreateTag(ctx context.Context, actor *domain.User, in ports.CreateTagInput) (*domain.Tag, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, domain.Validation("tag name is required")
	}
	if err := s.resolveCategoryIDs(ctx, in.CategoryIDs); err != nil {
		return nil, err
	}

	now := s.now()
	tag := &domain.Tag{
		Name:        in.Name,
		Slug:        slug.Make(in.Name),
		Description: in.Description,
		Categories:  domain.DedupIDs(in.CategoryIDs),
		IsActive:    true,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.tags.Create(ctx, tag)
	if err != nil {
		return nil, err
	}

	if len(created.Categories) > 0 {
		if err := s.categories.AddTags(ctx, created.Categories, created.ID); err != nil {
			s.logger.Error().Err(err).Str("tag_id", created.ID).Msg("category mirror update failed")
			return nil, err
		}
	}

	s.logger.Info().Str("tag_id", created.ID).Str("slug", created.Slug).Msg("tag created")
	return created, nil
}

func (s *TaxonomyService) UpdateTag(ctx context.Context, actor *domain.User, id string, in ports.UpdateTagInput) (*domain.Tag, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	tag, err := s.tags.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !tag.IsActive {
		return nil, domain.Validation("cannot update inactive tag")
	}

	if in.Name != nil && *in.Name != "" {
		tag.Name = *in.Name
		tag.Slug = slug.Make(*in.Name)
	}
	if in.Description != nil {
		tag.Description = *in.Description
	}

	var removed, added []string
	if in.CategoryIDs != nil {
		if err := s.resolveCategoryIDs(ctx, in.CategoryIDs); err != nil {
			return nil, err
		}
		next := domain.DedupIDs(in.CategoryIDs)
		removed, added = domain.DiffIDs(tag.Categories, next)
		tag.Categories = next
	}

	tag.UpdatedAt = s.now()
	if err := s.tags.Update(ctx, tag); err != nil {
		return nil, err
	}

	if len(removed) > 0 {
		if err := s.categories.RemoveTags(ctx, removed, tag.ID); err != nil {
			s.logger.Error().Err(err).Str("tag_id", tag.ID).Msg("category mirror pull failed")
			return nil, err
		}
	}
	if len(added) > 0 {
		if err := s.categories.AddTags(ctx, added, tag.ID); err != nil {
			s.logger.Error().Err(err).Str("tag_id", tag.ID).Msg("category mirror add failed")
			return nil, err
		}
	}

	return tag, nil
}

func (s *TaxonomyService) ToggleTagStatus(ctx context.Context, actor *domain.User, id string) (*domain.Tag, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	tag, err := s.tags.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tag.IsActive = !tag.IsActive
	tag.UpdatedAt = s.now()
	if err := s.tags.Update(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TaxonomyService) ListTags(ctx context.Context) ([]ports.TagSummary, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.TagSummary, 0, len(tags))
	for _, tag := range tags {
		target := domain.TargetRef{Type: domain.TargetTag, ID: tag.ID}

		jobCount, err := s.jobs.CountPublishedByTag(ctx, tag.ID)
		if err != nil {
			return nil, err
		}
		followCount, err := s.follows.CountByTarget(ctx, target)
		if err != nil {
			return nil, err
		}
		subCount, err := s.subs.CountActiveByTarget(ctx, target)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, ports.TagSummary{
			Tag:         tag,
			JobCount:    jobCount,
			Subscribers: followCount + subCount,
		})
	}
	return summaries, nil
}
