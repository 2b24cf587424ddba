package ports

import (
	"context"

	"github.com/jobdeck/job-board-api/internal/core/domain"
)

// CategoryRepository defines persistence for job categories.
//
// AddTags/RemoveTags are set-semantics mirror writes ($addToSet / $pull):
// applying either twice is a no-op, so retries after partial failure
// converge instead of double-applying.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.JobCategory) (*domain.JobCategory, error)
	FindByID(ctx context.Context, id string) (*domain.JobCategory, error)
	FindBySlug(ctx context.Context, slug string) (*domain.JobCategory, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.JobCategory, error)
	List(ctx context.Context) ([]*domain.JobCategory, error)
	Update(ctx context.Context, category *domain.JobCategory) error
	AddTags(ctx context.Context, categoryIDs []string, tagID string) error
	RemoveTags(ctx context.Context, categoryIDs []string, tagID string) error
}

// TagRepository is the symmetric half of the taxonomy store.
type TagRepository interface {
	Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error)
	FindByID(ctx context.Context, id string) (*domain.Tag, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Tag, error)
	// FindBySlugs resolves case-insensitive slugs for the public job filter.
	FindBySlugs(ctx context.Context, slugs []string) ([]*domain.Tag, error)
	List(ctx context.Context) ([]*domain.Tag, error)
	Update(ctx context.Context, tag *domain.Tag) error
	AddCategories(ctx context.Context, tagIDs []string, categoryID string) error
	RemoveCategories(ctx context.Context, tagIDs []string, categoryID string) error
}

// CreateCategoryInput carries an admin category creation, with the tag side
// of the mirror relation.
type CreateCategoryInput struct {
	Name        string
	Description string
	TagIDs      []string
}

// UpdateCategoryInput is the category patch. TagIDs nil means "leave the
// relation alone"; an empty non-nil slice detaches every tag.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
	TagIDs      []string
}

// CreateTagInput / UpdateTagInput are the symmetric tag-side shapes.
type CreateTagInput struct {
	Name        string
	Description string
	CategoryIDs []string
}

type UpdateTagInput struct {
	Name        *string
	Description *string
	CategoryIDs []string
}

// CategorySummary is the public listing row. Counts are always recomputed
// from source-of-truth rows, never stored on the entity.
type CategorySummary struct {
	Category    *domain.JobCategory
	JobCount    int64 // currently published jobs referencing the category
	Subscribers int64 // follows + active subscriptions targeting it
}

// TagSummary mirrors CategorySummary for tags.
type TagSummary struct {
	Tag         *domain.Tag
	JobCount    int64
	Subscribers int64
}

// TaxonomyService keeps Category.Tags and Tag.Categories mutually consistent
// under independent edits from either side.
type TaxonomyService interface {
	CreateCategory(ctx context.Context, actor *domain.User, in CreateCategoryInput) (*domain.JobCategory, error)
	UpdateCategory(ctx context.Context, actor *domain.User, id string, in UpdateCategoryInput) (*domain.JobCategory, error)
	ToggleCategoryStatus(ctx context.Context, actor *domain.User, id string) (*domain.JobCategory, error)
	ListCategories(ctx context.Context) ([]CategorySummary, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.JobCategory, error)

	CreateTag(ctx context.Context, actor *domain.User, in CreateTagInput) (*domain.Tag, error)
	UpdateTag(ctx context.Context, actor *domain.User, id string, in UpdateTagInput) (*domain.Tag, error)
	ToggleTagStatus(ctx context.Context, actor *domain.User, id string) (*domain.Tag, error)
	ListTags(ctx context.Context) ([]TagSummary, error)
}
