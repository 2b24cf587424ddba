package ports

import (
	"context"

	"github.com/jobdeck/job-board-api/internal/core/domain"
)

// PageRepository defines persistence for CMS static pages (slug unique).
type PageRepository interface {
	Create(ctx context.Context, page *domain.StaticPage) (*domain.StaticPage, error)
	FindByID(ctx context.Context, id string) (*domain.StaticPage, error)
	FindBySlug(ctx context.Context, slug string) (*domain.StaticPage, error)
	List(ctx context.Context) ([]*domain.StaticPage, error)
	Update(ctx context.Context, page *domain.StaticPage) error
}

// FAQRepository defines persistence for FAQ entries.
type FAQRepository interface {
	Create(ctx context.Context, faq *domain.FAQ) (*domain.FAQ, error)
	FindByID(ctx context.Context, id string) (*domain.FAQ, error)
	List(ctx context.Context) ([]*domain.FAQ, error)
	Update(ctx context.Context, faq *domain.FAQ) error
}

// UpsertPageInput carries an admin page create/update.
type UpsertPageInput struct {
	Title *string
	Body  *string
}

// UpsertFAQInput carries an admin FAQ create/update.
type UpsertFAQInput struct {
	Question *string
	Answer   *string
	Order    *int
}

// ContentService is the small admin CMS: static pages and FAQs.
type ContentService interface {
	CreatePage(ctx context.Context, actor *domain.User, slug, title, body string) (*domain.StaticPage, error)
	UpdatePage(ctx context.Context, actor *domain.User, id string, in UpsertPageInput) (*domain.StaticPage, error)
	TogglePage(ctx context.Context, actor *domain.User, id string) (*domain.StaticPage, error)
	GetPage(ctx context.Context, slug string) (*domain.StaticPage, error)

	CreateFAQ(ctx context.Context, actor *domain.User, question, answer string, order int) (*domain.FAQ, error)
	UpdateFAQ(ctx context.Context, actor *domain.User, id string, in UpsertFAQInput) (*domain.FAQ, error)
	ToggleFAQ(ctx context.Context, actor *domain.User, id string) (*domain.FAQ, error)
	ListFAQs(ctx context.Context, publicOnly bool) ([]*domain.FAQ, error)
}
