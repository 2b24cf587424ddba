package service

import (
	"context"
	"time"

	gosimpleslug "github.com/gosimple/slug"
	"github.com/rs/zerolog"

	"github.com/jobdeck/job-board-api/internal/core/domain"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

// ContentService is the small admin CMS: static pages and FAQs.
type ContentService struct {
	pages  ports.PageRepository
	faqs   ports.FAQRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewContentService(pages ports.PageRepository, faqs ports.FAQRepository, logger zerolog.Logger) *ContentService {
	return &ContentService{
		pages:  pages,
		faqs:   faqs,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *ContentService) CreatePage(ctx context.Context, actor *domain.User, slug, title, body string) (*domain.StaticPage, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, domain.Validation("page title is required")
	}
	if slug == "" {
		slug = gosimpleslug.Make(title)
	}

	now := s.now()
	page := &domain.StaticPage{
		Slug:      slug,
		Title:     title,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.pages.Create(ctx, page)
}

func (s *ContentService) UpdatePage(ctx context.Context, actor *domain.User, id string, in ports.UpsertPageInput) (*domain.StaticPage, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	page, err := s.pages.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil && *in.Title != "" {
		page.Title = *in.Title
	}
	if in.Body != nil {
		page.Body = *in.Body
	}
	page.UpdatedAt = s.now()
	if err := s.pages.Update(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *ContentService) TogglePage(ctx context.Context, actor *domain.User, id string) (*domain.StaticPage, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	page, err := s.pages.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	page.IsPublished = !page.IsPublished
	page.UpdatedAt = s.now()
	if err := s.pages.Update(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *ContentService) GetPage(ctx context.Context, slug string) (*domain.StaticPage, error) {
	page, err := s.pages.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !page.IsPublished {
		return nil, domain.NotFound("page not found")
	}
	return page, nil
}

func (s *ContentService) CreateFAQ(ctx context.Context, actor *domain.User, question, answer string, order int) (*domain.FAQ, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if question == "" || answer == "" {
		return nil, domain.Validation("question and answer are required")
	}

	now := s.now()
	faq := &domain.FAQ{
		Question:  question,
		Answer:    answer,
		Order:     order,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.faqs.Create(ctx, faq)
}

func (s *ContentService) UpdateFAQ(ctx context.Context, actor *domain.User, id string, in ports.UpsertFAQInput) (*domain.FAQ, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	faq, err := s.faqs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Question != nil && *in.Question != "" {
		faq.Question = *in.Question
	}
	if in.Answer != nil && *in.Answer != "" {
		faq.Answer = *in.Answer
	}
	if in.Order != nil {
		faq.Order = *in.Order
	}
	faq.UpdatedAt = s.now()
	if err := s.faqs.Update(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *ContentService) ToggleFAQ(ctx context.Context, actor *domain.User, id string) (*domain.FAQ, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	faq, err := s.faqs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	faq.IsActive = !faq.IsActive
	faq.UpdatedAt = s.now()
	if err := s.faqs.Update(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *ContentService) ListFAQs(ctx context.Context, publicOnly bool) ([]*domain.FAQ, error) {
	faqs, err := s.faqs.List(ctx)
	if err != nil {
		return nil, err
	}
	if !publicOnly {
		return faqs, nil
	}
	visible := faqs[:0:0]
	for _, faq := range faqs {
		if faq.IsActive {
			visible = append(visible, faq)
		}
	}
	return visible, nil
}
