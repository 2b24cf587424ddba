package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobdeck/job-board-api/internal/core/domain"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

// NotificationService is the per-user mailbox. Create is only ever invoked
// by internal flows; consumers poll and mark entries read.
type NotificationService struct {
	repo   ports.NotificationRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewNotificationService(repo ports.NotificationRepository, logger zerolog.Logger) *NotificationService {
	return &NotificationService{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *NotificationService) Create(ctx context.Context, in ports.CreateNotificationInput) (*domain.Notification, error) {
	if in.UserID == "" {
		return nil, domain.Validation("notification user is required")
	}
	if in.Title == "" || in.Message == "" {
		return nil, domain.Validation("notification title and message are required")
	}
	kind := in.Type
	if kind == "" {
		kind = domain.NotifSystem
	}
	if !kind.Valid() {
		return nil, domain.Validation("invalid notification type")
	}

	n := &domain.Notification{
		UserID:    in.UserID,
		Title:     in.Title,
		Message:   in.Message,
		Type:      kind,
		Link:      in.Link,
		CreatedAt: s.now(),
	}
	return s.repo.Create(ctx, n)
}

func (s *NotificationService) ListMine(ctx context.Context, actor *domain.User) ([]*domain.Notification, error) {
	return s.repo.ListByUser(ctx, actor.ID)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, actor *domain.User, id string) (*domain.Notification, error) {
	n, err := s.repo.FindByIDAndUser(ctx, id, actor.ID)
	if err != nil {
		return nil, err
	}
	if n.IsRead {
		return n, nil
	}
	n.IsRead = true
	if err := s.repo.Update(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, actor *domain.User) (int64, error) {
	return s.repo.MarkAllRead(ctx, actor.ID)
}
