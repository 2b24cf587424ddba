package ports

import (
	"context"

	"github.com/jobdeck/job-board-api/internal/core/domain"
)

// NotificationRepository defines persistence for the per-user mailbox.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	FindByIDAndUser(ctx context.Context, id, userID string) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	Update(ctx context.Context, n *domain.Notification) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}

// CreateNotificationInput is the internal-event payload; never exposed over
// HTTP.
type CreateNotificationInput struct {
	UserID  string
	Title   string
	Message string
	Type    domain.NotificationType
	Link    string
}

// NotificationService is the produce/consume mailbox. Create is invoked only
// by internal flows; consumers poll.
type NotificationService interface {
	Create(ctx context.Context, in CreateNotificationInput) (*domain.Notification, error)
	ListMine(ctx context.Context, actor *domain.User) ([]*domain.Notification, error)
	MarkAsRead(ctx context.Context, actor *domain.User, id string) (*domain.Notification, error)
	MarkAllAsRead(ctx context.Context, actor *domain.User) (int64, error)
}
