package ports

import (
	"context"

	"github.com/jobdeck/job-board-api/internal/core/domain"
)

// FollowRepository defines persistence for follows. The (user, target)
// triple is unique via an index; Create translates the duplicate-key
// violation to domain.ErrAlreadyFollowing.
type FollowRepository interface {
	Create(ctx context.Context, follow *domain.Follow) (*domain.Follow, error)
	Delete(ctx context.Context, userID string, target domain.TargetRef) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Follow, error)
	// ListUserIDsByTargets returns the distinct users following any of the
	// given targets; the fan-out source for publish notifications.
	ListUserIDsByTargets(ctx context.Context, targets []domain.TargetRef) ([]string, error)
	CountByTarget(ctx context.Context, target domain.TargetRef) (int64, error)
}

// SubscriptionRepository defines persistence for email subscriptions. The
// (email, target) tuple is unique among is_active=true rows via a partial
// unique index.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error)
	// FindByTuple returns the row for (email, target) regardless of active
	// state, so the service can branch between conflict and reactivation.
	FindByTuple(ctx context.Context, email string, target domain.TargetRef) (*domain.Subscription, error)
	FindByToken(ctx context.Context, token string) (*domain.Subscription, error)
	Update(ctx context.Context, sub *domain.Subscription) error
	// ListActiveEmailsByTargets returns distinct active subscriber emails
	// with one representative subscription each (for the unsubscribe link).
	ListActiveEmailsByTargets(ctx context.Context, targets []domain.TargetRef) ([]*domain.Subscription, error)
	CountActiveByTarget(ctx context.Context, target domain.TargetRef) (int64, error)
}

// SubscribeResult reports whether an existing inactive row was reactivated
// (HTTP 200) or a new one created (HTTP 201).
type SubscribeResult struct {
	Subscription *domain.Subscription
	Reactivated  bool
}

// EngagementService covers follows and email subscriptions against
// polymorphic targets.
type EngagementService interface {
	Follow(ctx context.Context, actor *domain.User, targetType, targetID string) (*domain.Follow, error)
	Unfollow(ctx context.Context, actor *domain.User, targetType, targetID string) error
	ListFollows(ctx context.Context, actor *domain.User) ([]*domain.Follow, error)
	Subscribe(ctx context.Context, email, targetType, targetID string) (*SubscribeResult, error)
	Unsubscribe(ctx context.Context, token string) error
}
