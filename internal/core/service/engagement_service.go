package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobdeck/job-board-api/internal/core/domain"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

// targetResolver checks that a target id references an existing entity of
// its kind.
type targetResolver func(ctx context.Context, id string) error

// EngagementService covers follows and email subscriptions. Polymorphic
// targets are resolved through a registry of per-type lookup functions.
type EngagementService struct {
	follows   ports.FollowRepository
	subs      ports.SubscriptionRepository
	resolvers map[domain.TargetType]targetResolver
	mailer    ports.Mailer
	baseURL   string
	logger    zerolog.Logger
	now       func() time.Time
}

func NewEngagementService(
	follows ports.FollowRepository,
	subs ports.SubscriptionRepository,
	companies ports.CompanyRepository,
	categories ports.CategoryRepository,
	tags ports.TagRepository,
	mailer ports.Mailer,
	baseURL string,
	logger zerolog.Logger,
) *EngagementService {
	resolvers := map[domain.TargetType]targetResolver{
		domain.TargetCompany: func(ctx context.Context, id string) error {
			_, err := companies.FindByID(ctx, id)
			return err
		},
		domain.TargetCategory: func(ctx context.Context, id string) error {
			_, err := categories.FindByID(ctx, id)
			return err
		},
		domain.TargetTag: func(ctx context.Context, id string) error {
			_, err := tags.FindByID(ctx, id)
			return err
		},
	}
	return &EngagementService{
		follows:   follows,
		subs:      subs,
		resolvers: resolvers,
		mailer:    mailer,
		baseURL:   strings.TrimRight(baseURL, "/"),
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *EngagementService) resolveTarget(ctx context.Context, targetType, targetID string) (domain.TargetRef, error) {
	t := domain.TargetType(targetType)
	resolver, ok := s.resolvers[t]
	if !ok {
		return domain.TargetRef{}, domain.Validation("unknown target type")
	}
	if targetID == "" {
		return domain.TargetRef{}, domain.Validation("target id is required")
	}
	if err := resolver(ctx, targetID); err != nil {
		return domain.TargetRef{}, err
	}
	return domain.TargetRef{Type: t, ID: targetID}, nil
}

func (s *EngagementService) Follow(ctx context.Context, actor *domain.User, targetType, targetID string) (*domain.Follow, error) {
	target, err := s.resolveTarget(ctx, targetType, targetID)
	if err != nil {
		return nil, err
	}

	follow := &domain.Follow{
		UserID:    actor.ID,
		Target:    target,
		CreatedAt: s.now(),
	}
	// The unique (user, target) index turns a concurrent duplicate into
	// domain.ErrAlreadyFollowing inside the repository.
	created, err := s.follows.Create(ctx, follow)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", actor.ID).Str("target_type", targetType).Str("target_id", targetID).Msg("follow created")
	return created, nil
}

func (s *EngagementService) Unfollow(ctx context.Context, actor *domain.User, targetType, targetID string) error {
	t := domain.TargetType(targetType)
	if !t.Valid() {
		return domain.Validation("unknown target type")
	}
	return s.follows.Delete(ctx, actor.ID, domain.TargetRef{Type: t, ID: targetID})
}

func (s *EngagementService) ListFollows(ctx context.Context, actor *domain.User) ([]*domain.Follow, error) {
	return s.follows.ListByUser(ctx, actor.ID)
}

// Subscribe creates or reactivates an email subscription. Uniqueness is
// enforced only among active rows: an unsubscribed tuple is reactivated in
// place with a fresh token, never duplicated.
func (s *EngagementService) Subscribe(ctx context.Context, email, targetType, targetID string) (*ports.SubscribeResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domain.Validation("email is required")
	}

	target, err := s.resolveTarget(ctx, targetType, targetID)
	if err != nil {
		return nil, err
	}

	token, err := newUnsubscribeToken()
	if err != nil {
		return nil, err
	}

	existing, err := s.subs.FindByTuple(ctx, email, target)
	if err == nil && existing != nil {
		if existing.IsActive {
			return nil, domain.ErrAlreadySubscribed
		}
		// Reactivate in place.
		existing.IsActive = true
		existing.UnsubscribeToken = token
		existing.UnsubscribedAt = nil
		existing.UpdatedAt = s.now()
		if err := s.subs.Update(ctx, existing); err != nil {
			return nil, err
		}
		s.sendSubscriptionEmail(existing)
		s.logger.Info().Str("email", email).Str("target_id", targetID).Msg("subscription reactivated")
		return &ports.SubscribeResult{Subscription: existing, Reactivated: true}, nil
	}

	now := s.now()
	sub := &domain.Subscription{
		Email:            email,
		Target:           target,
		IsActive:         true,
		UnsubscribeToken: token,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	// The partial unique index over active rows is the backstop if two
	// subscribes race past the tuple lookup.
	created, err := s.subs.Create(ctx, sub)
	if err != nil {
		return nil, err
	}

	s.sendSubscriptionEmail(created)
	s.logger.Info().Str("email", email).Str("target_id", targetID).Msg("subscription created")
	return &ports.SubscribeResult{Subscription: created}, nil
}

// Unsubscribe consumes a single-use token. A second call with the same
// token fails: the token is cleared on first use.
func (s *EngagementService) Unsubscribe(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrInvalidUnsubToken
	}
	sub, err := s.subs.FindByToken(ctx, token)
	if err != nil {
		return domain.ErrInvalidUnsubToken
	}

	now := s.now()
	sub.IsActive = false
	sub.UnsubscribedAt = &now
	sub.UnsubscribeToken = ""
	sub.UpdatedAt = now
	if err := s.subs.Update(ctx, sub); err != nil {
		return err
	}

	s.logger.Info().Str("email", sub.Email).Msg("subscription deactivated")
	return nil
}

// sendSubscriptionEmail delivers the confirmation with the unsubscribe link
// asynchronously; a mail failure never fails the subscribe request.
func (s *EngagementService) sendSubscriptionEmail(sub *domain.Subscription) {
	if s.mailer == nil {
		return
	}
	link := fmt.Sprintf("%s/v1/subscriptions/unsubscribe/%s", s.baseURL, sub.UnsubscribeToken)
	body := fmt.Sprintf(
		"<p>You are now subscribed to updates for this %s.</p><p><a href=%q>Unsubscribe</a></p>",
		sub.Target.Type, link,
	)
	go func() {
		if err := s.mailer.Send(sub.Email, "Subscription confirmed", body); err != nil {
			s.logger.Warn().Err(err).Str("email", sub.Email).Msg("subscription email failed")
		}
	}()
}

// newUnsubscribeToken returns 32 random bytes hex-encoded (256-bit entropy).
func newUnsubscribeToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate unsubscribe token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
