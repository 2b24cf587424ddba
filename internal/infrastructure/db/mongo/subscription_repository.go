package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobdeck/job-board-api/internal/core/domain"
)

const collectionSubscriptions = "subscriptions"

type SubscriptionRepository struct {
	col *mongo.Collection
}

func NewSubscriptionRepository(db *mongo.Database) *SubscriptionRepository {
	return &SubscriptionRepository{col: db.Collection(collectionSubscriptions)}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if sub.ID == "" {
		sub.ID = newID()
	}
	if _, err := r.col.InsertOne(ctx, sub); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("insert subscription: %w", err)
	}
	return sub, nil
}

// FindByTuple returns the row for (email, target) regardless of active
// state, so the caller can branch between conflict and reactivation.
func (r *SubscriptionRepository) FindByTuple(ctx context.Context, email string, target domain.TargetRef) (*domain.Subscription, error) {
	return r.findOne(ctx, bson.M{
		"email":       email,
		"target.type": target.Type,
		"target.id":   target.ID,
	})
}

func (r *SubscriptionRepository) FindByToken(ctx context.Context, token string) (*domain.Subscription, error) {
	sub, err := r.findOne(ctx, bson.M{"unsubscribe_token": token})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidUnsubToken
		}
		return nil, err
	}
	return sub, nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *domain.Subscription) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": sub.ID}, sub)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadySubscribed
		}
		return fmt.Errorf("update subscription: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NotFound("subscription not found")
	}
	return nil
}

// ListActiveEmailsByTargets returns one active subscription per distinct
// email across the listed targets, so fan-out mails each address once and
// still has an unsubscribe token to link.
func (r *SubscriptionRepository) ListActiveEmailsByTargets(ctx context.Context, targets []domain.TargetRef) ([]*domain.Subscription, error) {
	if len(targets) == 0 {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"is_active": true,
		"$or":       targetClauses(targets),
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	var all []*domain.Subscription
	if err := cur.All(ctx, &all); err != nil {
		return nil, fmt.Errorf("decode subscriptions: %w", err)
	}

	seen := make(map[string]struct{}, len(all))
	out := make([]*domain.Subscription, 0, len(all))
	for _, sub := range all {
		if _, dup := seen[sub.Email]; dup {
			continue
		}
		seen[sub.Email] = struct{}{}
		out = append(out, sub)
	}
	return out, nil
}

func (r *SubscriptionRepository) CountActiveByTarget(ctx context.Context, target domain.TargetRef) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{
		"is_active":   true,
		"target.type": target.Type,
		"target.id":   target.ID,
	})
	if err != nil {
		return 0, fmt.Errorf("count subscriptions: %w", err)
	}
	return n, nil
}

func (r *SubscriptionRepository) findOne(ctx context.Context, filter bson.M) (*domain.Subscription, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var sub domain.Subscription
	if err := r.col.FindOne(ctx, filter).Decode(&sub); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("subscription not found")
		}
		return nil, fmt.Errorf("find subscription: %w", err)
	}
	return &sub, nil
}

func (r *SubscriptionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		// Partial unique: one active row per (email, target). Inactive rows
		// stay behind for in-place reactivation.
		{
			Keys: bson.D{
				{Key: "email", Value: 1},
				{Key: "target.type", Value: 1},
				{Key: "target.id", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"is_active": true}),
		},
		{Keys: bson.D{{Key: "unsubscribe_token", Value: 1}}},
		{Keys: bson.D{{Key: "target.type", Value: 1}, {Key: "target.id", Value: 1}, {Key: "is_active", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
