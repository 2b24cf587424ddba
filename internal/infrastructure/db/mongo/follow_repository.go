package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobdeck/job-board-api/internal/core/domain"
)

const collectionFollows = "follows"

type FollowRepository struct {
	col *mongo.Collection
}

func NewFollowRepository(db *mongo.Database) *FollowRepository {
	return &FollowRepository{col: db.Collection(collectionFollows)}
}

func (r *FollowRepository) Create(ctx context.Context, follow *domain.Follow) (*domain.Follow, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if follow.ID == "" {
		follow.ID = newID()
	}
	if _, err := r.col.InsertOne(ctx, follow); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadyFollowing
		}
		return nil, fmt.Errorf("insert follow: %w", err)
	}
	return follow, nil
}

func (r *FollowRepository) Delete(ctx context.Context, userID string, target domain.TargetRef) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"user_id":     userID,
		"target.type": target.Type,
		"target.id":   target.ID,
	}
	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFollowNotFound
	}
	return nil
}

func (r *FollowRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Follow, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list follows: %w", err)
	}
	var follows []*domain.Follow
	if err := cur.All(ctx, &follows); err != nil {
		return nil, fmt.Errorf("decode follows: %w", err)
	}
	return follows, nil
}

// ListUserIDsByTargets returns the distinct followers of any listed target;
// the fan-out source for publish notifications.
func (r *FollowRepository) ListUserIDsByTargets(ctx context.Context, targets []domain.TargetRef) ([]string, error) {
	if len(targets) == 0 {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	raw, err := r.col.Distinct(ctx, "user_id", bson.M{"$or": targetClauses(targets)})
	if err != nil {
		return nil, fmt.Errorf("distinct followers: %w", err)
	}
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *FollowRepository) CountByTarget(ctx context.Context, target domain.TargetRef) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{
		"target.type": target.Type,
		"target.id":   target.ID,
	})
	if err != nil {
		return 0, fmt.Errorf("count followers: %w", err)
	}
	return n, nil
}

func targetClauses(targets []domain.TargetRef) bson.A {
	clauses := make(bson.A, 0, len(targets))
	for _, t := range targets {
		clauses = append(clauses, bson.M{"target.type": t.Type, "target.id": t.ID})
	}
	return clauses
}

func (r *FollowRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "target.type", Value: 1},
				{Key: "target.id", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "target.type", Value: 1}, {Key: "target.id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
