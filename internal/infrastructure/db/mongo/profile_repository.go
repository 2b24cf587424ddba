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

const collectionProfiles = "freelancer_profiles"

type ProfileRepository struct {
	col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{col: db.Collection(collectionProfiles)}
}

func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.FreelancerProfile) (*domain.FreelancerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if profile.ID == "" {
		profile.ID = newID()
	}
	_, err := r.col.ReplaceOne(ctx, bson.M{"user_id": profile.UserID}, profile, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return profile, nil
}

func (r *ProfileRepository) FindByUser(ctx context.Context, userID string) (*domain.FreelancerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var profile domain.FreelancerProfile
	if err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &profile, nil
}

// AddSkill is a conditional write: the filter only matches a profile that
// does not already hold a skill with the same name, so concurrent adds of
// the same name cannot both apply.
func (r *ProfileRepository) AddSkill(ctx context.Context, userID string, skill domain.Skill) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"user_id":     userID,
		"skills.name": bson.M{"$ne": skill.Name},
	}
	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$push": bson.M{"skills": skill}})
	if err != nil {
		return false, fmt.Errorf("add skill: %w", err)
	}
	return res.ModifiedCount == 1, nil
}

func (r *ProfileRepository) RemoveSkill(ctx context.Context, userID, name string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{
		"$pull": bson.M{"skills": bson.M{"name": name}},
	})
	if err != nil {
		return fmt.Errorf("remove skill: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) AddLink(ctx context.Context, userID string, link domain.Link) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"user_id":    userID,
		"links.name": bson.M{"$ne": link.Name},
	}
	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$push": bson.M{"links": link}})
	if err != nil {
		return false, fmt.Errorf("add link: %w", err)
	}
	return res.ModifiedCount == 1, nil
}

func (r *ProfileRepository) RemoveLink(ctx context.Context, userID, name string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{
		"$pull": bson.M{"links": bson.M{"name": name}},
	})
	if err != nil {
		return fmt.Errorf("remove link: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) SetVisibility(ctx context.Context, userID string, public bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{
		"$set": bson.M{"is_public": public},
	})
	if err != nil {
		return fmt.Errorf("set visibility: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
