package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobdeck/job-board-api/internal/core/domain"
)

const collectionTags = "tags"

type TagRepository struct {
	col *mongo.Collection
}

func NewTagRepository(db *mongo.Database) *TagRepository {
	return &TagRepository{col: db.Collection(collectionTags)}
}

func (r *TagRepository) Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if tag.ID == "" {
		tag.ID = newID()
	}
	if tag.Categories == nil {
		tag.Categories = []string{}
	}
	if _, err := r.col.InsertOne(ctx, tag); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.Conflict("a tag with this name already exists")
		}
		return nil, fmt.Errorf("insert tag: %w", err)
	}
	return tag, nil
}

func (r *TagRepository) FindByID(ctx context.Context, id string) (*domain.Tag, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var tag domain.Tag
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&tag); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTagNotFound
		}
		return nil, fmt.Errorf("find tag: %w", err)
	}
	return &tag, nil
}

func (r *TagRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// FindBySlugs resolves slugs case-insensitively. Stored slugs are already
// lowercase, so lowering the inputs is sufficient.
func (r *TagRepository) FindBySlugs(ctx context.Context, slugs []string) ([]*domain.Tag, error) {
	if len(slugs) == 0 {
		return nil, nil
	}
	lowered := make([]string, 0, len(slugs))
	for _, s := range slugs {
		lowered = append(lowered, strings.ToLower(s))
	}
	return r.find(ctx, bson.M{"slug": bson.M{"$in": lowered}})
}

func (r *TagRepository) List(ctx context.Context) ([]*domain.Tag, error) {
	return r.find(ctx, bson.M{})
}

func (r *TagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": tag.ID}, tag)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.Conflict("a tag with this name already exists")
		}
		return fmt.Errorf("update tag: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}

// AddCategories is the tag-side mirror write; see CategoryRepository.AddTags.
func (r *TagRepository) AddCategories(ctx context.Context, tagIDs []string, categoryID string) error {
	return r.updateCategorySets(ctx, tagIDs, bson.M{"$addToSet": bson.M{"categories": categoryID}})
}

func (r *TagRepository) RemoveCategories(ctx context.Context, tagIDs []string, categoryID string) error {
	return r.updateCategorySets(ctx, tagIDs, bson.M{"$pull": bson.M{"categories": categoryID}})
}

func (r *TagRepository) updateCategorySets(ctx context.Context, tagIDs []string, update bson.M) error {
	if len(tagIDs) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update["$set"] = bson.M{"updated_at": time.Now().UTC()}
	if _, err := r.col.UpdateMany(ctx, bson.M{"_id": bson.M{"$in": tagIDs}}, update); err != nil {
		return fmt.Errorf("update tag category set: %w", err)
	}
	return nil
}

func (r *TagRepository) find(ctx context.Context, filter bson.M) ([]*domain.Tag, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	var tags []*domain.Tag
	if err := cur.All(ctx, &tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	return tags, nil
}

func (r *TagRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "categories", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
