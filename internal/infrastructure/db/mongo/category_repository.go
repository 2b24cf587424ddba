package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobdeck/job-board-api/internal/core/domain"
)

const collectionCategories = "job_categories"

type CategoryRepository struct {
	col *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{col: db.Collection(collectionCategories)}
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.JobCategory) (*domain.JobCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if category.ID == "" {
		category.ID = newID()
	}
	if category.Tags == nil {
		category.Tags = []string{}
	}
	if _, err := r.col.InsertOne(ctx, category); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.Conflict("a category with this name already exists")
		}
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return category, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*domain.JobCategory, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*domain.JobCategory, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *CategoryRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.JobCategory, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.JobCategory, error) {
	return r.find(ctx, bson.M{})
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.JobCategory) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": category.ID}, category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.Conflict("a category with this name already exists")
		}
		return fmt.Errorf("update category: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// AddTags attaches tagID to every listed category. $addToSet makes the write
// idempotent, so a retried mirror update converges.
func (r *CategoryRepository) AddTags(ctx context.Context, categoryIDs []string, tagID string) error {
	return r.updateTagSets(ctx, categoryIDs, bson.M{"$addToSet": bson.M{"tags": tagID}})
}

// RemoveTags detaches tagID from every listed category. $pull on an absent
// member is a no-op.
func (r *CategoryRepository) RemoveTags(ctx context.Context, categoryIDs []string, tagID string) error {
	return r.updateTagSets(ctx, categoryIDs, bson.M{"$pull": bson.M{"tags": tagID}})
}

func (r *CategoryRepository) updateTagSets(ctx context.Context, categoryIDs []string, update bson.M) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update["$set"] = bson.M{"updated_at": time.Now().UTC()}
	if _, err := r.col.UpdateMany(ctx, bson.M{"_id": bson.M{"$in": categoryIDs}}, update); err != nil {
		return fmt.Errorf("update category tag set: %w", err)
	}
	return nil
}

func (r *CategoryRepository) findOne(ctx context.Context, filter bson.M) (*domain.JobCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var category domain.JobCategory
	if err := r.col.FindOne(ctx, filter).Decode(&category); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &category, nil
}

func (r *CategoryRepository) find(ctx context.Context, filter bson.M) ([]*domain.JobCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	var categories []*domain.JobCategory
	if err := cur.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) EnsureIndexes(ctx context.Context) error {
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
		{Keys: bson.D{{Key: "tags", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
