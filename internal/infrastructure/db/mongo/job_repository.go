package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobdeck/job-board-api/internal/core/domain"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

const collectionJobs = "job_posts"

type JobRepository struct {
	col *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{col: db.Collection(collectionJobs)}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.JobPost) (*domain.JobPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if job.ID == "" {
		job.ID = newID()
	}
	if job.TagIDs == nil {
		job.TagIDs = []string{}
	}
	if _, err := r.col.InsertOne(ctx, job); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateJobTitle
		}
		return nil, fmt.Errorf("insert job: %w", err)
	}
	return job, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.JobPost, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *JobRepository) FindActiveByTitle(ctx context.Context, companyID, title string) (*domain.JobPost, error) {
	return r.findOne(ctx, bson.M{
		"company_id": companyID,
		"title":      title,
		"is_active":  true,
	})
}

func (r *JobRepository) Update(ctx context.Context, job *domain.JobPost) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": job.ID}, job)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateJobTitle
		}
		return fmt.Errorf("update job: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *JobRepository) ListPublished(ctx context.Context, filter ports.ListJobsFilter) ([]*domain.JobPost, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{
		"status":    domain.JobPublished,
		"is_active": true,
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}
	if filter.CategoryID != "" {
		query["category_id"] = filter.CategoryID
	} else if len(filter.HideCategories) > 0 {
		query["category_id"] = bson.M{"$nin": filter.HideCategories}
	}
	if len(filter.TagIDs) > 0 {
		query["tags"] = bson.M{"$in": filter.TagIDs}
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}
	var jobs []*domain.JobPost
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, 0, fmt.Errorf("decode jobs: %w", err)
	}
	return jobs, total, nil
}

func (r *JobRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.JobPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"company_id": companyID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list company jobs: %w", err)
	}
	var jobs []*domain.JobPost
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("decode company jobs: %w", err)
	}
	return jobs, nil
}

// Stats recomputes the per-company aggregate from live rows on every call.
func (r *JobRepository) Stats(ctx context.Context, companyID string) (*ports.JobStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	stats := &ports.JobStats{}
	counts := []struct {
		dst    *int64
		filter bson.M
	}{
		{&stats.Total, bson.M{"company_id": companyID}},
		{&stats.Published, bson.M{"company_id": companyID, "status": domain.JobPublished}},
		{&stats.Active, bson.M{"company_id": companyID, "is_active": true}},
		{&stats.Draft, bson.M{"company_id": companyID, "status": domain.JobDraft}},
	}
	for _, c := range counts {
		n, err := r.col.CountDocuments(ctx, c.filter)
		if err != nil {
			return nil, fmt.Errorf("job stats: %w", err)
		}
		*c.dst = n
	}
	return stats, nil
}

func (r *JobRepository) CountPublishedByCategory(ctx context.Context, categoryID string) (int64, error) {
	return r.countPublished(ctx, bson.M{"category_id": categoryID})
}

func (r *JobRepository) CountPublishedByTag(ctx context.Context, tagID string) (int64, error) {
	return r.countPublished(ctx, bson.M{"tags": tagID})
}

func (r *JobRepository) countPublished(ctx context.Context, extra bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"status": domain.JobPublished, "is_active": true}
	for k, v := range extra {
		filter[k] = v
	}
	n, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count published jobs: %w", err)
	}
	return n, nil
}

func (r *JobRepository) findOne(ctx context.Context, filter bson.M) (*domain.JobPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var job domain.JobPost
	if err := r.col.FindOne(ctx, filter).Decode(&job); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return &job, nil
}

func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		// Partial unique: at most one active job per (company, title). This is
		// the real backstop behind the service's duplicate pre-check.
		{
			Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "title", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"is_active": true}),
		},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "is_active", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "category_id", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
