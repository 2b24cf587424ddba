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

const collectionApplications = "job_applications"

type ApplicationRepository struct {
	col *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{col: db.Collection(collectionApplications)}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if app.ID == "" {
		app.ID = newID()
	}
	if _, err := r.col.InsertOne(ctx, app); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadyApplied
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}
	return app, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.JobApplication, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ApplicationRepository) FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*domain.JobApplication, error) {
	return r.findOne(ctx, bson.M{"job_id": jobID, "applicant_id": applicantID})
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]*domain.JobApplication, error) {
	return r.find(ctx, bson.M{"job_id": jobID})
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]*domain.JobApplication, error) {
	return r.find(ctx, bson.M{"applicant_id": applicantID})
}

func (r *ApplicationRepository) CountByJob(ctx context.Context, jobID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"job_id": jobID})
	if err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return n, nil
}

func (r *ApplicationRepository) Update(ctx context.Context, app *domain.JobApplication) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": app.ID}, app)
	if err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepository) findOne(ctx context.Context, filter bson.M) (*domain.JobApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var app domain.JobApplication
	if err := r.col.FindOne(ctx, filter).Decode(&app); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) find(ctx context.Context, filter bson.M) ([]*domain.JobApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "applied_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	var apps []*domain.JobApplication
	if err := cur.All(ctx, &apps); err != nil {
		return nil, fmt.Errorf("decode applications: %w", err)
	}
	return apps, nil
}

func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "job_id", Value: 1}, {Key: "applicant_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "applicant_id", Value: 1}, {Key: "applied_at", Value: -1}}},
		{Keys: bson.D{{Key: "company_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
