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

const (
	collectionPages = "static_pages"
	collectionFAQs  = "faqs"
)

type PageRepository struct {
	col *mongo.Collection
}

func NewPageRepository(db *mongo.Database) *PageRepository {
	return &PageRepository{col: db.Collection(collectionPages)}
}

func (r *PageRepository) Create(ctx context.Context, page *domain.StaticPage) (*domain.StaticPage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if page.ID == "" {
		page.ID = newID()
	}
	if _, err := r.col.InsertOne(ctx, page); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.Conflict("a page with this slug already exists")
		}
		return nil, fmt.Errorf("insert page: %w", err)
	}
	return page, nil
}

func (r *PageRepository) FindByID(ctx context.Context, id string) (*domain.StaticPage, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *PageRepository) FindBySlug(ctx context.Context, slug string) (*domain.StaticPage, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *PageRepository) List(ctx context.Context) ([]*domain.StaticPage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "slug", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	var pages []*domain.StaticPage
	if err := cur.All(ctx, &pages); err != nil {
		return nil, fmt.Errorf("decode pages: %w", err)
	}
	return pages, nil
}

func (r *PageRepository) Update(ctx context.Context, page *domain.StaticPage) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": page.ID}, page)
	if err != nil {
		return fmt.Errorf("update page: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NotFound("page not found")
	}
	return nil
}

func (r *PageRepository) findOne(ctx context.Context, filter bson.M) (*domain.StaticPage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var page domain.StaticPage
	if err := r.col.FindOne(ctx, filter).Decode(&page); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("page not found")
		}
		return nil, fmt.Errorf("find page: %w", err)
	}
	return &page, nil
}

func (r *PageRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

type FAQRepository struct {
	col *mongo.Collection
}

func NewFAQRepository(db *mongo.Database) *FAQRepository {
	return &FAQRepository{col: db.Collection(collectionFAQs)}
}

func (r *FAQRepository) Create(ctx context.Context, faq *domain.FAQ) (*domain.FAQ, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if faq.ID == "" {
		faq.ID = newID()
	}
	if _, err := r.col.InsertOne(ctx, faq); err != nil {
		return nil, fmt.Errorf("insert faq: %w", err)
	}
	return faq, nil
}

func (r *FAQRepository) FindByID(ctx context.Context, id string) (*domain.FAQ, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var faq domain.FAQ
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&faq); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("faq not found")
		}
		return nil, fmt.Errorf("find faq: %w", err)
	}
	return &faq, nil
}

func (r *FAQRepository) List(ctx context.Context) ([]*domain.FAQ, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	var faqs []*domain.FAQ
	if err := cur.All(ctx, &faqs); err != nil {
		return nil, fmt.Errorf("decode faqs: %w", err)
	}
	return faqs, nil
}

func (r *FAQRepository) Update(ctx context.Context, faq *domain.FAQ) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": faq.ID}, faq)
	if err != nil {
		return fmt.Errorf("update faq: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NotFound("faq not found")
	}
	return nil
}

func (r *FAQRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "order", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
