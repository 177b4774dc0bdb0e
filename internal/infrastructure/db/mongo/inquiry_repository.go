package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/planet-nakshatra/consultation-api/internal/core/domain"
)

const inquiriesCollection = "contact_inquiries"

// InquiryRepository persists contact inquiries in MongoDB.
type InquiryRepository struct {
	coll *mongo.Collection
}

func NewInquiryRepository(db *mongo.Database) *InquiryRepository {
	return &InquiryRepository{coll: db.Collection(inquiriesCollection)}
}

func (r *InquiryRepository) Create(ctx context.Context, in *domain.Inquiry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, in); err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

// List returns all inquiries, newest first.
func (r *InquiryRepository) List(ctx context.Context) ([]*domain.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer cur.Close(ctx)

	inquiries := []*domain.Inquiry{}
	if err := cur.All(ctx, &inquiries); err != nil {
		return nil, fmt.Errorf("decode inquiries: %w", err)
	}
	return inquiries, nil
}

// EnsureIndexes creates the reference lookup index.
func (r *InquiryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "reference", Value: 1}},
	})
	return err
}
