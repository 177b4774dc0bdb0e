package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/planet-nakshatra/consultation-api/internal/core/domain"
	"github.com/planet-nakshatra/consultation-api/internal/core/ports"
)

const offeringsCollection = "offerings"

// OfferingRepository persists catalog entries in MongoDB.
type OfferingRepository struct {
	coll *mongo.Collection
}

func NewOfferingRepository(db *mongo.Database) *OfferingRepository {
	return &OfferingRepository{coll: db.Collection(offeringsCollection)}
}

func (r *OfferingRepository) Create(ctx context.Context, o *domain.Offering) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, o); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("insert offering: %w", err)
	}
	return nil
}

func (r *OfferingRepository) FindByID(ctx context.Context, id string) (*domain.Offering, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *OfferingRepository) FindBySlug(ctx context.Context, slug string) (*domain.Offering, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *OfferingRepository) findOne(ctx context.Context, filter bson.M) (*domain.Offering, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var o domain.Offering
	if err := r.coll.FindOne(ctx, filter).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOfferingNotFound
		}
		return nil, fmt.Errorf("find offering: %w", err)
	}
	return &o, nil
}

// List returns entries matching the filter, ordered by display_order
// ascending then created_at descending.
func (r *OfferingRepository) List(ctx context.Context, filter ports.OfferingFilter) ([]*domain.Offering, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Featured != nil {
		query["featured"] = *filter.Featured
	}
	if filter.Search != "" {
		pattern := bson.M{"$regex": filter.Search, "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
			bson.M{"short_description": pattern},
		}
	}

	cur, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{
		{Key: "display_order", Value: 1},
		{Key: "created_at", Value: -1},
	}))
	if err != nil {
		return nil, fmt.Errorf("list offerings: %w", err)
	}
	defer cur.Close(ctx)

	offerings := []*domain.Offering{}
	if err := cur.All(ctx, &offerings); err != nil {
		return nil, fmt.Errorf("decode offerings: %w", err)
	}
	return offerings, nil
}

func (r *OfferingRepository) Update(ctx context.Context, o *domain.Offering) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": o.ID}, o)
	if err != nil {
		return fmt.Errorf("update offering: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOfferingNotFound
	}
	return nil
}

// EnsureIndexes creates the unique slug index on the offerings collection.
func (r *OfferingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
