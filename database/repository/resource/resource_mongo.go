package resourceRepo

import (
	"context"
	"fmt"

	"ablecare/database"
	"ablecare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoResourceRepo implements ResourceRepository using MongoDB. The same
// instance serves both kinds; the kind selects the target collection.
type MongoResourceRepo struct {
	db *mongo.Database
}

// NewMongoResourceRepo creates a new ResourceRepository backed by MongoDB and
// ensures the uniqueness indexes exist for both kinds.
func NewMongoResourceRepo() ResourceRepository {
	repo := &MongoResourceRepo{db: database.DB()}
	for _, kind := range []models.Kind{models.KindService, models.KindSupportModel} {
		if err := repo.ensureIndexes(kind); err != nil {
			panic(fmt.Sprintf("resource repo: failed to ensure indexes for %s: %v", kind.Collection, err))
		}
	}
	return repo
}

func (r *MongoResourceRepo) coll(kind models.Kind) *mongo.Collection {
	return r.db.Collection(kind.Collection)
}

// activeFilter is the base filter excluding soft-deleted documents.
func activeFilter() bson.M {
	return bson.M{"isDeleted": false}
}

func (r *MongoResourceRepo) FindActive(ctx context.Context, kind models.Kind, q ListQuery) ([]models.ContentResource, int64, error) {
	filter := activeFilter()
	if q.Status != "" {
		filter["status"] = q.Status
	}

	total, err := r.coll(kind).CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count %s documents: %w", kind.Collection, err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}}).
		SetSkip(q.Skip).
		SetLimit(q.Limit)
	cursor, err := r.coll(kind).Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %s documents: %w", kind.Collection, err)
	}
	defer cursor.Close(ctx)

	var resources []models.ContentResource
	if err := cursor.All(ctx, &resources); err != nil {
		return nil, 0, fmt.Errorf("failed to decode %s documents: %w", kind.Collection, err)
	}
	return resources, total, nil
}

func (r *MongoResourceRepo) FindByIDActive(ctx context.Context, kind models.Kind, id string) (*models.ContentResource, error) {
	filter := activeFilter()
	filter["id"] = id

	var res models.ContentResource
	err := r.coll(kind).FindOne(ctx, filter).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s with id %s: %w", kind.Label, id, err)
	}
	return &res, nil
}

func (r *MongoResourceRepo) FindBySlugActive(ctx context.Context, kind models.Kind, slug, status string) (*models.ContentResource, error) {
	filter := activeFilter()
	filter["slug"] = slug
	if status != "" {
		filter["status"] = status
	}

	var res models.ContentResource
	err := r.coll(kind).FindOne(ctx, filter).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s with slug %s: %w", kind.Label, slug, err)
	}
	return &res, nil
}

func (r *MongoResourceRepo) SlugTaken(ctx context.Context, kind models.Kind, slug, excludeID string) (bool, error) {
	filter := activeFilter()
	filter["slug"] = slug
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	count, err := r.coll(kind).CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check slug %q: %w", slug, err)
	}
	return count > 0, nil
}

func (r *MongoResourceRepo) OrderTaken(ctx context.Context, kind models.Kind, order int, excludeID string) (bool, error) {
	filter := activeFilter()
	filter["order"] = order
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	count, err := r.coll(kind).CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check order %d: %w", order, err)
	}
	return count > 0, nil
}

func (r *MongoResourceRepo) IncrementViewCount(ctx context.Context, kind models.Kind, id string) error {
	update := bson.M{"$inc": bson.M{"views": 1}}
	_, err := r.coll(kind).UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to increment views for %s %s: %w", kind.Label, id, err)
	}
	return nil
}
