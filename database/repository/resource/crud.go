package resourceRepo

import (
	"context"
	"fmt"
	"time"

	"ablecare/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Insert persists a new resource document, assigning its ID and timestamps.
func (r *MongoResourceRepo) Insert(ctx context.Context, kind models.Kind, res *models.ContentResource) error {
	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	res.CreatedAt = now
	res.UpdatedAt = now

	_, err := r.coll(kind).InsertOne(ctx, res)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("failed to insert %s: %w", kind.Label, ErrDuplicateKey)
	}
	if err != nil {
		return fmt.Errorf("failed to insert %s: %w", kind.Label, err)
	}
	return nil
}

// Replace overwrites the non-deleted document matching res.ID.
func (r *MongoResourceRepo) Replace(ctx context.Context, kind models.Kind, res *models.ContentResource) (bool, error) {
	res.UpdatedAt = time.Now().UTC()

	filter := activeFilter()
	filter["id"] = res.ID
	result, err := r.coll(kind).ReplaceOne(ctx, filter, res)
	if mongo.IsDuplicateKeyError(err) {
		return false, fmt.Errorf("failed to replace %s with id %s: %w", kind.Label, res.ID, ErrDuplicateKey)
	}
	if err != nil {
		return false, fmt.Errorf("failed to replace %s with id %s: %w", kind.Label, res.ID, err)
	}
	return result.MatchedCount > 0, nil
}

// SoftDelete marks a document deleted without removing it.
func (r *MongoResourceRepo) SoftDelete(ctx context.Context, kind models.Kind, id string) (bool, error) {
	filter := activeFilter()
	filter["id"] = id
	update := bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": time.Now().UTC()}}
	result, err := r.coll(kind).UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to soft delete %s with id %s: %w", kind.Label, id, err)
	}
	return result.ModifiedCount > 0, nil
}

// DeleteHard permanently removes a document regardless of its deletion flag.
func (r *MongoResourceRepo) DeleteHard(ctx context.Context, kind models.Kind, id string) (bool, error) {
	result, err := r.coll(kind).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete %s with id %s: %w", kind.Label, id, err)
	}
	return result.DeletedCount > 0, nil
}
