package resourceRepo

import (
	"context"
	"fmt"
	"time"

	"ablecare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the indexes backing lookups and the uniqueness
// invariants. Slug and order are unique only among non-deleted documents, so
// both use a partial filter on isDeleted.
func (r *MongoResourceRepo) ensureIndexes(kind models.Kind) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	notDeleted := bson.M{"isDeleted": false}

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(notDeleted),
		},
		{
			Keys:    bson.D{{Key: "order", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(notDeleted),
		},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "order", Value: 1}}},
	}

	if _, err := r.coll(kind).Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
