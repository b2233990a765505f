package siteRepo

import (
	"context"
	"fmt"
	"time"

	"ablecare/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoBannerRepo) FindActive(ctx context.Context, status string) ([]models.Banner, error) {
	filter := bson.M{"isDeleted": false}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	defer cursor.Close(ctx)

	var banners []models.Banner
	if err := cursor.All(ctx, &banners); err != nil {
		return nil, fmt.Errorf("failed to decode banners: %w", err)
	}
	return banners, nil
}

func (r *mongoBannerRepo) FindByIDActive(ctx context.Context, id string) (*models.Banner, error) {
	var banner models.Banner
	err := r.coll.FindOne(ctx, bson.M{"id": id, "isDeleted": false}).Decode(&banner)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch banner with id %s: %w", id, err)
	}
	return &banner, nil
}

func (r *mongoBannerRepo) Insert(ctx context.Context, banner *models.Banner) error {
	if banner.ID == "" {
		banner.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	banner.CreatedAt = now
	banner.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, banner); err != nil {
		return fmt.Errorf("failed to insert banner: %w", err)
	}
	return nil
}

func (r *mongoBannerRepo) Replace(ctx context.Context, banner *models.Banner) (bool, error) {
	banner.UpdatedAt = time.Now().UTC()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": banner.ID, "isDeleted": false}, banner)
	if err != nil {
		return false, fmt.Errorf("failed to replace banner with id %s: %w", banner.ID, err)
	}
	return result.MatchedCount > 0, nil
}

func (r *mongoBannerRepo) SoftDelete(ctx context.Context, id string) (bool, error) {
	update := bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": time.Now().UTC()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "isDeleted": false}, update)
	if err != nil {
		return false, fmt.Errorf("failed to soft delete banner with id %s: %w", id, err)
	}
	return result.ModifiedCount > 0, nil
}
