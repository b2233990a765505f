package siteRepo

import (
	"context"

	"ablecare/database"
	"ablecare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BannerRepository persists homepage banners. Banners are soft-deleted.
type BannerRepository interface {
	FindActive(ctx context.Context, status string) ([]models.Banner, error)
	FindByIDActive(ctx context.Context, id string) (*models.Banner, error)
	Insert(ctx context.Context, banner *models.Banner) error
	Replace(ctx context.Context, banner *models.Banner) (bool, error)
	SoftDelete(ctx context.Context, id string) (bool, error)
}

// PageRepository persists the keyed single-document site content: settings,
// contact info and per-page SEO metadata. Every save is an upsert.
type PageRepository interface {
	GetSettings(ctx context.Context) (*models.SiteSettings, error)
	SaveSettings(ctx context.Context, settings *models.SiteSettings) error
	GetContact(ctx context.Context) (*models.ContactInfo, error)
	SaveContact(ctx context.Context, contact *models.ContactInfo) error
	GetSEOPage(ctx context.Context, page string) (*models.SEOPage, error)
	SaveSEOPage(ctx context.Context, seo *models.SEOPage) error
}

type mongoBannerRepo struct {
	coll *mongo.Collection
}

// NewMongoBannerRepo returns a new BannerRepository instance using MongoDB.
func NewMongoBannerRepo() BannerRepository {
	return &mongoBannerRepo{coll: database.DB().Collection("banners")}
}

type mongoPageRepo struct {
	settings *mongo.Collection
	contact  *mongo.Collection
	seo      *mongo.Collection
}

// NewMongoPageRepo returns a new PageRepository instance using MongoDB.
func NewMongoPageRepo() PageRepository {
	db := database.DB()
	return &mongoPageRepo{
		settings: db.Collection("site_settings"),
		contact:  db.Collection("contact_info"),
		seo:      db.Collection("seo_pages"),
	}
}
