package siteRepo

import (
	"context"
	"fmt"
	"time"

	"ablecare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The settings and contact collections hold at most one document each, keyed
// by a fixed marker so saves can upsert in place.
const singletonKey = "default"

func (r *mongoPageRepo) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.settings.FindOne(ctx, bson.M{"key": singletonKey}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch site settings: %w", err)
	}
	return &settings, nil
}

func (r *mongoPageRepo) SaveSettings(ctx context.Context, settings *models.SiteSettings) error {
	settings.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"key":             singletonKey,
		"siteName":        settings.SiteName,
		"tagline":         settings.Tagline,
		"logoUrl":         settings.LogoURL,
		"faviconUrl":      settings.FaviconURL,
		"footerText":      settings.FooterText,
		"maintenanceMode": settings.MaintenanceMode,
		"updatedAt":       settings.UpdatedAt,
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := r.settings.UpdateOne(ctx, bson.M{"key": singletonKey}, update, opts); err != nil {
		return fmt.Errorf("failed to save site settings: %w", err)
	}
	return nil
}

func (r *mongoPageRepo) GetContact(ctx context.Context) (*models.ContactInfo, error) {
	var contact models.ContactInfo
	err := r.contact.FindOne(ctx, bson.M{"key": singletonKey}).Decode(&contact)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contact info: %w", err)
	}
	return &contact, nil
}

func (r *mongoPageRepo) SaveContact(ctx context.Context, contact *models.ContactInfo) error {
	contact.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"key":         singletonKey,
		"phone":       contact.Phone,
		"email":       contact.Email,
		"address":     contact.Address,
		"hours":       contact.Hours,
		"mapEmbedUrl": contact.MapEmbedURL,
		"socialLinks": contact.SocialLinks,
		"updatedAt":   contact.UpdatedAt,
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := r.contact.UpdateOne(ctx, bson.M{"key": singletonKey}, update, opts); err != nil {
		return fmt.Errorf("failed to save contact info: %w", err)
	}
	return nil
}

func (r *mongoPageRepo) GetSEOPage(ctx context.Context, page string) (*models.SEOPage, error) {
	var seo models.SEOPage
	err := r.seo.FindOne(ctx, bson.M{"page": page}).Decode(&seo)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch SEO metadata for page %s: %w", page, err)
	}
	return &seo, nil
}

func (r *mongoPageRepo) SaveSEOPage(ctx context.Context, seo *models.SEOPage) error {
	seo.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"page":        seo.Page,
		"title":       seo.Title,
		"description": seo.Description,
		"keywords":    seo.Keywords,
		"updatedAt":   seo.UpdatedAt,
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := r.seo.UpdateOne(ctx, bson.M{"page": seo.Page}, update, opts); err != nil {
		return fmt.Errorf("failed to save SEO metadata for page %s: %w", seo.Page, err)
	}
	return nil
}
