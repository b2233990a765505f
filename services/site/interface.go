package site

import (
	"context"
	"io"

	siteRepo "ablecare/database/repository/site"
	"ablecare/models"
	"ablecare/services/storage"
)

// BannerInput is the validated form payload for creating or updating a
// banner.
type BannerInput struct {
	Title         string
	Subtitle      string
	LinkURL       string
	Order         int
	Status        string
	Image         io.Reader
	ExistingImage string
}

// SettingsInput carries the site-wide settings plus optional replacement
// logo and favicon files.
type SettingsInput struct {
	Settings models.SiteSettings
	Logo     io.Reader
	Favicon  io.Reader
}

// SiteService manages the single-or-keyed site content documents: banners,
// settings, contact info and static-page SEO metadata.
type SiteService interface {
	ListBanners(ctx context.Context, status string) ([]models.Banner, error)
	ActiveBanners(ctx context.Context) ([]models.Banner, error)
	CreateBanner(ctx context.Context, in BannerInput) (*models.Banner, error)
	UpdateBanner(ctx context.Context, id string, in BannerInput) (*models.Banner, error)
	DeleteBanner(ctx context.Context, id string) error

	GetSettings(ctx context.Context) (*models.SiteSettings, error)
	SaveSettings(ctx context.Context, in SettingsInput) (*models.SiteSettings, error)
	GetContact(ctx context.Context) (*models.ContactInfo, error)
	SaveContact(ctx context.Context, contact models.ContactInfo) (*models.ContactInfo, error)
	GetSEOPage(ctx context.Context, page string) (*models.SEOPage, error)
	SaveSEOPage(ctx context.Context, seo models.SEOPage) (*models.SEOPage, error)
}

// DefaultSiteService is the standard SiteService implementation.
type DefaultSiteService struct {
	Banners siteRepo.BannerRepository
	Pages   siteRepo.PageRepository
	Assets  storage.AssetStore
}
