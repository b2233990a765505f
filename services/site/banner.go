package site

import (
	"context"
	"fmt"
	"strings"

	"ablecare/models"
	"ablecare/services/resource"

	"github.com/google/uuid"
)

func (s *DefaultSiteService) ListBanners(ctx context.Context, status string) ([]models.Banner, error) {
	banners, err := s.Banners.FindActive(ctx, status)
	if err != nil {
		return nil, resource.UpstreamError{Op: "list banners", Err: err}
	}
	return banners, nil
}

func (s *DefaultSiteService) ActiveBanners(ctx context.Context) ([]models.Banner, error) {
	return s.ListBanners(ctx, models.StatusActive)
}

func (s *DefaultSiteService) CreateBanner(ctx context.Context, in BannerInput) (*models.Banner, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.Image == nil {
		return nil, resource.ValidationError{Message: "banner image is required"}
	}

	key := fmt.Sprintf("banners/%s", uuid.New().String())
	imageURL, err := s.Assets.Upload(ctx, in.Image, key)
	if err != nil {
		return nil, resource.UpstreamError{Op: "upload banner image", Err: err}
	}

	banner := &models.Banner{
		Title:     in.Title,
		Subtitle:  in.Subtitle,
		Image:     imageURL,
		LinkURL:   in.LinkURL,
		Order:     in.Order,
		Status:    in.Status,
		IsDeleted: false,
	}
	if err := s.Banners.Insert(ctx, banner); err != nil {
		return nil, resource.UpstreamError{Op: "persist banner", Err: err}
	}
	return banner, nil
}

func (s *DefaultSiteService) UpdateBanner(ctx context.Context, id string, in BannerInput) (*models.Banner, error) {
	existing, err := s.Banners.FindByIDActive(ctx, id)
	if err != nil {
		return nil, resource.UpstreamError{Op: "load banner", Err: err}
	}
	if existing == nil {
		return nil, resource.NotFoundError{Label: "banner"}
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	imageURL := existing.Image
	if in.ExistingImage != "" {
		imageURL = in.ExistingImage
	}
	if in.Image != nil {
		key := fmt.Sprintf("banners/%s", existing.ID)
		url, err := s.Assets.Upload(ctx, in.Image, key)
		if err != nil {
			return nil, resource.UpstreamError{Op: "upload banner image", Err: err}
		}
		imageURL = url
	}

	existing.Title = in.Title
	existing.Subtitle = in.Subtitle
	existing.Image = imageURL
	existing.LinkURL = in.LinkURL
	existing.Order = in.Order
	existing.Status = in.Status

	matched, err := s.Banners.Replace(ctx, existing)
	if err != nil {
		return nil, resource.UpstreamError{Op: "persist banner", Err: err}
	}
	if !matched {
		return nil, resource.NotFoundError{Label: "banner"}
	}
	return existing, nil
}

func (s *DefaultSiteService) DeleteBanner(ctx context.Context, id string) error {
	matched, err := s.Banners.SoftDelete(ctx, id)
	if err != nil {
		return resource.UpstreamError{Op: "delete banner", Err: err}
	}
	if !matched {
		return resource.NotFoundError{Label: "banner"}
	}
	return nil
}

func (in *BannerInput) validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Subtitle = strings.TrimSpace(in.Subtitle)
	if in.Title == "" {
		return resource.ValidationError{Message: "banner title is required"}
	}
	if in.Status == "" {
		in.Status = models.StatusActive
	}
	if in.Status != models.StatusActive && in.Status != models.StatusInactive {
		return resource.ValidationError{Message: fmt.Sprintf("invalid status %q", in.Status)}
	}
	return nil
}
