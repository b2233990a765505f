package site

import (
	"context"
	"strings"

	"ablecare/models"
	"ablecare/services/resource"
)

func (s *DefaultSiteService) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	settings, err := s.Pages.GetSettings(ctx)
	if err != nil {
		return nil, resource.UpstreamError{Op: "fetch site settings", Err: err}
	}
	if settings == nil {
		return nil, resource.NotFoundError{Label: "site settings"}
	}
	return settings, nil
}

func (s *DefaultSiteService) SaveSettings(ctx context.Context, in SettingsInput) (*models.SiteSettings, error) {
	settings := in.Settings
	settings.SiteName = strings.TrimSpace(settings.SiteName)
	if settings.SiteName == "" {
		return nil, resource.ValidationError{Message: "site name is required"}
	}

	if in.Logo != nil {
		url, err := s.Assets.Upload(ctx, in.Logo, "settings/logo")
		if err != nil {
			return nil, resource.UpstreamError{Op: "upload logo", Err: err}
		}
		settings.LogoURL = url
	}
	if in.Favicon != nil {
		url, err := s.Assets.Upload(ctx, in.Favicon, "settings/favicon")
		if err != nil {
			return nil, resource.UpstreamError{Op: "upload favicon", Err: err}
		}
		settings.FaviconURL = url
	}

	if err := s.Pages.SaveSettings(ctx, &settings); err != nil {
		return nil, resource.UpstreamError{Op: "persist site settings", Err: err}
	}
	return &settings, nil
}

func (s *DefaultSiteService) GetContact(ctx context.Context) (*models.ContactInfo, error) {
	contact, err := s.Pages.GetContact(ctx)
	if err != nil {
		return nil, resource.UpstreamError{Op: "fetch contact info", Err: err}
	}
	if contact == nil {
		return nil, resource.NotFoundError{Label: "contact info"}
	}
	return contact, nil
}

func (s *DefaultSiteService) SaveContact(ctx context.Context, contact models.ContactInfo) (*models.ContactInfo, error) {
	if err := s.Pages.SaveContact(ctx, &contact); err != nil {
		return nil, resource.UpstreamError{Op: "persist contact info", Err: err}
	}
	return &contact, nil
}

func (s *DefaultSiteService) GetSEOPage(ctx context.Context, page string) (*models.SEOPage, error) {
	seo, err := s.Pages.GetSEOPage(ctx, page)
	if err != nil {
		return nil, resource.UpstreamError{Op: "fetch SEO metadata", Err: err}
	}
	if seo == nil {
		return nil, resource.NotFoundError{Label: "SEO metadata"}
	}
	return seo, nil
}

func (s *DefaultSiteService) SaveSEOPage(ctx context.Context, seo models.SEOPage) (*models.SEOPage, error) {
	seo.Page = strings.TrimSpace(seo.Page)
	if seo.Page == "" {
		return nil, resource.ValidationError{Message: "page name is required"}
	}
	if err := s.Pages.SaveSEOPage(ctx, &seo); err != nil {
		return nil, resource.UpstreamError{Op: "persist SEO metadata", Err: err}
	}
	return &seo, nil
}
