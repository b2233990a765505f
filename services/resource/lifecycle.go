package resource

import (
	"context"
	"errors"
	"fmt"
	"time"

	resourceRepo "ablecare/database/repository/resource"
	"ablecare/models"

	"go.uber.org/zap"
)

// List returns one admin page of non-deleted resources, optionally filtered
// by status, sorted by (order asc, createdAt desc).
func (s *DefaultResourceService) List(ctx context.Context, kind models.Kind, page, limit int, status string) ([]models.ContentResource, models.Pagination, error) {
	page, limit = clampPage(page, limit)
	skip, _ := Paginate(page, limit, 0)
	resources, total, err := s.Repo.FindActive(ctx, kind, resourceRepo.ListQuery{
		Status: status,
		Skip:   skip,
		Limit:  int64(limit),
	})
	if err != nil {
		return nil, models.Pagination{}, UpstreamError{Op: "list " + kind.Label + "s", Err: err}
	}
	_, meta := Paginate(page, limit, total)
	return resources, meta, nil
}

// Create validates the input, checks both uniqueness invariants, uploads the
// cover and gallery images, and persists the new resource. Validation always
// precedes uploads, uploads precede the write; if the write fails the
// uploaded assets are removed best-effort.
func (s *DefaultResourceService) Create(ctx context.Context, kind models.Kind, in CreateInput) (*models.ContentResource, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	slug := GenerateSlug(in.Name)
	if err := s.checkOrderUnique(ctx, kind, in.Order, ""); err != nil {
		return nil, err
	}
	if err := s.checkSlugUnique(ctx, kind, slug, ""); err != nil {
		return nil, err
	}

	coverKey := assetKey(kind, slug, "main")
	coverURL, err := s.Assets.Upload(ctx, in.CoverImage, coverKey)
	if err != nil {
		return nil, UpstreamError{Op: "upload cover image", Err: err}
	}
	uploaded := []string{coverKey}

	gallery := make([]string, 0, len(in.GalleryImages))
	for i, file := range in.GalleryImages {
		key := assetKey(kind, slug, fmt.Sprintf("gallery-%d", i+1))
		url, err := s.Assets.Upload(ctx, file, key)
		if err != nil {
			s.removeAssets(ctx, uploaded)
			return nil, UpstreamError{Op: "upload gallery image", Err: err}
		}
		uploaded = append(uploaded, key)
		gallery = append(gallery, url)
	}

	res := &models.ContentResource{
		Name:             in.Name,
		ShortDescription: in.ShortDescription,
		Description:      in.Description,
		Image:            coverURL,
		Gallery:          gallery,
		Features:         in.Features,
		Slug:             slug,
		Status:           in.Status,
		Order:            in.Order,
		SEOTitle:         in.SEOTitle,
		SEODescription:   in.SEODescription,
		SEOKeywords:      in.SEOKeywords,
		Views:            0,
		Bookings:         0,
		IsDeleted:        false,
	}
	if err := s.Repo.Insert(ctx, kind, res); err != nil {
		s.removeAssets(ctx, uploaded)
		if errors.Is(err, resourceRepo.ErrDuplicateKey) {
			return nil, ConflictError{Message: fmt.Sprintf("A %s with this name or order already exists", kind.Label)}
		}
		return nil, UpstreamError{Op: "persist " + kind.Label, Err: err}
	}

	s.Cache.Invalidate(ctx, kind)
	return res, nil
}

// Update loads the resource, re-validates both uniqueness invariants
// excluding the resource itself, resolves the cover and gallery, and
// overwrites all mutable fields.
func (s *DefaultResourceService) Update(ctx context.Context, kind models.Kind, id string, in UpdateInput) (*models.ContentResource, error) {
	existing, err := s.Repo.FindByIDActive(ctx, kind, id)
	if err != nil {
		return nil, UpstreamError{Op: "load " + kind.Label, Err: err}
	}
	if existing == nil {
		return nil, NotFoundError{Label: kind.Label}
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	if err := s.checkOrderUnique(ctx, kind, in.Order, id); err != nil {
		return nil, err
	}
	slug := GenerateSlug(in.Name)
	if slug != existing.Slug {
		if err := s.checkSlugUnique(ctx, kind, slug, id); err != nil {
			return nil, err
		}
	}

	var uploaded []string

	// Cover resolution: new upload wins, then the caller-retained URL, then
	// the stored one. The cover never becomes empty on update.
	coverURL := existing.Image
	if in.ExistingImage != "" {
		coverURL = in.ExistingImage
	}
	if in.CoverImage != nil {
		key := assetKey(kind, slug, "main")
		url, err := s.Assets.Upload(ctx, in.CoverImage, key)
		if err != nil {
			return nil, UpstreamError{Op: "upload cover image", Err: err}
		}
		uploaded = append(uploaded, key)
		coverURL = url
	}

	// The retained URLs express removal: anything the caller omitted is
	// dropped from the document. The assets themselves are not deleted.
	gallery := append([]string(nil), in.ExistingGallery...)
	stamp := time.Now().UnixMilli()
	for i, file := range in.NewGalleryImages {
		key := assetKey(kind, slug, fmt.Sprintf("gallery-%d-%d", stamp, i+1))
		url, err := s.Assets.Upload(ctx, file, key)
		if err != nil {
			s.removeAssets(ctx, uploaded)
			return nil, UpstreamError{Op: "upload gallery image", Err: err}
		}
		uploaded = append(uploaded, key)
		gallery = append(gallery, url)
	}

	existing.Name = in.Name
	existing.ShortDescription = in.ShortDescription
	existing.Description = in.Description
	existing.Image = coverURL
	existing.Gallery = gallery
	existing.Features = in.Features
	existing.Slug = slug
	existing.Status = in.Status
	existing.Order = in.Order
	existing.SEOTitle = in.SEOTitle
	existing.SEODescription = in.SEODescription
	existing.SEOKeywords = in.SEOKeywords

	matched, err := s.Repo.Replace(ctx, kind, existing)
	if err != nil {
		s.removeAssets(ctx, uploaded)
		if errors.Is(err, resourceRepo.ErrDuplicateKey) {
			return nil, ConflictError{Message: fmt.Sprintf("A %s with this name or order already exists", kind.Label)}
		}
		return nil, UpstreamError{Op: "persist " + kind.Label, Err: err}
	}
	if !matched {
		s.removeAssets(ctx, uploaded)
		return nil, NotFoundError{Label: kind.Label}
	}

	s.Cache.Invalidate(ctx, kind)
	return existing, nil
}

// Delete marks the resource deleted. Repeating the call reports not-found,
// and so does any later fetch; the record's asset store objects are left in
// place.
func (s *DefaultResourceService) Delete(ctx context.Context, kind models.Kind, id string) error {
	matched, err := s.Repo.SoftDelete(ctx, kind, id)
	if err != nil {
		return UpstreamError{Op: "delete " + kind.Label, Err: err}
	}
	if !matched {
		return NotFoundError{Label: kind.Label}
	}

	s.Cache.Invalidate(ctx, kind)
	return nil
}

func (s *DefaultResourceService) checkOrderUnique(ctx context.Context, kind models.Kind, order int, excludeID string) error {
	taken, err := s.Repo.OrderTaken(ctx, kind, order, excludeID)
	if err != nil {
		return UpstreamError{Op: "check order uniqueness", Err: err}
	}
	if taken {
		return ConflictError{Message: fmt.Sprintf("A %s with order %d already exists", kind.Label, order)}
	}
	return nil
}

func (s *DefaultResourceService) checkSlugUnique(ctx context.Context, kind models.Kind, slug, excludeID string) error {
	taken, err := s.Repo.SlugTaken(ctx, kind, slug, excludeID)
	if err != nil {
		return UpstreamError{Op: "check slug uniqueness", Err: err}
	}
	if taken {
		return ConflictError{Message: fmt.Sprintf("A %s with this name already exists", kind.Label)}
	}
	return nil
}

func assetKey(kind models.Kind, slug, name string) string {
	return fmt.Sprintf("%s/%s/%s", kind.Folder, slug, name)
}

// removeAssets compensates for a failed write after uploads succeeded.
// Failures are logged and swallowed; a leftover asset is preferable to
// masking the original error.
func (s *DefaultResourceService) removeAssets(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.Assets.Delete(ctx, key); err != nil {
			zap.L().Warn("failed to remove uploaded asset", zap.String("key", key), zap.Error(err))
		}
	}
}
