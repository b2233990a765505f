package resource

import (
	"context"

	resourceRepo "ablecare/database/repository/resource"
	"ablecare/models"

	"go.uber.org/zap"
)

// ListActive returns one page of active, non-deleted resources for the
// public site. Pages are served from the Redis cache when possible.
func (s *DefaultResourceService) ListActive(ctx context.Context, kind models.Kind, page, limit int) ([]models.ContentResource, models.Pagination, error) {
	page, limit = clampPage(page, limit)
	if data, meta, ok := s.Cache.Get(ctx, kind, page, limit); ok {
		return data, meta, nil
	}

	skip, _ := Paginate(page, limit, 0)
	resources, total, err := s.Repo.FindActive(ctx, kind, resourceRepo.ListQuery{
		Status: models.StatusActive,
		Skip:   skip,
		Limit:  int64(limit),
	})
	if err != nil {
		return nil, models.Pagination{}, UpstreamError{Op: "list " + kind.Label + "s", Err: err}
	}
	_, meta := Paginate(page, limit, total)

	s.Cache.Set(ctx, kind, page, limit, resources, meta)
	return resources, meta, nil
}

// GetBySlug returns the active resource with the given slug and increments
// its view counter. A failed increment does not fail the read.
func (s *DefaultResourceService) GetBySlug(ctx context.Context, kind models.Kind, slug string) (*models.ContentResource, error) {
	res, err := s.Repo.FindBySlugActive(ctx, kind, slug, models.StatusActive)
	if err != nil {
		return nil, UpstreamError{Op: "fetch " + kind.Label, Err: err}
	}
	if res == nil {
		return nil, NotFoundError{Label: kind.Label}
	}

	if err := s.Repo.IncrementViewCount(ctx, kind, res.ID); err != nil {
		zap.L().Warn("failed to increment view count",
			zap.String("kind", kind.Name), zap.String("id", res.ID), zap.Error(err))
	}
	return res, nil
}
