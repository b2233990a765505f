package resource

import (
	"context"
	"io"

	resourceRepo "ablecare/database/repository/resource"
	"ablecare/models"
	"ablecare/services/storage"
)

// CreateInput is the validated form payload for creating a resource. The
// cover image is mandatory; there is nothing existing to fall back on.
type CreateInput struct {
	Name             string
	ShortDescription string
	Description      string
	Status           string
	Order            int
	Features         []string
	SEOTitle         string
	SEODescription   string
	SEOKeywords      string
	CoverImage       io.Reader
	GalleryImages    []io.Reader
}

// UpdateInput is the validated form payload for updating a resource. The
// cover image resolves new upload > ExistingImage > stored URL; the final
// gallery is ExistingGallery (retained URLs, in order) followed by one upload
// per NewGalleryImages entry.
type UpdateInput struct {
	Name             string
	ShortDescription string
	Description      string
	Status           string
	Order            int
	Features         []string
	SEOTitle         string
	SEODescription   string
	SEOKeywords      string
	CoverImage       io.Reader
	ExistingImage    string
	ExistingGallery  []string
	NewGalleryImages []io.Reader
}

// LifecycleService coordinates validation, slug generation, asset uploads and
// repository writes for the admin side of both resource kinds.
type LifecycleService interface {
	List(ctx context.Context, kind models.Kind, page, limit int, status string) ([]models.ContentResource, models.Pagination, error)
	Create(ctx context.Context, kind models.Kind, in CreateInput) (*models.ContentResource, error)
	Update(ctx context.Context, kind models.Kind, id string, in UpdateInput) (*models.ContentResource, error)
	Delete(ctx context.Context, kind models.Kind, id string) error
}

// PublicService serves the unauthenticated read-only mirror.
type PublicService interface {
	ListActive(ctx context.Context, kind models.Kind, page, limit int) ([]models.ContentResource, models.Pagination, error)
	// GetBySlug returns the active resource and increments its view counter
	// as a side effect of the read.
	GetBySlug(ctx context.Context, kind models.Kind, slug string) (*models.ContentResource, error)
}

// DefaultResourceService implements both LifecycleService and PublicService.
type DefaultResourceService struct {
	Repo   resourceRepo.ResourceRepository
	Assets storage.AssetStore
	Cache  *ListCache // optional; nil disables public list caching
}
