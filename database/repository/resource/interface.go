package resourceRepo

import (
	"context"
	"errors"

	"ablecare/models"
)

// ErrDuplicateKey is returned when an insert or replace trips one of the
// partial unique indexes (slug or order among non-deleted documents). It is
// the database-level backstop behind the lifecycle service's uniqueness
// checks.
var ErrDuplicateKey = errors.New("duplicate key")

// ListQuery narrows a listing to a status and a page window.
type ListQuery struct {
	Status string // empty means any status
	Skip   int64
	Limit  int64
}

// ResourceRepository is the persistence contract consumed by the resource
// lifecycle service. All reads exclude soft-deleted documents.
type ResourceRepository interface {
	// FindActive returns one page of non-deleted resources sorted by
	// (order asc, createdAt desc) plus the total count for the filter.
	FindActive(ctx context.Context, kind models.Kind, q ListQuery) ([]models.ContentResource, int64, error)
	// FindByIDActive returns the non-deleted resource with the given id, or
	// nil when no such document exists.
	FindByIDActive(ctx context.Context, kind models.Kind, id string) (*models.ContentResource, error)
	// FindBySlugActive returns the non-deleted resource with the given slug
	// restricted to the given status (empty means any), or nil.
	FindBySlugActive(ctx context.Context, kind models.Kind, slug, status string) (*models.ContentResource, error)
	// SlugTaken reports whether another non-deleted resource already uses the
	// slug. excludeID is skipped (empty on create).
	SlugTaken(ctx context.Context, kind models.Kind, slug, excludeID string) (bool, error)
	// OrderTaken reports whether another non-deleted resource already uses the
	// order value. excludeID is skipped (empty on create).
	OrderTaken(ctx context.Context, kind models.Kind, order int, excludeID string) (bool, error)
	// Insert persists a new resource, assigning its ID and timestamps.
	Insert(ctx context.Context, kind models.Kind, res *models.ContentResource) error
	// Replace overwrites the non-deleted resource matching res.ID and bumps
	// UpdatedAt. It reports whether a document was matched.
	Replace(ctx context.Context, kind models.Kind, res *models.ContentResource) (bool, error)
	// SoftDelete marks the non-deleted resource as deleted. It reports whether
	// a document was matched.
	SoftDelete(ctx context.Context, kind models.Kind, id string) (bool, error)
	// DeleteHard permanently removes a document regardless of its deletion
	// flag. It reports whether a document was removed.
	DeleteHard(ctx context.Context, kind models.Kind, id string) (bool, error)
	// IncrementViewCount adds one to the resource's view counter.
	IncrementViewCount(ctx context.Context, kind models.Kind, id string) error
}
