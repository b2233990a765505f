package storage

import (
	"context"
	"io"
)

// AssetStore is the contract for the external image host. Uploads are keyed
// by a caller-chosen public ID (namespaced by resource kind and slug) and
// return the permanent delivery URL. Deletes are best-effort cleanup by key.
type AssetStore interface {
	Upload(ctx context.Context, file io.Reader, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
