package site

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ablecare/models"
	"ablecare/services/resource"
)

type fakeBannerRepo struct {
	banners []*models.Banner
	nextID  int
}

func (r *fakeBannerRepo) FindActive(_ context.Context, status string) ([]models.Banner, error) {
	var out []models.Banner
	for _, b := range r.banners {
		if b.IsDeleted {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBannerRepo) FindByIDActive(_ context.Context, id string) (*models.Banner, error) {
	for _, b := range r.banners {
		if b.ID == id && !b.IsDeleted {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeBannerRepo) Insert(_ context.Context, banner *models.Banner) error {
	r.nextID++
	banner.ID = fmt.Sprintf("banner-%d", r.nextID)
	cp := *banner
	r.banners = append(r.banners, &cp)
	return nil
}

func (r *fakeBannerRepo) Replace(_ context.Context, banner *models.Banner) (bool, error) {
	for _, b := range r.banners {
		if b.ID == banner.ID && !b.IsDeleted {
			*b = *banner
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBannerRepo) SoftDelete(_ context.Context, id string) (bool, error) {
	for _, b := range r.banners {
		if b.ID == id && !b.IsDeleted {
			b.IsDeleted = true
			return true, nil
		}
	}
	return false, nil
}

type recordingAssets struct {
	uploads []string
}

func (s *recordingAssets) Upload(_ context.Context, _ io.Reader, publicID string) (string, error) {
	s.uploads = append(s.uploads, publicID)
	return "https://cdn.test/" + publicID, nil
}

func (s *recordingAssets) Delete(_ context.Context, publicID string) error { return nil }

func TestBannerLifecycle(t *testing.T) {
	repo := &fakeBannerRepo{}
	store := &recordingAssets{}
	svc := &DefaultSiteService{Banners: repo, Assets: store}
	ctx := context.Background()

	t.Run("create requires a title and an image", func(t *testing.T) {
		_, err := svc.CreateBanner(ctx, BannerInput{Image: strings.NewReader("img")})
		var verr resource.ValidationError
		require.ErrorAs(t, err, &verr)

		_, err = svc.CreateBanner(ctx, BannerInput{Title: "Welcome"})
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "banner image is required", verr.Message)
	})

	var created *models.Banner
	t.Run("create uploads and defaults to active", func(t *testing.T) {
		var err error
		created, err = svc.CreateBanner(ctx, BannerInput{
			Title: "Welcome",
			Image: strings.NewReader("img"),
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatusActive, created.Status)
		assert.True(t, strings.HasPrefix(created.Image, "https://cdn.test/banners/"))
	})

	t.Run("update keeps the stored image without a new upload", func(t *testing.T) {
		updated, err := svc.UpdateBanner(ctx, created.ID, BannerInput{
			Title:  "Welcome Back",
			Status: models.StatusInactive,
		})
		require.NoError(t, err)
		assert.Equal(t, created.Image, updated.Image)
		assert.Equal(t, "Welcome Back", updated.Title)
	})

	t.Run("inactive banners are hidden from the public list", func(t *testing.T) {
		public, err := svc.ActiveBanners(ctx)
		require.NoError(t, err)
		assert.Empty(t, public)

		all, err := svc.ListBanners(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("delete is terminal", func(t *testing.T) {
		require.NoError(t, svc.DeleteBanner(ctx, created.ID))

		var nerr resource.NotFoundError
		assert.ErrorAs(t, svc.DeleteBanner(ctx, created.ID), &nerr)
		_, err := svc.UpdateBanner(ctx, created.ID, BannerInput{Title: "x"})
		assert.ErrorAs(t, err, &nerr)

		all, err := svc.ListBanners(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
