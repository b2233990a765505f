package resource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	resourceRepo "ablecare/database/repository/resource"
	"ablecare/models"
)

// fakeRepo is an in-memory ResourceRepository keyed by collection name.
type fakeRepo struct {
	docs      map[string][]*models.ContentResource
	nextID    int
	insertErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{docs: map[string][]*models.ContentResource{}}
}

func (r *fakeRepo) get(kind models.Kind, id string) *models.ContentResource {
	for _, d := range r.docs[kind.Collection] {
		if d.ID == id {
			return d
		}
	}
	return nil
}

func (r *fakeRepo) FindActive(_ context.Context, kind models.Kind, q resourceRepo.ListQuery) ([]models.ContentResource, int64, error) {
	var matched []*models.ContentResource
	for _, d := range r.docs[kind.Collection] {
		if d.IsDeleted {
			continue
		}
		if q.Status != "" && d.Status != q.Status {
			continue
		}
		matched = append(matched, d)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Order != matched[j].Order {
			return matched[i].Order < matched[j].Order
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))
	if q.Skip > 0 {
		if q.Skip >= total {
			matched = nil
		} else {
			matched = matched[q.Skip:]
		}
	}
	if q.Limit > 0 && int64(len(matched)) > q.Limit {
		matched = matched[:q.Limit]
	}
	page := make([]models.ContentResource, len(matched))
	for i, d := range matched {
		page[i] = *d
	}
	return page, total, nil
}

func (r *fakeRepo) FindByIDActive(_ context.Context, kind models.Kind, id string) (*models.ContentResource, error) {
	for _, d := range r.docs[kind.Collection] {
		if d.ID == id && !d.IsDeleted {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) FindBySlugActive(_ context.Context, kind models.Kind, slug, status string) (*models.ContentResource, error) {
	for _, d := range r.docs[kind.Collection] {
		if d.Slug == slug && !d.IsDeleted && (status == "" || d.Status == status) {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) SlugTaken(_ context.Context, kind models.Kind, slug, excludeID string) (bool, error) {
	for _, d := range r.docs[kind.Collection] {
		if d.Slug == slug && !d.IsDeleted && d.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) OrderTaken(_ context.Context, kind models.Kind, order int, excludeID string) (bool, error) {
	for _, d := range r.docs[kind.Collection] {
		if d.Order == order && !d.IsDeleted && d.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) Insert(_ context.Context, kind models.Kind, res *models.ContentResource) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.nextID++
	res.ID = fmt.Sprintf("res-%d", r.nextID)
	now := time.Now().UTC()
	res.CreatedAt = now
	res.UpdatedAt = now
	cp := *res
	r.docs[kind.Collection] = append(r.docs[kind.Collection], &cp)
	return nil
}

func (r *fakeRepo) Replace(_ context.Context, kind models.Kind, res *models.ContentResource) (bool, error) {
	for _, d := range r.docs[kind.Collection] {
		if d.ID == res.ID && !d.IsDeleted {
			res.UpdatedAt = time.Now().UTC()
			*d = *res
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) SoftDelete(_ context.Context, kind models.Kind, id string) (bool, error) {
	for _, d := range r.docs[kind.Collection] {
		if d.ID == id && !d.IsDeleted {
			d.IsDeleted = true
			d.UpdatedAt = time.Now().UTC()
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) DeleteHard(_ context.Context, kind models.Kind, id string) (bool, error) {
	bucket := r.docs[kind.Collection]
	for i, d := range bucket {
		if d.ID == id {
			r.docs[kind.Collection] = append(bucket[:i], bucket[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) IncrementViewCount(_ context.Context, kind models.Kind, id string) error {
	for _, d := range r.docs[kind.Collection] {
		if d.ID == id {
			d.Views++
			return nil
		}
	}
	return errors.New("no such document")
}

// recordingStore is an AssetStore that records calls and serves
// deterministic URLs.
type recordingStore struct {
	uploads []string
	deleted []string
}

func (s *recordingStore) Upload(_ context.Context, _ io.Reader, publicID string) (string, error) {
	s.uploads = append(s.uploads, publicID)
	return s.url(publicID), nil
}

func (s *recordingStore) Delete(_ context.Context, publicID string) error {
	s.deleted = append(s.deleted, publicID)
	return nil
}

func (s *recordingStore) url(key string) string { return "https://cdn.test/" + key }

func newTestService() (*DefaultResourceService, *fakeRepo, *recordingStore) {
	repo := newFakeRepo()
	store := &recordingStore{}
	return &DefaultResourceService{Repo: repo, Assets: store}, repo, store
}

func createInput(name string, order int) CreateInput {
	return CreateInput{
		Name:        name,
		Description: "<p>Tailored support at home.</p>",
		Order:       order,
		CoverImage:  strings.NewReader("cover-bytes"),
	}
}

func TestCreateAssignsSlugAndDefaults(t *testing.T) {
	svc, repo, store := newTestService()

	res, err := svc.Create(context.Background(), models.KindService, createInput("Respite Care", 1))
	require.NoError(t, err)

	assert.Equal(t, "respite-care", res.Slug)
	assert.Equal(t, models.StatusActive, res.Status)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, int64(0), res.Views)
	assert.Equal(t, int64(0), res.Bookings)
	assert.Equal(t, store.url("services/respite-care/main"), res.Image)
	assert.Equal(t, []string{"services/respite-care/main"}, store.uploads)
	require.NotNil(t, repo.get(models.KindService, res.ID))
}

func TestCreateUploadsGalleryInOrder(t *testing.T) {
	svc, _, store := newTestService()

	in := createInput("Day Care", 1)
	in.GalleryImages = []io.Reader{strings.NewReader("a"), strings.NewReader("b")}

	res, err := svc.Create(context.Background(), models.KindService, in)
	require.NoError(t, err)

	assert.Equal(t, []string{
		store.url("services/day-care/gallery-1"),
		store.url("services/day-care/gallery-2"),
	}, res.Gallery)
}

func TestCreateRequiresCoverImage(t *testing.T) {
	svc, _, _ := newTestService()

	in := createInput("Respite Care", 1)
	in.CoverImage = nil

	_, err := svc.Create(context.Background(), models.KindService, in)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "cover image is required", verr.Message)
}

func TestCreateRequiresNameAndDescription(t *testing.T) {
	svc, _, _ := newTestService()

	in := createInput("   ", 1)
	_, err := svc.Create(context.Background(), models.KindService, in)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCreateRejectsDuplicateOrder(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, models.KindService, createInput("Respite Care", 1))
	require.NoError(t, err)

	_, err = svc.Create(ctx, models.KindService, createInput("Day Care", 1))
	var cerr ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "A service with order 1 already exists", cerr.Message)

	_, err = svc.Create(ctx, models.KindService, createInput("Day Care", 2))
	assert.NoError(t, err)
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, models.KindService, createInput("Day Care", 1))
	require.NoError(t, err)

	// Different raw name, same slug after normalization.
	_, err = svc.Create(ctx, models.KindService, createInput("Day  Care!", 2))
	var cerr ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "A service with this name already exists", cerr.Message)
}

func TestCreateKindsDoNotCollide(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, models.KindService, createInput("Respite Care", 1))
	require.NoError(t, err)

	// Same slug and order are fine in the other collection.
	_, err = svc.Create(ctx, models.KindSupportModel, createInput("Respite Care", 1))
	assert.NoError(t, err)
}

func TestCreateCompensatesFailedPersist(t *testing.T) {
	svc, repo, store := newTestService()
	repo.insertErr = errors.New("connection reset")

	in := createInput("Respite Care", 1)
	in.GalleryImages = []io.Reader{strings.NewReader("a")}

	_, err := svc.Create(context.Background(), models.KindService, in)
	var uerr UpstreamError
	require.ErrorAs(t, err, &uerr)

	assert.ElementsMatch(t, []string{
		"services/respite-care/main",
		"services/respite-care/gallery-1",
	}, store.deleted)
}

func TestUpdateAllowsOwnSlugAndOrder(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.KindService, createInput("Respite Care", 1))
	require.NoError(t, err)

	// Resubmitting the identical name and order must not conflict with itself.
	in := updateInputFrom(created)
	updated, err := svc.Update(ctx, models.KindService, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "respite-care", updated.Slug)
	assert.Equal(t, 1, updated.Order)
}

func TestUpdateKeepsStoredCoverWithoutUpload(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.KindService, createInput("Respite Care", 1))
	require.NoError(t, err)

	in := updateInputFrom(created)
	in.ExistingImage = ""
	updated, err := svc.Update(ctx, models.KindService, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, created.Image, updated.Image)
}

func TestUpdateReplacesCoverWithNewUpload(t *testing.T) {
	svc, _, store := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.KindService, createInput("Respite Care", 1))
	require.NoError(t, err)

	in := updateInputFrom(created)
	in.CoverImage = strings.NewReader("new-cover")
	updated, err := svc.Update(ctx, models.KindService, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, store.url("services/respite-care/main"), updated.Image)
}

func TestUpdateGalleryRetainAndAppend(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	in := createInput("Respite Care", 1)
	in.GalleryImages = []io.Reader{strings.NewReader("a"), strings.NewReader("b")}
	created, err := svc.Create(ctx, models.KindService, in)
	require.NoError(t, err)
	require.Len(t, created.Gallery, 2)

	up := updateInputFrom(created)
	up.ExistingGallery = []string{created.Gallery[0]} // drop the second image
	up.NewGalleryImages = []io.Reader{strings.NewReader("c")}

	updated, err := svc.Update(ctx, models.KindService, created.ID, up)
	require.NoError(t, err)
	require.Len(t, updated.Gallery, 2)
	assert.Equal(t, created.Gallery[0], updated.Gallery[0])
	assert.Contains(t, updated.Gallery[1], "/gallery-")
	assert.NotEqual(t, created.Gallery[1], updated.Gallery[1])
}

func TestUpdateDropsEphemeralURLs(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	in := createInput("Respite Care", 1)
	in.GalleryImages = []io.Reader{strings.NewReader("a")}
	created, err := svc.Create(ctx, models.KindService, in)
	require.NoError(t, err)

	up := updateInputFrom(created)
	up.ExistingImage = "blob:http://localhost/preview-1"
	up.ExistingGallery = []string{
		"blob:http://localhost/preview-2",
		created.Gallery[0],
		"data:image/png;base64,AAAA",
	}

	updated, err := svc.Update(ctx, models.KindService, created.ID, up)
	require.NoError(t, err)
	assert.Equal(t, created.Image, updated.Image, "blob cover reference must not replace the stored cover")
	assert.Equal(t, []string{created.Gallery[0]}, updated.Gallery)
}

func TestUpdateUnknownID(t *testing.T) {
	svc, _, _ := newTestService()

	in := UpdateInput{Name: "Respite Care", Description: "d"}
	_, err := svc.Update(context.Background(), models.KindService, "missing", in)
	var nerr NotFoundError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "service not found", nerr.Error())
}

func TestUpdateRenameOntoExistingSlug(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, models.KindService, createInput("Respite Care", 1))
	require.NoError(t, err)
	second, err := svc.Create(ctx, models.KindService, createInput("Day Care", 2))
	require.NoError(t, err)

	in := updateInputFrom(second)
	in.Name = "Respite Care"
	_, err = svc.Update(ctx, models.KindService, second.ID, in)
	var cerr ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "A service with this name already exists", cerr.Message)
}

func TestDeleteIsTerminal(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.KindService, createInput("Respite Care", 1))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, models.KindService, created.ID))

	var nerr NotFoundError
	assert.ErrorAs(t, svc.Delete(ctx, models.KindService, created.ID), &nerr)

	_, err = svc.GetBySlug(ctx, models.KindService, "respite-care")
	assert.ErrorAs(t, err, &nerr)

	_, err = svc.Update(ctx, models.KindService, created.ID, updateInputFrom(created))
	assert.ErrorAs(t, err, &nerr)
}

func TestDeleteFreesSlugAndOrder(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.KindService, createInput("Respite Care", 1))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, models.KindService, created.ID))

	// Both invariants only bind among live resources.
	_, err = svc.Create(ctx, models.KindService, createInput("Respite Care", 1))
	assert.NoError(t, err)
}

func TestGetBySlugIncrementsViews(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.KindService, createInput("Respite Care", 1))
	require.NoError(t, err)

	_, err = svc.GetBySlug(ctx, models.KindService, "respite-care")
	require.NoError(t, err)
	_, err = svc.GetBySlug(ctx, models.KindService, "respite-care")
	require.NoError(t, err)

	assert.Equal(t, int64(2), repo.get(models.KindService, created.ID).Views)
}

func TestGetBySlugSkipsInactive(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	in := createInput("Respite Care", 1)
	in.Status = models.StatusInactive
	_, err := svc.Create(ctx, models.KindService, in)
	require.NoError(t, err)

	_, err = svc.GetBySlug(ctx, models.KindService, "respite-care")
	var nerr NotFoundError
	assert.ErrorAs(t, err, &nerr)
}

func TestListActiveSortsAndPaginates(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	for i, name := range []string{"Community Access", "Respite Care", "Day Care"} {
		in := createInput(name, 3-i) // orders 3, 2, 1
		_, err := svc.Create(ctx, models.KindService, in)
		require.NoError(t, err)
	}
	inactive := createInput("Supported Living", 4)
	inactive.Status = models.StatusInactive
	_, err := svc.Create(ctx, models.KindService, inactive)
	require.NoError(t, err)

	page, meta, err := svc.ListActive(ctx, models.KindService, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Day Care", page[0].Name)
	assert.Equal(t, "Respite Care", page[1].Name)
	assert.Equal(t, int64(3), meta.TotalCount, "inactive resources are excluded")
	assert.Equal(t, 2, meta.TotalPages)
	assert.True(t, meta.HasNextPage)
	assert.False(t, meta.HasPrevPage)
}

func TestListClampsNonPositiveLimit(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	for i, name := range []string{"Respite Care", "Day Care", "Community Access"} {
		_, err := svc.Create(ctx, models.KindService, createInput(name, i+1))
		require.NoError(t, err)
	}

	// A malformed ?limit= parses to zero; the query must not become unbounded
	// and the metadata must describe the page actually returned.
	page, meta, err := svc.List(ctx, models.KindService, 1, 0, "")
	require.NoError(t, err)
	assert.Len(t, page, 1)
	assert.Equal(t, 1, meta.Limit)
	assert.Equal(t, int64(3), meta.TotalCount)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNextPage)

	page, meta, err = svc.List(ctx, models.KindService, 0, -7, "")
	require.NoError(t, err)
	assert.Len(t, page, 1)
	assert.Equal(t, 1, meta.CurrentPage)
	assert.Equal(t, 1, meta.Limit)
}

func TestListActiveClampsNonPositiveLimit(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	for i, name := range []string{"Respite Care", "Day Care", "Community Access"} {
		_, err := svc.Create(ctx, models.KindService, createInput(name, i+1))
		require.NoError(t, err)
	}

	page, meta, err := svc.ListActive(ctx, models.KindService, 1, 0)
	require.NoError(t, err)
	assert.Len(t, page, 1)
	assert.Equal(t, 1, meta.Limit)
	assert.Equal(t, int64(3), meta.TotalCount)
	assert.True(t, meta.HasNextPage)
}

func TestShortDescriptionLimitCountsRunes(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	// 150 two-byte runes stay under the 200-character cap even though the
	// byte length is 300.
	in := createInput("Respite Care", 1)
	in.ShortDescription = strings.Repeat("ü", 150)
	_, err := svc.Create(ctx, models.KindService, in)
	assert.NoError(t, err)

	over := createInput("Day Care", 2)
	over.ShortDescription = strings.Repeat("ü", 201)
	_, err = svc.Create(ctx, models.KindService, over)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "short description must be at most 200 characters", verr.Message)
}

func TestAdminListIncludesInactive(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, models.KindService, createInput("Respite Care", 1))
	require.NoError(t, err)
	inactive := createInput("Day Care", 2)
	inactive.Status = models.StatusInactive
	_, err = svc.Create(ctx, models.KindService, inactive)
	require.NoError(t, err)

	all, meta, err := svc.List(ctx, models.KindService, 1, 10, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, int64(2), meta.TotalCount)

	onlyInactive, _, err := svc.List(ctx, models.KindService, 1, 10, models.StatusInactive)
	require.NoError(t, err)
	require.Len(t, onlyInactive, 1)
	assert.Equal(t, "Day Care", onlyInactive[0].Name)
}

// updateInputFrom builds an update payload that resubmits the resource as-is.
func updateInputFrom(res *models.ContentResource) UpdateInput {
	return UpdateInput{
		Name:            res.Name,
		Description:     res.Description,
		Status:          res.Status,
		Order:           res.Order,
		Features:        res.Features,
		ExistingImage:   res.Image,
		ExistingGallery: append([]string(nil), res.Gallery...),
	}
}
