package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbeaumont/folio/internal/db"
	"github.com/nbeaumont/folio/internal/domain"
	"github.com/nbeaumont/folio/internal/mediastore"
	"github.com/nbeaumont/folio/internal/store"
)

type mediaCall struct {
	Handle string
	Kind   mediastore.Kind
}

// stubMediaStore records uploads and deletes. Objects are keyed kind/handle,
// mirroring how the real adapter namespaces keys, so a delete with the wrong
// kind removes nothing.
type stubMediaStore struct {
	mu        sync.Mutex
	counter   int
	objects   map[string][]byte
	deletes   []mediaCall
	uploadErr error
	// failDeleteHandle makes Delete error for one specific handle.
	failDeleteHandle string
}

func newStubMediaStore() *stubMediaStore {
	return &stubMediaStore{objects: make(map[string][]byte)}
}

func (m *stubMediaStore) Upload(_ context.Context, r io.Reader, kind mediastore.Kind, format string) (*mediastore.Asset, error) {
	if m.uploadErr != nil {
		return nil, m.uploadErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	handle := fmt.Sprintf("asset_%d.%s", m.counter, format)
	m.objects[string(kind)+"/"+handle] = data
	return &mediastore.Asset{
		URL:            "https://cdn.test/" + string(kind) + "/" + handle,
		DeletionHandle: handle,
	}, nil
}

func (m *stubMediaStore) Delete(_ context.Context, handle string, kind mediastore.Kind) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if handle == m.failDeleteHandle {
		return &domain.MediaError{Op: "delete", Err: errors.New("host unreachable")}
	}
	m.deletes = append(m.deletes, mediaCall{Handle: handle, Kind: kind})
	delete(m.objects, string(kind)+"/"+handle)
	return nil
}

func (m *stubMediaStore) objectCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

func newTestService(t *testing.T) (*GalleryService, *stubMediaStore) {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	media := newStubMediaStore()
	svc := NewGalleryService(
		store.NewRenderStore(d),
		store.NewModelStore(d),
		store.NewMessageStore(d),
		media,
		slog.Default(),
	)
	return svc, media
}

func TestUploadRenderCreatesRecord(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	render, err := svc.UploadRender(ctx, "Sunset", "Test", []byte("jpegdata"), "jpg")
	require.NoError(t, err)
	assert.NotEmpty(t, render.ID)
	assert.Equal(t, "Sunset", render.Title)
	assert.Equal(t, "Test", render.Subtitle)
	assert.NotEmpty(t, render.ImageURL)
	assert.NotEmpty(t, render.CloudinaryID)
	assert.Zero(t, render.Order)

	renders, err := svc.ListRenders(ctx)
	require.NoError(t, err)
	require.Len(t, renders, 1)
	assert.Equal(t, render.ID, renders[0].ID)
}

func TestSaveRenderRequiresURLAndHandle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	var validation *domain.ValidationError

	_, err := svc.SaveRender(ctx, "t", "s", "", "handle")
	assert.ErrorAs(t, err, &validation)

	_, err = svc.SaveRender(ctx, "t", "s", "https://cdn.test/x.jpg", "")
	assert.ErrorAs(t, err, &validation)

	renders, err := svc.ListRenders(ctx)
	require.NoError(t, err)
	assert.Empty(t, renders)
}

func TestDeleteRenderMissingMakesNoMediaCall(t *testing.T) {
	svc, media := newTestService(t)

	err := svc.DeleteRender(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, media.deletes)
}

func TestDeleteRenderRemovesRowAndBinary(t *testing.T) {
	svc, media := newTestService(t)
	ctx := context.Background()

	render, err := svc.UploadRender(ctx, "Sunset", "", []byte("jpegdata"), "jpg")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRender(ctx, render.ID))

	require.Len(t, media.deletes, 1)
	assert.Equal(t, render.CloudinaryID, media.deletes[0].Handle)
	assert.Equal(t, mediastore.KindImage, media.deletes[0].Kind)

	renders, err := svc.ListRenders(ctx)
	require.NoError(t, err)
	assert.Empty(t, renders)
}

func TestUploadModelWithThumbnail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	model, err := svc.UploadModel(ctx, "Chair", []byte("glbdata"), "glb", []byte("pngdata"), "png")
	require.NoError(t, err)
	assert.Equal(t, "glb", model.Type)
	require.NotNil(t, model.ThumbnailURL)
	require.NotNil(t, model.ThumbnailCloudinaryID)
}

func TestDeleteModelDeletesBothAssetsWithCorrectKinds(t *testing.T) {
	svc, media := newTestService(t)
	ctx := context.Background()

	model, err := svc.UploadModel(ctx, "Chair", []byte("glbdata"), "glb", []byte("pngdata"), "png")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteModel(ctx, model.ID))

	require.Len(t, media.deletes, 2)
	assert.Equal(t, model.CloudinaryID, media.deletes[0].Handle)
	assert.Equal(t, mediastore.KindRaw, media.deletes[0].Kind)
	assert.Equal(t, *model.ThumbnailCloudinaryID, media.deletes[1].Handle)
	assert.Equal(t, mediastore.KindImage, media.deletes[1].Kind)

	models, err := svc.ListModels(ctx)
	require.NoError(t, err)
	assert.Empty(t, models)
}

func TestDeleteModelThumbnailFailureStillRemovesRow(t *testing.T) {
	svc, media := newTestService(t)
	ctx := context.Background()

	model, err := svc.UploadModel(ctx, "Chair", []byte("glbdata"), "glb", []byte("pngdata"), "png")
	require.NoError(t, err)

	media.failDeleteHandle = *model.ThumbnailCloudinaryID

	require.NoError(t, svc.DeleteModel(ctx, model.ID))

	// Primary asset deleted, row gone, only the thumbnail left behind.
	require.Len(t, media.deletes, 1)
	assert.Equal(t, mediastore.KindRaw, media.deletes[0].Kind)

	models, err := svc.ListModels(ctx)
	require.NoError(t, err)
	assert.Empty(t, models)
}

func TestSaveModelThumbnailPairAllOrNothing(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	thumbURL := "https://cdn.test/image/t.png"
	_, err := svc.SaveModel(ctx, "Chair", "https://cdn.test/raw/c.glb", "c.glb", &thumbURL, nil)
	var validation *domain.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestCreateMessageValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name, email, message string
	}{
		{"", "a@example.com", "hi"},
		{"Ada", "", "hi"},
		{"Ada", "a@example.com", ""},
		{"  ", "a@example.com", "hi"},
	}
	for _, tc := range cases {
		_, err := svc.CreateMessage(ctx, tc.name, tc.email, tc.message)
		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
	}

	messages, err := svc.ListMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

// failingRenderRepo errors on Create, simulating a store outage after the
// media upload already succeeded.
type failingRenderRepo struct {
	renderRepository
}

func (f *failingRenderRepo) Create(context.Context, string, string, string, string, int) (*domain.Render, error) {
	return nil, &domain.StoreError{Op: "create render", Err: errors.New("store down")}
}

func TestUploadRenderInsertFailureOrphansAsset(t *testing.T) {
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	media := newStubMediaStore()
	svc := NewGalleryService(
		&failingRenderRepo{renderRepository: store.NewRenderStore(d)},
		store.NewModelStore(d),
		store.NewMessageStore(d),
		media,
		slog.Default(),
	)

	_, err = svc.UploadRender(context.Background(), "Sunset", "", []byte("jpegdata"), "jpg")
	require.Error(t, err)

	// The binary stays in the media host: no compensating delete.
	assert.Equal(t, 1, media.objectCount())
	assert.Empty(t, media.deletes)
}
