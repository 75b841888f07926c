package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbeaumont/folio/internal/domain"
)

func TestModelStoreCreateDefaults(t *testing.T) {
	store := NewModelStore(openTestDB(t))
	ctx := context.Background()

	model, err := store.Create(ctx, "Chair", "https://cdn.example.com/c.glb", "c.glb", "", nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, model.ID)
	assert.Equal(t, "glb", model.Type)
	assert.Nil(t, model.ThumbnailURL)
	assert.Nil(t, model.ThumbnailCloudinaryID)
}

func TestModelStoreCreateWithThumbnail(t *testing.T) {
	store := NewModelStore(openTestDB(t))
	ctx := context.Background()

	thumbURL := "https://cdn.example.com/c.png"
	thumbID := "c.png"
	model, err := store.Create(ctx, "Chair", "u", "h", "glb", &thumbURL, &thumbID)
	require.NoError(t, err)
	require.NotNil(t, model.ThumbnailURL)
	require.NotNil(t, model.ThumbnailCloudinaryID)
	assert.Equal(t, thumbURL, *model.ThumbnailURL)
	assert.Equal(t, thumbID, *model.ThumbnailCloudinaryID)
}

func TestModelStoreCreateRejectsHalfThumbnail(t *testing.T) {
	store := NewModelStore(openTestDB(t))

	thumbURL := "https://cdn.example.com/c.png"
	_, err := store.Create(context.Background(), "Chair", "u", "h", "glb", &thumbURL, nil)
	var validation *domain.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestModelStoreListNewestFirst(t *testing.T) {
	store := NewModelStore(openTestDB(t))
	ctx := context.Background()

	older, err := store.Create(ctx, "older", "u1", "h1", "glb", nil, nil)
	require.NoError(t, err)
	newer, err := store.Create(ctx, "newer", "u2", "h2", "glb", nil, nil)
	require.NoError(t, err)

	models, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, newer.ID, models[0].ID)
	assert.Equal(t, older.ID, models[1].ID)
}

func TestModelStoreDeleteMissing(t *testing.T) {
	store := NewModelStore(openTestDB(t))

	err := store.Delete(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
