package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbeaumont/folio/internal/db"
	"github.com/nbeaumont/folio/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestRenderStoreCreate(t *testing.T) {
	store := NewRenderStore(openTestDB(t))
	ctx := context.Background()

	render, err := store.Create(ctx, "Sunset", "Golden hour", "https://cdn.example.com/a.jpg", "a.jpg", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, render.ID)
	assert.Equal(t, "Sunset", render.Title)
	assert.Equal(t, "Golden hour", render.Subtitle)
	assert.Equal(t, "https://cdn.example.com/a.jpg", render.ImageURL)
	assert.Equal(t, "a.jpg", render.CloudinaryID)
	assert.Zero(t, render.Order)
	assert.False(t, render.CreatedAt.IsZero())
}

func TestRenderStoreGetByIDMissing(t *testing.T) {
	store := NewRenderStore(openTestDB(t))

	render, err := store.GetByID(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, render)
}

func TestRenderStoreListOrdering(t *testing.T) {
	store := NewRenderStore(openTestDB(t))
	ctx := context.Background()

	// Insert with sort keys 2, 1, 1 in that chronological order. The list
	// must come back sort key first, then oldest first within a key.
	last, err := store.Create(ctx, "last", "", "u1", "h1", 2)
	require.NoError(t, err)
	first, err := store.Create(ctx, "first", "", "u2", "h2", 1)
	require.NoError(t, err)
	second, err := store.Create(ctx, "second", "", "u3", "h3", 1)
	require.NoError(t, err)

	renders, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, renders, 3)
	assert.Equal(t, first.ID, renders[0].ID)
	assert.Equal(t, second.ID, renders[1].ID)
	assert.Equal(t, last.ID, renders[2].ID)
}

func TestRenderStoreDelete(t *testing.T) {
	store := NewRenderStore(openTestDB(t))
	ctx := context.Background()

	created, err := store.Create(ctx, "", "", "u", "h", 0)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))

	retrieved, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, retrieved)
}

func TestRenderStoreDeleteMissing(t *testing.T) {
	store := NewRenderStore(openTestDB(t))

	err := store.Delete(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRenderStoreIDsUnique(t *testing.T) {
	store := NewRenderStore(openTestDB(t))
	ctx := context.Background()

	a, err := store.Create(ctx, "", "", "u", "h", 0)
	require.NoError(t, err)
	b, err := store.Create(ctx, "", "", "u", "h", 0)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}
