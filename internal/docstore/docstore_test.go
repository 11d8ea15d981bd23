package docstore

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapshelf/service/internal/photo"
)

var _ photo.DocumentStore = (*Memory)(nil)
var _ photo.DocumentStore = (*Postgres)(nil)
var _ photo.DocumentStore = (*Firestore)(nil)

func TestMemoryInsertGetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	p := &photo.Photo{
		FileName:   "photo20240101T000000.000000000.jpg",
		ServingURL: "/blobs/photos/photo20240101T000000.000000000.jpg",
		UploadDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, m.Insert(ctx, p))
	require.NotEmpty(t, p.ID)

	got, err := m.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, *p, *got)

	require.NoError(t, m.Delete(ctx, p.ID))

	_, err = m.Get(ctx, p.ID)
	assert.ErrorIs(t, err, photo.ErrNotFound)
	assert.ErrorIs(t, m.Delete(ctx, p.ID), photo.ErrNotFound)
}

func TestMemoryKeys(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, "not-a-key")
	assert.ErrorIs(t, err, photo.ErrInvalidKey)

	_, err = m.Get(ctx, "")
	assert.ErrorIs(t, err, photo.ErrInvalidKey)

	assert.ErrorIs(t, m.Delete(ctx, "agxzfmFwcGVuZ2luZXIQCxIFUGhvdG8YgICAgICAgAoM"), photo.ErrInvalidKey)

	_, err = m.Get(ctx, uuid.NewString())
	assert.ErrorIs(t, err, photo.ErrNotFound)
}

func TestMemoryKeyIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	p := &photo.Photo{FileName: "photo.jpg"}
	require.NoError(t, m.Insert(ctx, p))

	got, err := m.Get(ctx, strings.ToUpper(p.ID))
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestMemoryListOldestFirst(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, offset := range []time.Duration{2 * time.Second, 0, time.Second} {
		require.NoError(t, m.Insert(ctx, &photo.Photo{
			FileName:   "photo" + offset.String() + ".jpg",
			UploadDate: base.Add(offset),
		}))
	}

	photos, err := m.List(ctx)
	require.NoError(t, err)
	require.Len(t, photos, 3)
	assert.Equal(t, "photo0s.jpg", photos[0].FileName)
	assert.Equal(t, "photo1s.jpg", photos[1].FileName)
	assert.Equal(t, "photo2s.jpg", photos[2].FileName)
}

func TestValidateDocumentID(t *testing.T) {
	valid := []string{"abc", "Zx81kq0aPqL2", strings.Repeat("a", maxDocumentIDBytes), "__x"}
	for _, id := range valid {
		assert.NoError(t, validateDocumentID(id), id)
	}

	invalid := []string{"", "a/b", ".", "..", "__reserved__", "\xff", "ok\xc3", strings.Repeat("a", maxDocumentIDBytes+1)}
	for _, id := range invalid {
		assert.ErrorIs(t, validateDocumentID(id), photo.ErrInvalidKey, id)
	}
}
