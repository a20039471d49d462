package imagestore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStore(t *testing.T) {
	ctx := context.Background()

	t.Run("put then get roundtrips content and type", func(t *testing.T) {
		store, err := NewFSStore(t.TempDir())
		require.NoError(t, err)

		ref, err := store.Put(ctx, "sessions/abc/upload", []byte("jpeg bytes"), "image/jpeg")
		require.NoError(t, err)
		assert.Equal(t, "sessions/abc/upload.jpg", ref)

		data, contentType, err := store.Get(ctx, ref)
		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg bytes"), data)
		assert.Equal(t, "image/jpeg", contentType)
	})

	t.Run("overwrite replaces the blob", func(t *testing.T) {
		store, err := NewFSStore(t.TempDir())
		require.NoError(t, err)

		_, err = store.Put(ctx, "items/1/dish", []byte("v1"), "image/png")
		require.NoError(t, err)
		ref, err := store.Put(ctx, "items/1/dish", []byte("v2"), "image/png")
		require.NoError(t, err)

		data, _, err := store.Get(ctx, ref)
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), data)
	})

	t.Run("missing ref is ErrNotFound", func(t *testing.T) {
		store, err := NewFSStore(t.TempDir())
		require.NoError(t, err)

		_, _, err = store.Get(ctx, "nope.jpg")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		store, err := NewFSStore(t.TempDir())
		require.NoError(t, err)

		ref, err := store.Put(ctx, "items/2/dish", []byte("x"), "image/webp")
		require.NoError(t, err)
		require.NoError(t, store.Delete(ctx, ref))
		require.NoError(t, store.Delete(ctx, ref))

		_, _, err = store.Get(ctx, ref)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		store, err := NewFSStore(t.TempDir())
		require.NoError(t, err)

		_, err = store.Put(ctx, "../escape", []byte("x"), "image/png")
		assert.Error(t, err)
		_, _, err = store.Get(ctx, "../../etc/passwd")
		assert.Error(t, err)
		assert.Error(t, store.Delete(ctx, "../escape.png"))
	})
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".jpg", extensionFor("image/jpeg"))
	assert.Equal(t, ".png", extensionFor("image/png"))
	assert.Equal(t, ".webp", extensionFor("image/webp"))
	assert.Equal(t, ".bin", extensionFor("application/pdf"))
}
