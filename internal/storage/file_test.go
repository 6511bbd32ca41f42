package storage_test

import (
	"context"
	"testing"

	"app/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_GetMissingKey(t *testing.T) {
	st, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)

	_, err = st.Get(context.Background(), storage.KeyCart)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFileStorage_SetGetOverwrite(t *testing.T) {
	ctx := context.Background()
	st, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, st.Set(ctx, storage.KeyCart, []byte(`[1]`)))
	b, err := st.Get(ctx, storage.KeyCart)
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(b))

	require.NoError(t, st.Set(ctx, storage.KeyCart, []byte(`[2]`)))
	b, err = st.Get(ctx, storage.KeyCart)
	require.NoError(t, err)
	assert.Equal(t, `[2]`, string(b))
}

func TestFileStorage_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, st.Set(ctx, storage.KeyFavorites, []byte(`[]`)))
	require.NoError(t, st.Delete(ctx, storage.KeyFavorites))
	require.NoError(t, st.Delete(ctx, storage.KeyFavorites))

	_, err = st.Get(ctx, storage.KeyFavorites)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
