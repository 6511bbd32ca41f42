package store_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"app/internal/domain/model"
	"app/internal/storage"
	"app/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rate = int64(25000)

func newFileStore(t *testing.T) (*store.Store, string) {
	t.Helper()

	dir := t.TempDir()
	st, err := storage.NewFileStorage(dir)
	require.NoError(t, err)

	return store.New(context.Background(), st, rate), dir
}

func product(id int64, title string, price float64) model.Product {
	return model.Product{ID: id, Title: title, Price: price}
}

func TestStore_AddTwiceMergesIntoOneLine(t *testing.T) {
	ctx := context.Background()
	s, _ := newFileStore(t)

	p := product(1, "Coffee", 4)
	s.AddToCart(ctx, p)
	s.AddToCart(ctx, p)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, int64(1), cart[0].ID)
	assert.Equal(t, int64(2), cart[0].Quantity)
	assert.Equal(t, int64(100000), cart[0].DisplayPrice)
}

// 表示価格は追加時点で固定。あとからカタログ価格が変わっても動かない。
func TestStore_DisplayPriceFrozenAtAddTime(t *testing.T) {
	ctx := context.Background()
	s, _ := newFileStore(t)

	p := product(1, "Coffee", 4)
	s.AddToCart(ctx, p)

	p.Price = 8
	s.AddToCart(ctx, p)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, int64(100000), cart[0].DisplayPrice)
}

func TestStore_RemoveNonexistentIsNoop(t *testing.T) {
	ctx := context.Background()
	s, _ := newFileStore(t)

	s.AddToCart(ctx, product(1, "Coffee", 4))
	s.RemoveFromCart(ctx, 999)

	assert.Len(t, s.Cart(), 1)
}

func TestStore_RemoveDeletesLine(t *testing.T) {
	ctx := context.Background()
	s, _ := newFileStore(t)

	s.AddToCart(ctx, product(1, "Coffee", 4))
	s.AddToCart(ctx, product(2, "Tea", 2))
	s.RemoveFromCart(ctx, 1)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, int64(2), cart[0].ID)
}

func TestStore_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	s, _ := newFileStore(t)

	s.AddToCart(ctx, product(1, "Coffee", 4))
	s.UpdateQuantity(ctx, 1, 5)

	assert.Equal(t, int64(5), s.Cart()[0].Quantity)

	// 対象が無ければ何も起きない
	s.UpdateQuantity(ctx, 999, 3)
	assert.Len(t, s.Cart(), 1)
}

func TestStore_ToggleFavoriteTwiceRestores(t *testing.T) {
	ctx := context.Background()
	s, _ := newFileStore(t)

	p := product(1, "Coffee", 4)

	s.ToggleFavorite(ctx, p)
	assert.True(t, s.IsFavorite(1))
	require.Len(t, s.Favorites(), 1)
	assert.True(t, s.Favorites()[0].Favorite)

	s.ToggleFavorite(ctx, p)
	assert.False(t, s.IsFavorite(1))
	assert.Empty(t, s.Favorites())
}

func TestStore_CartTotalAndCount(t *testing.T) {
	ctx := context.Background()
	s, _ := newFileStore(t)

	s.AddToCart(ctx, product(1, "Coffee", 4)) // 100000
	s.AddToCart(ctx, product(1, "Coffee", 4))
	s.AddToCart(ctx, product(2, "Tea", 2)) // 50000

	assert.Equal(t, int64(250000), s.CartTotal())
	assert.Equal(t, int64(3), s.CartCount())
}

// 変更のたびにスナップショットが書き戻される（write-through）。
func TestStore_WriteThroughPersistence(t *testing.T) {
	ctx := context.Background()
	s, dir := newFileStore(t)

	s.AddToCart(ctx, product(1, "Coffee", 4))

	b, err := os.ReadFile(filepath.Join(dir, "cart.json"))
	require.NoError(t, err)

	var lines []model.CartLine
	require.NoError(t, json.Unmarshal(b, &lines))
	require.Len(t, lines, 1)
	assert.Equal(t, int64(1), lines[0].Quantity)

	// 別のStoreが同じstorageから読み直すと状態が再現される
	st, err := storage.NewFileStorage(dir)
	require.NoError(t, err)
	reloaded := store.New(ctx, st, rate)

	cart := reloaded.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, int64(1), cart[0].ID)
}

func TestStore_ClearCartPersistsEmptySnapshot(t *testing.T) {
	ctx := context.Background()
	s, dir := newFileStore(t)

	s.AddToCart(ctx, product(1, "Coffee", 4))
	s.ClearCart(ctx)

	assert.Empty(t, s.Cart())

	b, err := os.ReadFile(filepath.Join(dir, "cart.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(b))
}

// 壊れたJSONは空扱い。エラーにもpanicにもならない。
func TestStore_MalformedSnapshotLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cart.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "favorites.json"), []byte("42"), 0o644))

	st, err := storage.NewFileStorage(dir)
	require.NoError(t, err)

	s := store.New(ctx, st, rate)
	assert.Empty(t, s.Cart())
	assert.Empty(t, s.Favorites())
}

func TestStore_ClearFavorites(t *testing.T) {
	ctx := context.Background()
	s, _ := newFileStore(t)

	s.ToggleFavorite(ctx, product(1, "Coffee", 4))
	s.ToggleFavorite(ctx, product(2, "Tea", 2))
	s.ClearFavorites(ctx)

	assert.Empty(t, s.Favorites())
}
