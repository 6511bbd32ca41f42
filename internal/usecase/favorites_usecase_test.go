package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFavoritesUsecase_ToggleTwiceRestores(t *testing.T) {
	ctx := context.Background()
	cat := new(CatalogMock)
	s := newStore(t)
	uc := usecase.NewFavoritesUsecase(s, cat, rate, pageSize)

	cat.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Title: "Coffee", Price: 4}, nil).Once()

	out, err := uc.ToggleFavorite(ctx, 1)
	require.NoError(t, err)
	assert.True(t, out.Favorite)

	// 2回目は保存済みスナップショットで外す。カタログは呼ばれない。
	out, err = uc.ToggleFavorite(ctx, 1)
	require.NoError(t, err)
	assert.False(t, out.Favorite)
	assert.Empty(t, s.Favorites())
	cat.AssertExpectations(t)
}

func TestFavoritesUsecase_ToggleInvalidID(t *testing.T) {
	uc := usecase.NewFavoritesUsecase(newStore(t), new(CatalogMock), rate, pageSize)

	_, err := uc.ToggleFavorite(context.Background(), -1)
	assertHTTPError(t, err, http.StatusBadRequest, "invalid product_id")
}

// お気に入り A(価格20), B(価格18) を名前A-Zで並べると [A, B]。
// 価格帯 [0,0] では空（明示的な0は本当の境界）。
func TestFavoritesUsecase_ListSortAndEmptyRange(t *testing.T) {
	ctx := context.Background()
	cat := new(CatalogMock)
	s := newStore(t)
	uc := usecase.NewFavoritesUsecase(s, cat, rate, pageSize)

	cat.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Title: "Apple Watch", Price: 20}, nil)
	cat.On("FindByID", mock.Anything, int64(2)).Return(model.Product{ID: 2, Title: "Band Case", Price: 18}, nil)

	_, err := uc.ToggleFavorite(ctx, 2)
	require.NoError(t, err)
	_, err = uc.ToggleFavorite(ctx, 1)
	require.NoError(t, err)

	out, err := uc.ListFavorites(ctx, usecase.ListFavoritesInput{Page: 1, Sort: "name"})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Apple Watch", out.Items[0].Title)
	assert.Equal(t, "Band Case", out.Items[1].Title)

	empty, err := uc.ListFavorites(ctx, usecase.ListFavoritesInput{
		Page:     1,
		MinPrice: i64(0),
		MaxPrice: i64(0),
	})
	require.NoError(t, err)
	assert.Empty(t, empty.Items)
	assert.Equal(t, int64(0), empty.Total)
}

func TestFavoritesUsecase_ListValidation(t *testing.T) {
	uc := usecase.NewFavoritesUsecase(newStore(t), new(CatalogMock), rate, pageSize)

	_, err := uc.ListFavorites(context.Background(), usecase.ListFavoritesInput{
		Page:     1,
		MinPrice: i64(100),
		MaxPrice: i64(1),
	})
	assertHTTPError(t, err, http.StatusBadRequest, "min_price must be <= max_price")
}

func TestFavoritesUsecase_Clear(t *testing.T) {
	ctx := context.Background()
	cat := new(CatalogMock)
	s := newStore(t)
	uc := usecase.NewFavoritesUsecase(s, cat, rate, pageSize)

	cat.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Title: "Coffee", Price: 4}, nil)
	_, err := uc.ToggleFavorite(ctx, 1)
	require.NoError(t, err)

	uc.ClearFavorites(ctx)
	assert.Empty(t, s.Favorites())
}
