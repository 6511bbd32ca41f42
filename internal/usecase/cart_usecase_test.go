package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/catalog"
	"app/internal/domain/model"
	"app/internal/storage"
	"app/internal/store"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()

	st, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return store.New(context.Background(), st, rate)
}

func TestCartUsecase_AddToCart_InvalidID(t *testing.T) {
	uc := usecase.NewCartUsecase(newStore(t), new(CatalogMock))

	_, err := uc.AddToCart(context.Background(), 0)
	assertHTTPError(t, err, http.StatusBadRequest, "invalid product_id")
}

func TestCartUsecase_AddToCart_UnknownProduct(t *testing.T) {
	cat := new(CatalogMock)
	uc := usecase.NewCartUsecase(newStore(t), cat)

	cat.On("FindByID", mock.Anything, int64(999)).Return(model.Product{}, catalog.ErrNotFound)

	_, err := uc.AddToCart(context.Background(), 999)
	assertHTTPError(t, err, http.StatusNotFound, "not found")
}

func TestCartUsecase_AddToCart_MergesSameProduct(t *testing.T) {
	ctx := context.Background()
	cat := new(CatalogMock)
	uc := usecase.NewCartUsecase(newStore(t), cat)

	cat.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Title: "Coffee", Price: 4}, nil)

	_, err := uc.AddToCart(ctx, 1)
	require.NoError(t, err)
	out, err := uc.AddToCart(ctx, 1)
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(2), out.Items[0].Quantity)
	assert.Equal(t, int64(100000), out.Items[0].Price)
	assert.Equal(t, int64(200000), out.Items[0].Subtotal)
	assert.Equal(t, int64(200000), out.Total)
	assert.Equal(t, int64(2), out.Count)
}

func TestCartUsecase_UpdateQuantity_Invalid(t *testing.T) {
	uc := usecase.NewCartUsecase(newStore(t), new(CatalogMock))

	_, err := uc.UpdateQuantity(context.Background(), 1, usecase.UpdateCartItemInput{Quantity: 0})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid quantity")
}

func TestCartUsecase_UpdateQuantity_MissingLineIsNoop(t *testing.T) {
	ctx := context.Background()
	cat := new(CatalogMock)
	uc := usecase.NewCartUsecase(newStore(t), cat)

	cat.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Title: "Coffee", Price: 4}, nil)
	_, err := uc.AddToCart(ctx, 1)
	require.NoError(t, err)

	out, err := uc.UpdateQuantity(ctx, 999, usecase.UpdateCartItemInput{Quantity: 3})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(1), out.Items[0].Quantity)
}

func TestCartUsecase_RemoveFromCart_MissingLineIsNoop(t *testing.T) {
	ctx := context.Background()
	cat := new(CatalogMock)
	uc := usecase.NewCartUsecase(newStore(t), cat)

	cat.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Title: "Coffee", Price: 4}, nil)
	_, err := uc.AddToCart(ctx, 1)
	require.NoError(t, err)

	out, err := uc.RemoveFromCart(ctx, 999)
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
}

func TestCartUsecase_ClearCart(t *testing.T) {
	ctx := context.Background()
	cat := new(CatalogMock)
	uc := usecase.NewCartUsecase(newStore(t), cat)

	cat.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Title: "Coffee", Price: 4}, nil)
	_, err := uc.AddToCart(ctx, 1)
	require.NoError(t, err)

	out := uc.ClearCart(ctx)
	assert.Empty(t, out.Items)
	assert.Equal(t, int64(0), out.Total)
}
