package usecase_test

import (
	"context"

	"app/internal/catalog"
	"app/internal/domain/model"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type CatalogMock struct{ mock.Mock }

func (m *CatalogMock) List(ctx context.Context, page int, limit int) (catalog.ProductList, error) {
	args := m.Called(ctx, page, limit)
	out, _ := args.Get(0).(catalog.ProductList)
	return out, args.Error(1)
}

func (m *CatalogMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *CatalogMock) Search(ctx context.Context, query string) (catalog.ProductList, error) {
	args := m.Called(ctx, query)
	out, _ := args.Get(0).(catalog.ProductList)
	return out, args.Error(1)
}

func (m *CatalogMock) ListByCategory(ctx context.Context, slug string) (catalog.ProductList, error) {
	args := m.Called(ctx, slug)
	out, _ := args.Get(0).(catalog.ProductList)
	return out, args.Error(1)
}

func (m *CatalogMock) ListCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]model.Category)
	return cats, args.Error(1)
}
