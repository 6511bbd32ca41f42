package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/catalog"
	"app/internal/domain/model"
	"app/internal/listing"
	"app/internal/store"
)

// FavoritesUsecase はお気に入りページの業務ロジック。
// 一覧には商品一覧と同じ価格フィルタ・ソート・ページングを適用する。
type FavoritesUsecase struct {
	store    *store.Store
	catalog  Catalog
	rate     int64
	pageSize int
}

func NewFavoritesUsecase(store *store.Store, catalog Catalog, rate int64, pageSize int) *FavoritesUsecase {
	return &FavoritesUsecase{
		store:    store,
		catalog:  catalog,
		rate:     rate,
		pageSize: pageSize,
	}
}

type ListFavoritesInput struct {
	Page     int
	MinPrice *int64
	MaxPrice *int64
	Sort     string
}

type ToggleFavoriteOutput struct {
	ProductID int64 `json:"product_id"`
	Favorite  bool  `json:"favorite"`
}

func (u *FavoritesUsecase) ListFavorites(ctx context.Context, in ListFavoritesInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.MinPrice != nil && *in.MinPrice < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be >= 0")
	}
	if in.MaxPrice != nil && *in.MaxPrice < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "max_price must be >= 0")
	}
	if in.MinPrice != nil && in.MaxPrice != nil && *in.MinPrice > *in.MaxPrice {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be <= max_price")
	}
	if !listing.ValidSort(in.Sort) {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	entries := u.store.Favorites()
	products := make([]model.Product, 0, len(entries))
	for _, e := range entries {
		products = append(products, e.Product)
	}

	maxPrice := listing.MaxDisplayPrice(products, u.rate)

	filtered := listing.FilterByPrice(products, in.MinPrice, in.MaxPrice, u.rate)
	listing.SortProducts(filtered, in.Sort)

	total := len(filtered)
	page := listing.Paginate(filtered, in.Page, u.pageSize)
	totalPages := listing.TotalPages(total, u.pageSize)

	items := make([]ProductOutput, 0, len(page))
	for _, p := range page {
		items = append(items, ProductOutput{
			Product:      p,
			DisplayPrice: listing.DisplayPrice(p, u.rate),
		})
	}

	return ProductListOutput{
		Items:      items,
		Total:      int64(total),
		Page:       in.Page,
		TotalPages: totalPages,
		Pages:      listing.PageRange(in.Page, totalPages, pageWindow),
		MaxPrice:   maxPrice,
	}, nil
}

// ToggleFavorite は登録済みなら外し、未登録ならカタログから引いて登録する。
// 2回連続で呼ぶと元の状態に戻る。
func (u *FavoritesUsecase) ToggleFavorite(ctx context.Context, productID int64) (ToggleFavoriteOutput, error) {
	if productID <= 0 {
		return ToggleFavoriteOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	// 登録済みなら保存済みスナップショットで外す（カタログは呼ばない）
	for _, e := range u.store.Favorites() {
		if e.ID == productID {
			u.store.ToggleFavorite(ctx, e.Product)
			return ToggleFavoriteOutput{ProductID: productID, Favorite: false}, nil
		}
	}

	p, err := u.catalog.FindByID(ctx, productID)
	if errors.Is(err, catalog.ErrNotFound) {
		return ToggleFavoriteOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ToggleFavoriteOutput{}, catalogError(err)
	}

	u.store.ToggleFavorite(ctx, p)
	return ToggleFavoriteOutput{ProductID: productID, Favorite: true}, nil
}

func (u *FavoritesUsecase) ClearFavorites(ctx context.Context) {
	u.store.ClearFavorites(ctx)
}
