package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/catalog"
	"app/internal/store"
)

// CartUsecase はカートの業務ロジック。
// 状態の書き換えは全てStore経由。Storeの操作自体は失敗しない。
type CartUsecase struct {
	store   *store.Store
	catalog Catalog
}

func NewCartUsecase(store *store.Store, catalog Catalog) *CartUsecase {
	return &CartUsecase{
		store:   store,
		catalog: catalog,
	}
}

// CartItemResponse のpriceは追加時点の表示価格（カタログ側が変わっても再計算しない）。
type CartItemResponse struct {
	ProductID int64  `json:"product_id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total int64              `json:"total"`
	Count int64              `json:"count"`
}

type UpdateCartItemInput struct {
	Quantity int64
}

func (u *CartUsecase) GetCart(ctx context.Context) CartResponse {
	return u.buildCartResponse()
}

// AddToCart は商品をカタログから引いて追加（同一商品は数量+1）。
func (u *CartUsecase) AddToCart(ctx context.Context, productID int64) (CartResponse, error) {
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	p, err := u.catalog.FindByID(ctx, productID)
	if errors.Is(err, catalog.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartResponse{}, catalogError(err)
	}

	u.store.AddToCart(ctx, p)
	return u.buildCartResponse(), nil
}

// 数量変更。対象が無ければ何も起きない（明細は増えも減りもしない）。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, productID int64, in UpdateCartItemInput) (CartResponse, error) {
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	u.store.UpdateQuantity(ctx, productID, in.Quantity)
	return u.buildCartResponse(), nil
}

// 明細削除。無ければno-op。
func (u *CartUsecase) RemoveFromCart(ctx context.Context, productID int64) (CartResponse, error) {
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	u.store.RemoveFromCart(ctx, productID)
	return u.buildCartResponse(), nil
}

func (u *CartUsecase) ClearCart(ctx context.Context) CartResponse {
	u.store.ClearCart(ctx)
	return u.buildCartResponse()
}

func (u *CartUsecase) buildCartResponse() CartResponse {
	lines := u.store.Cart()

	items := make([]CartItemResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, CartItemResponse{
			ProductID: l.ID,
			Title:     l.Title,
			Thumbnail: l.Thumbnail,
			Price:     l.DisplayPrice,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal(),
		})
	}

	return CartResponse{
		Items: items,
		Total: u.store.CartTotal(),
		Count: u.store.CartCount(),
	}
}
