package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"app/internal/catalog"
	"app/internal/domain/model"
	"app/internal/listing"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// Catalog はリモートカタログへの読み取り口。
type Catalog interface {
	List(ctx context.Context, page int, limit int) (catalog.ProductList, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	Search(ctx context.Context, query string) (catalog.ProductList, error)
	ListByCategory(ctx context.Context, slug string) (catalog.ProductList, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
}

const (
	// クライアント側フィルタのためにまとめて取る件数
	catalogFetchLimit = 100
	// 検索サジェストの最大件数
	suggestLimit = 5
	// ページ番号窓のサイズ
	pageWindow = 3
)

// ListingUsecase は商品一覧まわりの業務ロジック。
// 取得元の選択→価格フィルタ→ソート→ページングの順で適用する。
type ListingUsecase struct {
	catalog  Catalog
	rate     int64
	pageSize int
}

func NewListingUsecase(catalog Catalog, rate int64, pageSize int) *ListingUsecase {
	return &ListingUsecase{
		catalog:  catalog,
		rate:     rate,
		pageSize: pageSize,
	}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	Page     int
	Search   string
	Category string
	MinPrice *int64
	MaxPrice *int64
	Sort     string
}

type ProductOutput struct {
	model.Product
	DisplayPrice int64 `json:"display_price"`
}

type ProductListOutput struct {
	Items      []ProductOutput `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
	Pages      []int           `json:"pages"`
	MaxPrice   int64           `json:"max_price"`
}

func (u *ListingUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.MinPrice != nil && *in.MinPrice < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be >= 0")
	}
	if in.MaxPrice != nil && *in.MaxPrice < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "max_price must be >= 0")
	}
	// 下限>上限は境界で弾く（直前の有効な範囲が生きたままになる）
	if in.MinPrice != nil && in.MaxPrice != nil && *in.MinPrice > *in.MaxPrice {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be <= max_price")
	}
	if !listing.ValidSort(in.Sort) {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	products, err := u.fetchSource(ctx, in.Search, in.Category)
	if err != nil {
		return ProductListOutput{}, err
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

// fetchSource は取得元の選択。検索→カテゴリ→デフォルト一覧の優先順。
// 検索結果は上流の揺らぎがあるのでタイトルで絞り直す。
func (u *ListingUsecase) fetchSource(ctx context.Context, search string, category string) ([]model.Product, error) {
	search = strings.ToLower(strings.TrimSpace(search))

	if search != "" {
		out, err := u.catalog.Search(ctx, search)
		if err != nil {
			return nil, catalogError(err)
		}
		return listing.FilterByTitle(out.Products, search), nil
	}

	if category != "" {
		out, err := u.catalog.ListByCategory(ctx, category)
		if err != nil {
			return nil, catalogError(err)
		}
		return out.Products, nil
	}

	out, err := u.catalog.List(ctx, 1, catalogFetchLimit)
	if err != nil {
		return nil, catalogError(err)
	}
	return out.Products, nil
}

func (u *ListingUsecase) GetProductDetail(ctx context.Context, productID int64) (ProductOutput, error) {
	if productID <= 0 {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.catalog.FindByID(ctx, productID)
	if errors.Is(err, catalog.ErrNotFound) {
		return ProductOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ProductOutput{}, catalogError(err)
	}

	return ProductOutput{
		Product:      p,
		DisplayPrice: listing.DisplayPrice(p, u.rate),
	}, nil
}

func (u *ListingUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	cats, err := u.catalog.ListCategories(ctx)
	if err != nil {
		return nil, catalogError(err)
	}
	return cats, nil
}

// Suggest は現在のデフォルト一覧からタイトル部分一致の候補を返す（最大5件）。
func (u *ListingUsecase) Suggest(ctx context.Context, input string) ([]model.Product, error) {
	if strings.TrimSpace(input) == "" {
		return []model.Product{}, nil
	}

	out, err := u.catalog.List(ctx, 1, catalogFetchLimit)
	if err != nil {
		return nil, catalogError(err)
	}

	matched := listing.Suggest(out.Products, input, suggestLimit)
	if matched == nil {
		matched = []model.Product{}
	}
	return matched, nil
}

// カタログ呼び出しの失敗はリトライ可能なエラーとして呼び出し側へ見せる。
func catalogError(err error) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	return NewHTTPError(http.StatusBadGateway, "catalog unavailable")
}
