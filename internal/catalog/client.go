package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"app/internal/domain/model"

	pkgerrors "github.com/pkg/errors"
)

// ErrNotFound は商品がカタログに存在しないとき。
var ErrNotFound = pkgerrors.New("not found")

// ProductList は /products 系レスポンス。categories以外は全てこの形。
type ProductList struct {
	Products []model.Product `json:"products"`
	Total    int64           `json:"total"`
	Skip     int64           `json:"skip"`
	Limit    int64           `json:"limit"`
}

// Client はリモートカタログAPIの薄いラッパー。
// リトライ無し・キャッシュ無し。失敗はそのまま呼び出し側へ返す。
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// List はページ指定の商品一覧。skip = (page-1)*limit。
func (c *Client) List(ctx context.Context, page int, limit int) (ProductList, error) {
	skip := (page - 1) * limit
	u := fmt.Sprintf("%s?limit=%d&skip=%d", c.baseURL, limit, skip)

	var out ProductList
	if err := c.getJSON(ctx, u, &out); err != nil {
		return ProductList{}, err
	}
	return out, nil
}

// FindByID はID指定の1件取得。404は ErrNotFound。
func (c *Client) FindByID(ctx context.Context, id int64) (model.Product, error) {
	u := fmt.Sprintf("%s/%d", c.baseURL, id)

	var p model.Product
	if err := c.getJSON(ctx, u, &p); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// Search はキーワード検索。
// 上流の検索は部分一致を保証しないので、呼び出し側でタイトル再フィルタする。
func (c *Client) Search(ctx context.Context, query string) (ProductList, error) {
	u := fmt.Sprintf("%s/search?q=%s", c.baseURL, url.QueryEscape(query))

	var out ProductList
	if err := c.getJSON(ctx, u, &out); err != nil {
		return ProductList{}, err
	}
	return out, nil
}

// ListByCategory はカテゴリ指定の一覧。
func (c *Client) ListByCategory(ctx context.Context, slug string) (ProductList, error) {
	u := fmt.Sprintf("%s/category/%s", c.baseURL, url.PathEscape(slug))

	var out ProductList
	if err := c.getJSON(ctx, u, &out); err != nil {
		return ProductList{}, err
	}
	return out, nil
}

// ListCategories はカテゴリ一覧（レスポンスは素の配列）。
// slug/name どちらかが欠けていたらもう一方で補完する。
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	u := c.baseURL + "/categories"

	var cats []model.Category
	if err := c.getJSON(ctx, u, &cats); err != nil {
		return nil, err
	}

	for i := range cats {
		if cats[i].Slug == "" {
			cats[i].Slug = cats[i].Name
		}
		if cats[i].Name == "" {
			cats[i].Name = cats[i].Slug
		}
	}
	return cats, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return pkgerrors.Wrap(err, "build catalog request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return pkgerrors.Wrap(err, "catalog request")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return pkgerrors.Errorf("catalog returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkgerrors.Wrap(err, "decode catalog response")
	}
	return nil
}
