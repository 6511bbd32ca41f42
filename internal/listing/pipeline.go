package listing

import (
	"math"
	"sort"
	"strings"

	"app/internal/domain/model"
)

// ソートキー
const (
	SortNone      = ""
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortName      = "name"
)

// DefaultMaxPrice は商品が1件も無いときの価格上限（表示通貨）。
const DefaultMaxPrice int64 = 10_000_000

func ValidSort(key string) bool {
	switch key {
	case SortNone, SortPriceAsc, SortPriceDesc, SortName:
		return true
	}
	return false
}

// DisplayPrice はカタログ価格×通貨倍率（追加時・表示時の計算はこれで統一）。
func DisplayPrice(p model.Product, rate int64) int64 {
	return int64(math.Round(p.Price * float64(rate)))
}

// MaxDisplayPrice は表示価格の観測最大値。空ならDefaultMaxPrice。
func MaxDisplayPrice(products []model.Product, rate int64) int64 {
	if len(products) == 0 {
		return DefaultMaxPrice
	}

	max := DisplayPrice(products[0], rate)
	for _, p := range products[1:] {
		if v := DisplayPrice(p, rate); v > max {
			max = v
		}
	}
	return max
}

// FilterByPrice は表示価格が [min, max] に入る商品だけ残す。
// maxがnilなら観測最大値。0は未指定ではなく本当の境界として扱う。
func FilterByPrice(products []model.Product, min, max *int64, rate int64) []model.Product {
	lo := int64(0)
	if min != nil {
		lo = *min
	}

	hi := MaxDisplayPrice(products, rate)
	if max != nil {
		hi = *max
	}

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		v := DisplayPrice(p, rate)
		if v >= lo && v <= hi {
			out = append(out, p)
		}
	}
	return out
}

// SortProducts は安定ソート。キー無しはフィルタ後の順序を保つ。
// price_desc は価格の狭義降順（昇順の正確な逆）を契約とする。
func SortProducts(products []model.Product, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortName:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Title < products[j].Title
		})
	}
}

// Paginate は1始まりのページを固定サイズで切り出す。範囲外は空。
func Paginate(products []model.Product, page int, size int) []model.Product {
	if page < 1 || size < 1 {
		return []model.Product{}
	}

	start := (page - 1) * size
	if start >= len(products) {
		return []model.Product{}
	}

	end := start + size
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

func TotalPages(total int, size int) int {
	if size < 1 {
		return 0
	}
	return (total + size - 1) / size
}

// Ellipsis はページ番号窓の省略マーカー。
const Ellipsis = -1

// PageRange は現在ページ周辺の番号窓（先頭/末尾に届かないときは省略付き）。
// windowは呼び出し箇所ごとに3か5。
func PageRange(current int, totalPages int, window int) []int {
	if totalPages <= window {
		pages := make([]int, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	half := window / 2
	start := current - half
	if start < 1 {
		start = 1
	}
	end := start + window - 1
	if end > totalPages {
		end = totalPages
	}
	if end == totalPages {
		if s := end - window + 1; s >= 1 {
			start = s
		} else {
			start = 1
		}
	}

	pages := []int{}
	if start > 1 {
		pages = append(pages, 1)
		if start > 2 {
			pages = append(pages, Ellipsis)
		}
	}
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	if end < totalPages {
		if end < totalPages-1 {
			pages = append(pages, Ellipsis)
		}
		pages = append(pages, totalPages)
	}

	return pages
}

// FilterByTitle はタイトルの部分一致（大文字小文字無視）。
// 上流検索の結果を呼び出し側で絞り直すのに使う。
func FilterByTitle(products []model.Product, q string) []model.Product {
	needle := strings.ToLower(strings.TrimSpace(q))
	if needle == "" {
		return products
	}

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Suggest は入力にタイトルが部分一致する商品を先頭からmax件。空入力は候補無し。
func Suggest(products []model.Product, input string, max int) []model.Product {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	matched := FilterByTitle(products, input)
	if len(matched) > max {
		matched = matched[:max]
	}
	return matched
}
