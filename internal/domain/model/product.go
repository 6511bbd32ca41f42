package model

// Product はリモートカタログの商品。クライアント側からは読み取り専用。
// JSONタグはカタログAPIのレスポンスに合わせる。
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Thumbnail   string  `json:"thumbnail"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand"`
	Rating      float64 `json:"rating"`
	Stock       int64   `json:"stock"`
}
