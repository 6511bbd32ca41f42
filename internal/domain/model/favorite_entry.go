package model

// FavoriteEntry はお気に入りの1件。product idごとに最大1件。
type FavoriteEntry struct {
	Product
	Favorite bool `json:"favorite"`
}
