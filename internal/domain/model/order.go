package model

import "time"

// Order はチェックアウト確定の結果（成功ビューの内容）。
// サーバー側には保存しない。確定と同時にカートは空になる。
type Order struct {
	ID        string     `json:"id"`
	Items     []CartLine `json:"items"`
	Total     int64      `json:"total"`
	CreatedAt time.Time  `json:"created_at"`
}
