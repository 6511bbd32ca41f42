package model

// CartLine はカートの明細。
// DisplayPrice（追加時点の表示価格）を必ず保存。カタログ側の価格が変わっても再計算しない。
type CartLine struct {
	Product
	Quantity     int64 `json:"quantity"`
	DisplayPrice int64 `json:"display_price"`
}

// Subtotal は明細の小計（表示価格×数量）。
func (l CartLine) Subtotal() int64 {
	return l.DisplayPrice * l.Quantity
}
