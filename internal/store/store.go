package store

import (
	"context"
	"encoding/json"
	"sync"

	"app/internal/domain/model"
	"app/internal/listing"
	"app/internal/storage"

	log "github.com/sirupsen/logrus"
)

// Store はカートとお気に入りの状態コンテナ。
// 全ての書き込みはこの型の操作経由。変更のたびにスナップショットを書き戻す（write-through）。
// 操作は失敗しない：永続化エラーはログに残して握りつぶす。
type Store struct {
	mu        sync.Mutex
	storage   storage.Storage
	rate      int64
	cart      []model.CartLine
	favorites []model.FavoriteEntry
}

// New は保存済みスナップショットを読み込んでStoreを作る。
// 未保存・壊れたJSONは空扱い（エラーにしない）。
func New(ctx context.Context, st storage.Storage, rate int64) *Store {
	s := &Store{
		storage:   st,
		rate:      rate,
		cart:      []model.CartLine{},
		favorites: []model.FavoriteEntry{},
	}

	if b, err := st.Get(ctx, storage.KeyCart); err == nil {
		var cart []model.CartLine
		if err := json.Unmarshal(b, &cart); err == nil && cart != nil {
			s.cart = cart
		}
	}
	if b, err := st.Get(ctx, storage.KeyFavorites); err == nil {
		var favs []model.FavoriteEntry
		if err := json.Unmarshal(b, &favs); err == nil && favs != nil {
			s.favorites = favs
		}
	}

	return s
}

// AddToCart は同一商品なら数量+1、無ければ数量1で追加。
// 表示価格は追加時点で固定する。在庫上限チェックは行わない。
func (s *Store) AddToCart(ctx context.Context, p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == p.ID {
			s.cart[i].Quantity++
			s.persistCart(ctx)
			return
		}
	}

	s.cart = append(s.cart, model.CartLine{
		Product:      p,
		Quantity:     1,
		DisplayPrice: listing.DisplayPrice(p, s.rate),
	})
	s.persistCart(ctx)
}

// RemoveFromCart は該当IDの明細を削除。無ければ何もしない。
func (s *Store) RemoveFromCart(ctx context.Context, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.cart[:0]
	for _, l := range s.cart {
		if l.ID != id {
			out = append(out, l)
		}
	}
	if len(out) == len(s.cart) {
		return
	}
	s.cart = out
	s.persistCart(ctx)
}

// UpdateQuantity は該当IDの数量を設定。無ければ何もしない。
// 1未満へのクランプは呼び出し側の責任。
func (s *Store) UpdateQuantity(ctx context.Context, id int64, qty int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart[i].Quantity = qty
			s.persistCart(ctx)
			return
		}
	}
}

func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = []model.CartLine{}
	s.persistCart(ctx)
}

// ToggleFavorite は登録済みなら削除、未登録なら追加。
// 同じ商品で2回呼ぶと元の状態に戻る。
func (s *Store) ToggleFavorite(ctx context.Context, p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.favorites {
		if s.favorites[i].ID == p.ID {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			s.persistFavorites(ctx)
			return
		}
	}

	s.favorites = append(s.favorites, model.FavoriteEntry{Product: p, Favorite: true})
	s.persistFavorites(ctx)
}

func (s *Store) ClearFavorites(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.favorites = []model.FavoriteEntry{}
	s.persistFavorites(ctx)
}

// Cart は現在のカートのコピー。
func (s *Store) Cart() []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.CartLine, len(s.cart))
	copy(out, s.cart)
	return out
}

// Favorites は現在のお気に入りのコピー。
func (s *Store) Favorites() []model.FavoriteEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.FavoriteEntry, len(s.favorites))
	copy(out, s.favorites)
	return out
}

func (s *Store) IsFavorite(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.favorites {
		if f.ID == id {
			return true
		}
	}
	return false
}

// CartTotal は表示価格×数量の合計。
func (s *Store) CartTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, l := range s.cart {
		total += l.Subtotal()
	}
	return total
}

// CartCount は数量の合計（ナビバーのバッジ用）。
func (s *Store) CartCount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, l := range s.cart {
		n += l.Quantity
	}
	return n
}

func (s *Store) persistCart(ctx context.Context) {
	b, err := json.Marshal(s.cart)
	if err != nil {
		log.WithError(err).Error("encode cart snapshot")
		return
	}
	if err := s.storage.Set(ctx, storage.KeyCart, b); err != nil {
		log.WithError(err).Error("persist cart snapshot")
	}
}

func (s *Store) persistFavorites(ctx context.Context) {
	b, err := json.Marshal(s.favorites)
	if err != nil {
		log.WithError(err).Error("encode favorites snapshot")
		return
	}
	if err := s.storage.Set(ctx, storage.KeyFavorites, b); err != nil {
		log.WithError(err).Error("persist favorites snapshot")
	}
}
