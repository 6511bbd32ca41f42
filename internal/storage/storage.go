package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// ブラウザのlocal storage相当のキー。
const (
	KeyCart      = "cart"
	KeyFavorites = "favorites"
)

// Storage はキーごとのJSONスナップショットの永続化だけを約束。
// 値の中身（スキーマ）は呼び出し側の責任。バージョニングは無し。
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
