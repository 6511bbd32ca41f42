package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	"app/internal/store"
)

// IDGenerator は注文確認IDの採番。
type IDGenerator interface {
	NewID() string
}

// Clock は現在時刻の取得。
type Clock interface {
	Now() time.Time
}

// CheckoutUsecase はチェックアウト確定。
// 確定するとカートは空になり、成功ビュー用のOrderを返す。
type CheckoutUsecase struct {
	store *store.Store
	idGen IDGenerator
	clock Clock
}

func NewCheckoutUsecase(store *store.Store, idGen IDGenerator, clock Clock) *CheckoutUsecase {
	return &CheckoutUsecase{
		store: store,
		idGen: idGen,
		clock: clock,
	}
}

func (u *CheckoutUsecase) Checkout(ctx context.Context) (model.Order, error) {
	lines := u.store.Cart()
	if len(lines) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	var total int64
	for _, l := range lines {
		total += l.Subtotal()
	}

	order := model.Order{
		ID:        u.idGen.NewID(),
		Items:     lines,
		Total:     total,
		CreatedAt: u.clock.Now(),
	}

	u.store.ClearCart(ctx)
	return order, nil
}
