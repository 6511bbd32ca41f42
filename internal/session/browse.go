package session

import (
	"context"
	"sync"
	"time"

	"app/internal/debounce"
	"app/internal/domain/model"
	"app/internal/usecase"

	log "github.com/sirupsen/logrus"
)

// Lister は一覧・サジェスト取得の口（ListingUsecaseが満たす）。
type Lister interface {
	ListProducts(ctx context.Context, in usecase.ListProductsInput) (usecase.ProductListOutput, error)
	Suggest(ctx context.Context, input string) ([]model.Product, error)
}

// Snapshot は直近に確定した一覧の状態。
type Snapshot struct {
	Items   []usecase.ProductOutput
	Total   int64
	Pages   []int
	Err     error
	Loading bool
}

// Browse は一覧ページのイベントループをモデル化したセッション。
//   - 取得は発行順のシーケンス番号で追い越し判定し、最新以外の応答は捨てる
//     （遅れて返った古い応答が新しい状態を上書きしない）。
//   - 検索入力は静止期間（300ms）を置いてからサジェストを再計算する。
//
// 進行中のHTTPリクエスト自体は取り消さない。応答を捨てるだけ。
type Browse struct {
	mu     sync.Mutex
	lister Lister
	deb    *debounce.Debouncer

	latest   int64
	snapshot Snapshot

	input       string
	suggestions []model.Product
}

func NewBrowse(lister Lister, delay time.Duration) *Browse {
	return &Browse{
		lister: lister,
		deb:    debounce.New(delay),
	}
}

// Apply はフィルタ状態を確定して取得する。
// 並行して呼ばれた場合、後から発行した方だけが状態を確定できる。
func (b *Browse) Apply(ctx context.Context, in usecase.ListProductsInput) {
	b.mu.Lock()
	b.latest++
	seq := b.latest
	b.snapshot.Loading = true
	b.mu.Unlock()

	out, err := b.lister.ListProducts(ctx, in)

	b.mu.Lock()
	defer b.mu.Unlock()

	if seq != b.latest {
		// 追い越された応答。状態は触らない。
		log.WithFields(log.Fields{"seq": seq, "latest": b.latest}).Debug("discard stale fetch")
		return
	}

	if err != nil {
		b.snapshot = Snapshot{Err: err}
		return
	}
	b.snapshot = Snapshot{
		Items: out.Items,
		Total: out.Total,
		Pages: out.Pages,
	}
}

// HandleSearchInput はキー入力ごとに呼ぶ。静止期間が明けた最後の1回だけ
// サジェストを再計算する（途中の入力分は抑制される）。
func (b *Browse) HandleSearchInput(text string) {
	b.mu.Lock()
	b.input = text
	b.mu.Unlock()

	b.deb.Trigger(b.recomputeSuggestions)
}

func (b *Browse) recomputeSuggestions() {
	b.mu.Lock()
	input := b.input
	b.mu.Unlock()

	matched, err := b.lister.Suggest(context.Background(), input)
	if err != nil {
		log.WithError(err).Warn("recompute suggestions")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.suggestions = matched
}

func (b *Browse) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot
}

func (b *Browse) Suggestions() []model.Product {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]model.Product, len(b.suggestions))
	copy(out, b.suggestions)
	return out
}

// Close は保留中のサジェスト再計算を取り消す。
func (b *Browse) Close() {
	b.deb.Stop()
}
