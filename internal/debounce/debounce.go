package debounce

import (
	"sync"
	"time"
)

// DefaultDelay は検索入力の静止期間。
const DefaultDelay = 300 * time.Millisecond

// Debouncer は「先に積んだタイマーを止めて積み直す」だけの部品。
// 静止期間内に連打された分は捨てられ、最後の1回だけ実行される。
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Trigger は保留中のタイマーを取り消して新しく積む。
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop は保留中の実行を取り消す。
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
