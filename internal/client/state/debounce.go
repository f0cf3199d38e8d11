package state

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiescence window for coalescing search keystrokes.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer coalesces a burst of calls into one: each Schedule cancels the
// pending task and starts a fresh timer, so the function runs only after the
// input has been quiet for the full window.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Schedule cancels any pending task and schedules fn after the window.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Flush cancels any pending task and runs fn inline. This is the explicit
// confirm path: pressing enter must not wait out the window.
func (d *Debouncer) Flush(fn func()) {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
	fn()
}

// Stop cancels any pending task without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
