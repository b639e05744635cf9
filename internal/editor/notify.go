package editor

import (
	"sync"
	"time"
)

// Notifier coalesces change signals: a burst of signals inside the window
// produces a single delivery once the window expires. Hosts that redraw or
// re-export on change subscribe here instead of the synchronous callback.
type Notifier struct {
	window time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending int
	subs    []func(pending int)
	stopped bool
}

// NewNotifier creates a notifier with the given coalescing window.
func NewNotifier(window time.Duration) *Notifier {
	return &Notifier{window: window}
}

// Subscribe registers a delivery callback. The callback receives the
// number of signals coalesced into the delivery and runs on the timer
// goroutine.
func (n *Notifier) Subscribe(fn func(pending int)) {
	n.mu.Lock()
	n.subs = append(n.subs, fn)
	n.mu.Unlock()
}

// Signal records one change. The first signal of a burst arms the timer;
// later signals inside the window only bump the pending count.
func (n *Notifier) Signal() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.stopped {
		return
	}
	n.pending++
	if n.timer == nil {
		n.timer = time.AfterFunc(n.window, n.deliver)
	}
}

func (n *Notifier) deliver() {
	n.mu.Lock()
	pending := n.pending
	n.pending = 0
	n.timer = nil
	subs := append([]func(int){}, n.subs...)
	n.mu.Unlock()

	if pending == 0 {
		return
	}
	for _, fn := range subs {
		fn(pending)
	}
}

// Flush delivers any pending signals immediately.
func (n *Notifier) Flush() {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.mu.Unlock()
	n.deliver()
}

// Stop cancels the timer and drops pending signals.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopped = true
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.pending = 0
}
