package testutil

import (
	"sync"
	"sync/atomic"
	"time"
)

// Barrier blocks every caller until all of the expected callers have arrived.
// Used to check that calls are in flight at the same time.
type Barrier struct {
	mu       sync.Mutex
	pending  int
	release  chan struct{}
	timeout  time.Duration
	timedOut atomic.Bool
}

// NewBarrier waits for n callers, giving up after the timeout.
func NewBarrier(n int, timeout time.Duration) *Barrier {
	b := &Barrier{
		pending: n,
		release: make(chan struct{}),
		timeout: timeout,
	}
	if n <= 0 {
		close(b.release)
	}
	return b
}

// Arrive blocks until every caller arrived or the timeout.
func (b *Barrier) Arrive() {
	b.mu.Lock()
	b.pending--
	if b.pending == 0 {
		close(b.release)
	}
	b.mu.Unlock()

	timer := time.NewTimer(b.timeout)
	defer timer.Stop()

	select {
	case <-b.release:
	case <-timer.C:
		b.timedOut.Store(true)
	}
}

// TimedOut reports if some caller gave up waiting for the others.
func (b *Barrier) TimedOut() bool {
	return b.timedOut.Load()
}
