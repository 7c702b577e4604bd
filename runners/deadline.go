package runners

import (
	"sync"
	"time"
)

// deadline is a pausable wall-clock timer. Pausing happens while a
// breakpoint console is open, so interactive time is not charged against
// the segment.
type deadline struct {
	mu        sync.Mutex
	remaining time.Duration
	startedAt time.Time
	timer     *time.Timer
	expired   chan struct{}
	fired     bool
	stopped   bool
}

func newDeadline(d time.Duration) *deadline {
	dl := &deadline{
		remaining: d,
		expired:   make(chan struct{}),
	}
	dl.mu.Lock()
	dl.startLocked()
	dl.mu.Unlock()
	return dl
}

func (d *deadline) startLocked() {
	d.startedAt = time.Now()
	d.timer = time.AfterFunc(d.remaining, d.fire)
}

func (d *deadline) fire() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fired || d.stopped {
		return
	}
	d.fired = true
	close(d.expired)
}

func (d *deadline) Pause() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fired || d.stopped || d.timer == nil {
		return
	}
	if d.timer.Stop() {
		d.remaining -= time.Since(d.startedAt)
		d.timer = nil
	}
}

func (d *deadline) Resume() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fired || d.stopped || d.timer != nil {
		return
	}
	d.startLocked()
}

func (d *deadline) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
