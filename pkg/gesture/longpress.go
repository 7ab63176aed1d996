package gesture

import (
	"sync"
	"time"

	"github.com/YoussefAz2/elenashop-sub001/pkg/clock"
)

// LongPressDuration is how long a press must be held to count as an
// edit intent rather than a tap or the start of a scroll.
const LongPressDuration = 500 * time.Millisecond

// TrailingClickWindow bounds how long after the release of a completed
// press a click still counts as its trailing click.
const TrailingClickWindow = 400 * time.Millisecond

// LongPress tracks one pending press. Start arms the timer, Cancel
// disarms it; a press that completes calls the fire function once.
// After a completed press, the click the browser emits on release is
// swallowed if it arrives while the touch is held or within
// TrailingClickWindow of Release.
type LongPress struct {
	clock    clock.Clock
	duration time.Duration

	mu         sync.Mutex
	timer      *clock.Timer
	generation uint64
	fired      bool
	releasedAt time.Time
}

// NewLongPress creates a detector. A non-positive duration falls back
// to LongPressDuration, a nil clock to the real one.
func NewLongPress(c clock.Clock, duration time.Duration) *LongPress {
	if c == nil {
		c = clock.Real()
	}
	if duration <= 0 {
		duration = LongPressDuration
	}
	return &LongPress{clock: c, duration: duration}
}

// Start arms the timer, replacing any pending press.
func (l *LongPress) Start(fire func()) {
	l.mu.Lock()
	if l.timer != nil {
		l.timer.Stop()
	}
	l.generation++
	gen := l.generation
	l.fired = false
	l.releasedAt = time.Time{}
	l.mu.Unlock()

	timer := l.clock.AfterFunc(l.duration, func() {
		l.mu.Lock()
		if gen != l.generation {
			l.mu.Unlock()
			return
		}
		l.timer = nil
		l.fired = true
		l.mu.Unlock()
		fire()
	})

	l.mu.Lock()
	if gen == l.generation && !l.fired {
		l.timer = timer
	} else {
		timer.Stop()
	}
	l.mu.Unlock()
}

// Cancel disarms a pending press and forgets a completed one, since no
// click follows a cancelled or moved touch. It reports whether a press
// was pending.
func (l *LongPress) Cancel() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fired = false
	l.releasedAt = time.Time{}
	return l.disarm()
}

// Release ends the touch. A pending press is disarmed; a completed one
// starts the trailing click window. It reports whether a press was
// pending.
func (l *LongPress) Release() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fired {
		l.releasedAt = l.clock.Now()
	}
	return l.disarm()
}

func (l *LongPress) disarm() bool {
	l.generation++
	if l.timer == nil {
		return false
	}
	l.timer.Stop()
	l.timer = nil
	return true
}

// Pending reports whether a press is armed.
func (l *LongPress) Pending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.timer != nil
}

// ConsumeFired reports whether a click arriving now trails the last
// completed press, and clears the flag either way.
func (l *LongPress) ConsumeFired() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.fired {
		return false
	}
	l.fired = false
	released := l.releasedAt
	l.releasedAt = time.Time{}
	if released.IsZero() {
		return true
	}
	return l.clock.Now().Sub(released) <= TrailingClickWindow
}
