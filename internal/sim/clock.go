package sim

import (
	"sync"
	"time"
)

// Clock supplies the monotonic timestamp threaded into every tick.
type Clock interface {
	Now() time.Duration
}

// MonotonicClock measures time since construction using the runtime's
// monotonic reading.
type MonotonicClock struct {
	start time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock is a clock that only moves when told to.
type ManualClock struct {
	mu  sync.Mutex
	now time.Duration
}

func NewManualClock(start time.Duration) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) Set(t time.Duration) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	c.mu.Unlock()
}

// Loop drives one update+render per frame. Rendering happens in every
// state; the session decides whether the update does anything.
type Loop struct {
	clock   Clock
	session *Session
	render  func(*Session)
	frames  uint64
}

func NewLoop(clock Clock, session *Session, render func(*Session)) *Loop {
	return &Loop{clock: clock, session: session, render: render}
}

// Step runs exactly one tick followed by one render.
func (l *Loop) Step() {
	l.session.Tick(l.clock.Now())
	l.frames++
	if l.render != nil {
		l.render(l.session)
	}
}

// Action forwards the flap-or-shoot intent stamped with the loop's clock.
func (l *Loop) Action() {
	l.session.Action(l.clock.Now())
}

func (l *Loop) Frames() uint64     { return l.frames }
func (l *Loop) Session() *Session  { return l.session }
func (l *Loop) Now() time.Duration { return l.clock.Now() }

// Run steps once per frame until done is closed. Input arrives on actions
// so every session mutation stays on this goroutine.
func (l *Loop) Run(done <-chan struct{}, frame time.Duration, actions <-chan struct{}) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-actions:
			l.Action()
		case <-ticker.C:
			l.Step()
		}
	}
}
