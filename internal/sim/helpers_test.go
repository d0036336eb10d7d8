package sim

import "testing"

// scriptSource replays fixed draws so spawn decisions are deterministic.
// An empty script returns the midpoint (0.5) and zero.
type scriptSource struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *scriptSource) Intn(n int) int {
	if len(s.ints) == 0 || n <= 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)] % n
	s.ii++
	return v
}

type recorder struct {
	events []Event
}

func (r *recorder) handle(e Event) { r.events = append(r.events, e) }

func (r *recorder) count(t EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) last(t EventType) (Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == t {
			return r.events[i], true
		}
	}
	return Event{}, false
}

func newTestSession(src Source) (*Session, *recorder) {
	if src == nil {
		src = &scriptSource{}
	}
	bus := NewEventBus()
	rec := &recorder{}
	bus.SubscribeAll(rec.handle)
	return NewSession(src, bus), rec
}

// startedSession returns a session already in the playing state at t=0.
func startedSession(t *testing.T) (*Session, *recorder) {
	t.Helper()
	s, rec := newTestSession(nil)
	s.Action(0)
	if s.State() != StatePlaying {
		t.Fatalf("Expected playing after first action, got %v", s.State())
	}
	return s, rec
}

func flyer(t *testing.T, s *Session) *flyerMode {
	t.Helper()
	f, ok := s.mode.(*flyerMode)
	if !ok {
		t.Fatalf("Expected flyer mode, got %v", s.Mode())
	}
	return f
}

func shooter(t *testing.T, s *Session) *shooterMode {
	t.Helper()
	m, ok := s.mode.(*shooterMode)
	if !ok {
		t.Fatalf("Expected shooter mode, got %v", s.Mode())
	}
	return m
}

// hover pins the flyer in the middle of the field so a test can tick
// without the bird falling out.
func hover(s *Session) {
	s.player.Y = PlayerStartY
	s.player.Velocity = 0
}

// shooterSession drives a real flyer session over the threshold.
func shooterSession(t *testing.T) (*Session, *recorder) {
	t.Helper()
	s, rec := startedSession(t)
	s.score = ShooterThreshold - 1
	f := flyer(t, s)
	f.pipes = append(f.pipes, Pipe{X: 18, GapY: 250, GapH: PipeGapHeight})
	hover(s)
	s.Tick(0)
	if s.Mode() != ModeShooter {
		t.Fatalf("Expected shooter mode after threshold, got %v", s.Mode())
	}
	return s, rec
}
