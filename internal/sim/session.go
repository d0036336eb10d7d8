package sim

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

type GameState int

const (
	StateStart    GameState = iota // title screen, nothing simulated yet
	StatePlaying                   // simulation advancing
	StateGameOver                  // terminal until the next action
)

func (s GameState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	}
	return "invalid"
}

// Session owns everything one play-through mutates: score, the active
// mode and its entity stores, and the player body. It is driven from a
// single tick context and is not safe for concurrent use.
type Session struct {
	id        string
	state     GameState
	score     int
	highScore int

	nextMilestone int
	lastReason    GameOverReason

	player Player
	mode   mode

	field        Playfield
	pendingField Playfield

	rng         Source
	bus         *EventBus
	nextEnemyID uint64
}

// NewSession returns a session on the start screen. A nil rng seeds from
// the clock; a nil bus gets a private one.
func NewSession(rng Source, bus *EventBus) *Session {
	if rng == nil {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}
	if bus == nil {
		bus = NewEventBus()
	}
	s := &Session{
		state:        StateStart,
		rng:          rng,
		bus:          bus,
		field:        DefaultPlayfield(),
		pendingField: DefaultPlayfield(),
	}
	s.reset(0)
	return s
}

func (s *Session) ID() string { return s.id }
func (s *Session) State() GameState { return s.state }
func (s *Session) Score() int { return s.score }
func (s *Session) HighScore() int { return s.highScore }
func (s *Session) ChaosLevel() int { return ChaosLevel(s.score) }
func (s *Session) Player() Player { return s.player }
func (s *Session) Playfield() Playfield { return s.field }
func (s *Session) Bus() *EventBus { return s.bus }
func (s *Session) LastReason() GameOverReason { return s.lastReason }
func (s *Session) Mode() ModeKind { return s.mode.Kind() }

// Pipes returns the live pipe store; nil outside flyer mode. Callers must
// not modify it.
func (s *Session) Pipes() []Pipe {
	if f, ok := s.mode.(*flyerMode); ok {
		return f.pipes
	}
	return nil
}

// Enemies returns the live enemy store; nil outside shooter mode.
func (s *Session) Enemies() []EnemyBird {
	if sh, ok := s.mode.(*shooterMode); ok {
		return sh.enemies
	}
	return nil
}

// Bullets returns the live bullet store; nil outside shooter mode.
func (s *Session) Bullets() []Bullet {
	if sh, ok := s.mode.(*shooterMode); ok {
		return sh.bullets
	}
	return nil
}

func (s *Session) PipeSpeed() float64 { return PipeSpeed(s.score) }
func (s *Session) PipeInterval() time.Duration { return PipeSpawnInterval(s.score) }
func (s *Session) EnemyInterval() time.Duration {
	if sh, ok := s.mode.(*shooterMode); ok {
		return EnemySpawnInterval(s.score, sh.entryScore)
	}
	return EnemySpawnInterval(s.score, s.score)
}

// SetPlayfield records new geometry. It takes effect at the start of the
// next tick so a tick always sees one size.
func (s *Session) SetPlayfield(p Playfield) {
	if !p.valid() {
		log.Printf("session %s: ignoring playfield %.0fx%.0f", s.id, p.W, p.H)
		return
	}
	s.pendingField = p
}

// Action is the single flap-or-shoot intent; its meaning depends on state
// and mode.
func (s *Session) Action(now time.Duration) {
	switch s.state {
	case StateStart, StateGameOver:
		s.begin(now)
	case StatePlaying:
		s.mode.action(s, now)
	}
}

// Tick advances the simulation one step. Outside the playing state it
// only applies pending geometry.
func (s *Session) Tick(now time.Duration) {
	s.field = s.pendingField
	if s.state != StatePlaying {
		return
	}
	s.mode.step(s, now)
	s.checkInvariants()
}

// begin starts a fresh session from the start or game-over screen.
func (s *Session) begin(now time.Duration) {
	s.field = s.pendingField
	s.reset(now)
	s.state = StatePlaying
	log.Printf("session %s: started (high score %d)", s.id, s.highScore)
	s.emit(Event{Type: EventSessionStarted})
	s.emit(Event{Type: EventModeEntered, Mode: ModeFlyer})
}

// reset returns every transient field to its initial value. highScore
// survives.
func (s *Session) reset(now time.Duration) {
	s.id = uuid.NewString()
	s.score = 0
	s.nextMilestone = FirstMilestone
	s.lastReason = ReasonNone
	s.player = newPlayer()
	s.mode = newFlyerMode(now)
	s.nextEnemyID = 0
}

// award adds points and raises score/milestone events. Points are always
// positive; score never decreases within a session.
func (s *Session) award(points int, x, y float64) {
	invariant(points > 0, "award of %d points", points)
	s.score += points
	s.emit(Event{Type: EventScoreChanged, X: x, Y: y})
	if s.score >= s.nextMilestone {
		s.emit(Event{Type: EventMilestone, X: x, Y: y})
		s.nextMilestone = s.score + MilestoneStep
	}
}

// enterShooter is the one-way flyer -> shooter switch.
func (s *Session) enterShooter(now time.Duration) {
	f, ok := s.mode.(*flyerMode)
	if !ok {
		return
	}
	for _, p := range f.pipes {
		s.emit(Event{Type: EventEntityDestroyed, Kind: KindPipe, X: p.X + PipeWidth/2, Y: p.GapY + p.GapH/2})
	}
	f.pipes = nil
	s.mode = newShooterMode(now, s.score)
	s.pinPlayer()
	log.Printf("session %s: shooter mode at score %d", s.id, s.score)
	s.emit(Event{Type: EventModeEntered, Mode: ModeShooter})
}

// pinPlayer places the body in ground stance.
func (s *Session) pinPlayer() {
	s.player.X = s.field.W/2 - s.player.W/2
	s.player.Y = s.field.FloorY() - s.player.H
	s.player.Velocity = 0
	s.player.Rotation = 0
	s.player.Grounded = true
}

func (s *Session) gameOver(reason GameOverReason) {
	if s.state != StatePlaying {
		return
	}
	s.state = StateGameOver
	s.lastReason = reason
	s.player.Y = clampF(s.player.Y, 0, s.field.FloorY()-s.player.H)
	if s.score > s.highScore {
		s.highScore = s.score
	}
	log.Printf("session %s: game over (%s) score %d high %d", s.id, reason, s.score, s.highScore)
	s.emit(Event{Type: EventGameOver, Reason: reason, X: s.player.X, Y: s.player.Y})
}

// emit stamps the common payload and publishes.
func (s *Session) emit(e Event) {
	e.Score = s.score
	e.Chaos = ChaosLevel(s.score)
	e.SessionID = s.id
	if e.Type != EventModeEntered {
		e.Mode = s.mode.Kind()
	}
	s.bus.Emit(e)
}

func (s *Session) checkInvariants() {
	invariant(s.score >= 0, "negative score %d", s.score)
	invariant(s.highScore >= 0, "negative high score %d", s.highScore)
	invariant(s.mode != nil, "no active mode")
}

// invariant panics on programming-contract violations. These are never
// reachable through the public API.
func invariant(ok bool, format string, args ...any) {
	if !ok {
		panic(fmt.Sprintf("sim: invariant violated: "+format, args...))
	}
}
