package sim

import (
	"log"
	"runtime/debug"
)

type EventType int

const (
	EventScoreChanged EventType = iota
	EventModeEntered
	EventEntityDestroyed
	EventGameOver
	EventSessionStarted
	EventFlap
	EventShot
	EventMilestone
	EventPipeSpawned
	EventEnemySpawned
)

func (t EventType) String() string {
	switch t {
	case EventScoreChanged:
		return "score-changed"
	case EventModeEntered:
		return "mode-entered"
	case EventEntityDestroyed:
		return "entity-destroyed"
	case EventGameOver:
		return "game-over"
	case EventSessionStarted:
		return "session-started"
	case EventFlap:
		return "flap"
	case EventShot:
		return "shot"
	case EventMilestone:
		return "milestone"
	case EventPipeSpawned:
		return "pipe-spawned"
	case EventEnemySpawned:
		return "enemy-spawned"
	}
	return "unknown"
}

type EntityKind int

const (
	KindPipe EntityKind = iota
	KindEnemy
	KindBullet
)

func (k EntityKind) String() string {
	switch k {
	case KindPipe:
		return "pipe"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	}
	return "unknown"
}

type GameOverReason int

const (
	ReasonNone GameOverReason = iota
	ReasonPipe
	ReasonFloor
	ReasonCeiling
	ReasonEnemy
)

func (r GameOverReason) String() string {
	switch r {
	case ReasonPipe:
		return "pipe"
	case ReasonFloor:
		return "floor"
	case ReasonCeiling:
		return "ceiling"
	case ReasonEnemy:
		return "enemy"
	}
	return "none"
}

type Event struct {
	Type  EventType
	X, Y  float64
	Score int
	Chaos int
	Mode  ModeKind
	Kind  EntityKind
	// Killed is set on enemy destruction caused by a bullet (vs. escaping off-screen).
	Killed    bool
	Reason    GameOverReason
	SessionID string
}

type EventHandler func(Event)

// EventBus fans events out to presentation hooks. Emit runs on the tick
// goroutine; a panicking handler is logged and skipped.
type EventBus struct {
	handlers map[EventType][]EventHandler
	failures int
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventScoreChanged; t <= EventEnemySpawned; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		eb.call(fn, e)
	}
}

// Failures reports how many handler invocations have panicked.
func (eb *EventBus) Failures() int { return eb.failures }

func (eb *EventBus) call(fn EventHandler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			eb.failures++
			log.Printf("event %s: handler panic: %v\n%s", e.Type, r, debug.Stack())
		}
	}()
	fn(e)
}
