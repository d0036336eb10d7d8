package sim

import "time"

type ModeKind int

const (
	ModeFlyer ModeKind = iota
	ModeShooter
)

func (m ModeKind) String() string {
	switch m {
	case ModeFlyer:
		return "flyer"
	case ModeShooter:
		return "shooter"
	}
	return "unknown"
}

// mode is the per-phase half of a session. Exactly one is active; the
// session dispatches each tick and each playing-state action to it.
type mode interface {
	Kind() ModeKind
	step(s *Session, now time.Duration)
	action(s *Session, now time.Duration)
}
