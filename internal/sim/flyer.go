package sim

import "time"

// flyerMode is the pipe phase: gravity, flaps, and scrolling gaps.
type flyerMode struct {
	pipes         []Pipe
	lastPipeSpawn time.Duration
}

func newFlyerMode(now time.Duration) *flyerMode {
	return &flyerMode{lastPipeSpawn: now}
}

func (f *flyerMode) Kind() ModeKind { return ModeFlyer }

// action applies the upward impulse.
func (f *flyerMode) action(s *Session, now time.Duration) {
	s.player.Velocity = FlapImpulse
	s.emit(Event{Type: EventFlap, X: s.player.X, Y: s.player.Y})
}

func (f *flyerMode) step(s *Session, now time.Duration) {
	p := &s.player
	p.Velocity += Gravity
	p.Y += p.Velocity
	p.Rotation = clampF(p.Velocity*RotationPerVelocity, RotationMin, RotationMax)

	if now-f.lastPipeSpawn > PipeSpawnInterval(s.score) {
		f.spawn(s)
		f.lastPipeSpawn = now
	}

	// Speed is fixed for the whole tick even if a pipe scores mid-loop.
	speed := PipeSpeed(s.score)
	reason := ReasonNone
	kept := f.pipes[:0]
	for i := range f.pipes {
		pipe := f.pipes[i]
		pipe.X -= speed

		if !pipe.Scored && PipePassed(*p, pipe) {
			pipe.Scored = true
			s.award(PipePassScore, pipe.X+PipeWidth, pipe.GapY+pipe.GapH/2)
		}
		if reason == ReasonNone && PipeCollides(*p, pipe) {
			reason = ReasonPipe
		}
		if pipeOffscreen(pipe) {
			s.emit(Event{Type: EventEntityDestroyed, Kind: KindPipe, X: pipe.X + PipeWidth/2, Y: pipe.GapY + pipe.GapH/2})
			continue
		}
		kept = append(kept, pipe)
	}
	f.pipes = kept

	if reason == ReasonNone {
		reason = BoundaryHit(*p, s.field)
	}
	if reason != ReasonNone {
		s.gameOver(reason)
		return
	}
	if s.score >= ShooterThreshold {
		s.enterShooter(now)
	}
}

// spawn appends a pipe at the right edge with a uniformly drawn gap.
func (f *flyerMode) spawn(s *Session) {
	minY := PipeGapMargin
	maxY := s.field.H - PipeGapHeight - PipeGapMargin
	pipe := Pipe{
		X:        s.field.W,
		GapY:     rangeF(s.rng, minY, maxY),
		GapH:     PipeGapHeight,
		Meme:     Memes[s.rng.Intn(len(Memes))],
		ColorIdx: s.rng.Intn(ChaosColorCount),
	}
	f.pipes = append(f.pipes, pipe)
	s.emit(Event{Type: EventPipeSpawned, X: pipe.X, Y: pipe.GapY})
}
