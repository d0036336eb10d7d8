package effects

import "github.com/brandonlouis96/brainrot-flappy/internal/sim"

// Shake is a decaying random screen offset in world pixels.
type Shake struct {
	OffX, OffY float64 // current offset
	Timer      float64 // remaining shake time
	Intensity  float64 // max offset magnitude
}

// AddShake triggers screen shake with given intensity and duration.
func (s *Shake) AddShake(intensity, duration float64) {
	if intensity > s.Intensity {
		s.Intensity = intensity
	}
	if duration > s.Timer {
		s.Timer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (s *Shake) UpdateShake(dt float64, seed uint64) {
	if s.Timer <= 0 {
		s.OffX = 0
		s.OffY = 0
		s.Intensity = 0
		return
	}
	s.Timer -= dt
	if s.Timer < 0 {
		s.Timer = 0
	}
	// Decaying intensity.
	t := s.Timer
	rr := sim.NewRand(seed ^ uint64(t*10000))
	mag := s.Intensity * (t / (t + 0.08))
	s.OffX = rangeF(rr, -mag, mag)
	s.OffY = rangeF(rr, -mag, mag)
}
