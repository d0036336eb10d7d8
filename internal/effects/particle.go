package effects

import (
	"math"

	"github.com/brandonlouis96/brainrot-flappy/internal/sim"
)

type ParticleKind uint8

const (
	ParticleDebris ParticleKind = iota
	ParticleSpark
	ParticleFeather
	ParticleSmoke
)

type Particle struct {
	X, Y   float64
	VX, VY float64

	Size float64
	Spin float64 // radians per second
	Rot  float64

	Life    float64 // negative = delayed start
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *sim.Rand
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rng: sim.NewRand(seed),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// ParticleRenderData splits particles into glow (additive) and normal (alpha blend) buffers.
// Format: [x, y, size, r, g, b, a, rotation] * N.
func (ps *ParticleSystem) ParticleRenderData(glowBuf, normBuf []float32) ([]float32, []float32) {
	glowBuf = glowBuf[:0]
	normBuf = normBuf[:0]

	for _, p := range ps.P {
		if p.Life < 0 {
			continue
		}
		t := clampF(p.Life/p.MaxLife, 0, 1)

		a := 1.0 - t
		size := p.Size
		switch p.Kind {
		case ParticleDebris:
			a = 1.0 - t*t
		case ParticleSpark:
			a = (1.0 - t) * 1.15
		case ParticleFeather:
			a = 1.0 - t*0.6
		case ParticleSmoke:
			fadeIn := math.Min(t/0.18, 1)
			a = (1.0 - t) * fadeIn * 0.7
			size *= 1.0 + t*1.6
		}
		if a <= 0 {
			continue
		}

		rc, gc, bc := p.Col.F32()
		ac := float32(clampF(a, 0, 1))

		if p.Kind == ParticleSpark {
			// Additive: pre-multiply color by alpha.
			glowBuf = append(glowBuf, float32(p.X), float32(p.Y), float32(size), rc*ac, gc*ac, bc*ac, ac, 0)
			continue
		}
		normBuf = append(normBuf, float32(p.X), float32(p.Y), float32(size), rc, gc, bc, ac, float32(p.Rot))
	}
	return glowBuf, normBuf
}
