package effects

import "math"

const (
	particleGravity  = 520.0
	particleAirDrag  = 1.65
	featherGravity   = 60.0
	featherFlutterHz = 5.0
)

// particleDecays holds exponential drag factors precomputed once per frame.
type particleDecays struct {
	debrisXY  float64 // exp(-particleAirDrag * dt)
	sparkXY   float64 // exp(-3.2 * dt)
	featherXY float64 // exp(-2.6 * dt)
	smokeXY   float64 // exp(-1.2 * dt)
}

func computeDecays(dt float64) particleDecays {
	return particleDecays{
		debrisXY:  math.Exp(-particleAirDrag * dt),
		sparkXY:   math.Exp(-3.2 * dt),
		featherXY: math.Exp(-2.6 * dt),
		smokeXY:   math.Exp(-1.2 * dt),
	}
}

// Update advances every particle by dt seconds and drops expired ones.
func (ps *ParticleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}

	d := computeDecays(dt)

	for i := 0; i < len(ps.P); {
		p := &ps.P[i]

		p.Life += dt
		if p.Life >= p.MaxLife {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}

		// Skip delayed particles.
		if p.Life < 0 {
			i++
			continue
		}

		switch p.Kind {
		case ParticleDebris:
			p.VY += particleGravity * dt
			p.VX *= d.debrisXY
		case ParticleSpark:
			p.VX *= d.sparkXY
			p.VY *= d.sparkXY
		case ParticleFeather:
			p.VY += featherGravity * dt
			p.VX *= d.featherXY
			p.VY *= d.featherXY
			p.X += math.Sin(p.Life*featherFlutterHz*2*math.Pi) * 12 * dt
		case ParticleSmoke:
			p.VX *= d.smokeXY
			p.VY = p.VY*d.smokeXY - 10*dt
		}

		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Rot += p.Spin * dt
		i++
	}
}
