package effects

import "math"

// SpawnKillBurst throws debris and sparks from a downed enemy bird.
func (ps *ParticleSystem) SpawnKillBurst(x, y, size float64, baseCol RGB) {
	r := ps.rng

	for range 18 {
		ang := rangeF(r, 0, math.Pi*2)
		spd := rangeF(r, 60, 180)
		ps.Add(Particle{
			X: x + rangeF(r, -size*0.3, size*0.3), Y: y + rangeF(r, -size*0.3, size*0.3),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang)*spd - 60,
			Size: rangeF(r, 2, 4.5), Spin: rangeF(r, -8, 8),
			MaxLife: rangeF(r, 0.5, 0.9),
			Col:     baseCol.Add(r.Intn(29)-14, r.Intn(29)-14, r.Intn(29)-14),
			Kind:    ParticleDebris,
		})
	}

	for range 10 {
		ang := rangeF(r, 0, math.Pi*2)
		spd := rangeF(r, 90, 240)
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: rangeF(r, 6, 12), MaxLife: rangeF(r, 0.12, 0.3),
			Col: Palette.Spark, Kind: ParticleSpark,
		})
	}

	for range 4 {
		ps.Add(Particle{
			X: x + rangeF(r, -4, 4), Y: y + rangeF(r, -4, 4),
			VX: rangeF(r, -15, 15), VY: rangeF(r, -20, -5),
			Size: rangeF(r, 8, 12), Life: -rangeF(r, 0, 0.08), MaxLife: rangeF(r, 0.5, 0.8),
			Col: Palette.Shadow.Add(60, 60, 60), Kind: ParticleSmoke,
		})
	}
}

// SpawnFeathers puffs a few feathers behind a flapping bird.
func (ps *ParticleSystem) SpawnFeathers(x, y float64, col RGB) {
	r := ps.rng
	for range 3 {
		ps.Add(Particle{
			X: x + rangeF(r, -4, 4), Y: y + rangeF(r, -3, 3),
			VX: rangeF(r, -70, -30), VY: rangeF(r, 10, 40),
			Size: rangeF(r, 2, 3.5), Spin: rangeF(r, -6, 6),
			MaxLife: rangeF(r, 0.4, 0.7),
			Col:     col, Kind: ParticleFeather,
		})
	}
}

// SpawnMuzzle flashes at a bullet's spawn point.
func (ps *ParticleSystem) SpawnMuzzle(x, y float64) {
	r := ps.rng
	for range 4 {
		ps.Add(Particle{
			X: x, Y: y,
			VX: rangeF(r, -50, 50), VY: rangeF(r, -160, -60),
			Size: rangeF(r, 5, 9), MaxLife: rangeF(r, 0.06, 0.14),
			Col: Palette.Bullet, Kind: ParticleSpark,
		})
	}
}

// SpawnCrash scatters debris where the player died.
func (ps *ParticleSystem) SpawnCrash(x, y float64, col RGB) {
	r := ps.rng
	for range 28 {
		ang := rangeF(r, 0, math.Pi*2)
		spd := rangeF(r, 80, 260)
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang)*spd - 80,
			Size: rangeF(r, 2.5, 5), Spin: rangeF(r, -10, 10),
			MaxLife: rangeF(r, 0.7, 1.2),
			Col:     lerpRGB(col, ChaosColors[r.Intn(len(ChaosColors))], rangeF(r, 0, 0.5)),
			Kind:    ParticleDebris,
		})
	}
}
