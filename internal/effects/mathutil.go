package effects

import "github.com/brandonlouis96/brainrot-flappy/internal/sim"

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerpU8(a, b uint8, t float64) uint8 {
	t = clampF(t, 0, 1)
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

func lerpRGB(a, b RGB, t float64) RGB {
	return RGB{
		R: lerpU8(a.R, b.R, t),
		G: lerpU8(a.G, b.G, t),
		B: lerpU8(a.B, b.B, t),
	}
}

// rangeF draws uniformly from [lo, hi).
func rangeF(src sim.Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}
