package effects

import "math"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	return RGB{
		R: uint8(clamp(int(c.R)+dr, 0, 255)),
		G: uint8(clamp(int(c.G)+dg, 0, 255)),
		B: uint8(clamp(int(c.B)+db, 0, 255)),
	}
}

// Lerp blends toward o by t in [0,1].
func (c RGB) Lerp(o RGB, t float64) RGB { return lerpRGB(c, o, t) }

// F32 returns the colour as normalized floats.
func (c RGB) F32() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

// Hex parses "#rrggbb". Malformed input yields black.
func Hex(s string) RGB {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}
	}
	var v [3]uint8
	for i := range v {
		hi, ok1 := hexNibble(s[1+i*2])
		lo, ok2 := hexNibble(s[2+i*2])
		if !ok1 || !ok2 {
			return RGB{}
		}
		v[i] = hi<<4 | lo
	}
	return RGB{R: v[0], G: v[1], B: v[2]}
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// HSL converts hue in degrees, saturation and lightness in [0,1].
func HSL(h, s, l float64) RGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	to8 := func(v float64) uint8 { return uint8(math.Round(clampF(v+m, 0, 1) * 255)) }
	return RGB{R: to8(r), G: to8(g), B: to8(b)}
}

// ChaosColors is the neon set used for popups, flashes and pipe tags.
var ChaosColors = [8]RGB{
	Hex("#ff00ff"), Hex("#00ffff"), Hex("#ffff00"), Hex("#ff0000"),
	Hex("#00ff00"), Hex("#ff8800"), Hex("#8800ff"), Hex("#ff0088"),
}

var Palette = struct {
	White    RGB
	Black    RGB
	Yellow   RGB
	Red      RGB
	Green    RGB
	Blue     RGB
	Eye      RGB
	Pupil    RGB
	Bullet   RGB
	Enemy    RGB
	EnemyEye RGB
	Spark    RGB
	Shadow   RGB
}{
	White:    RGB{R: 255, G: 255, B: 255},
	Black:    RGB{R: 0, G: 0, B: 0},
	Yellow:   RGB{R: 255, G: 255, B: 100},
	Red:      RGB{R: 255, G: 80, B: 80},
	Green:    RGB{R: 100, G: 255, B: 100},
	Blue:     RGB{R: 60, G: 140, B: 255},
	Eye:      RGB{R: 255, G: 255, B: 255},
	Pupil:    RGB{R: 0, G: 0, B: 0},
	Bullet:   RGB{R: 255, G: 240, B: 120},
	Enemy:    RGB{R: 70, G: 40, B: 60},
	EnemyEye: RGB{R: 255, G: 60, B: 60},
	Spark:    RGB{R: 255, G: 200, B: 90},
	Shadow:   RGB{R: 20, G: 20, B: 30},
}
