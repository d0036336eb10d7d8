package game

import (
	"math"

	"github.com/brandonlouis96/brainrot-flappy/internal/effects"
)

// ellipseSegments is the fan resolution for every ellipse and circle.
const ellipseSegments = 24

// Shapes accumulates world-space triangles for DrawShapes.
// Vertex format: x, y, r, g, b, a.
type Shapes struct {
	Buf []float32
}

func (s *Shapes) Reset() { s.Buf = s.Buf[:0] }

// Triangles is the number of queued triangles.
func (s *Shapes) Triangles() int { return len(s.Buf) / 18 }

func (s *Shapes) vertex(x, y float64, col effects.RGB, a float64) {
	r, g, b := col.F32()
	s.Buf = append(s.Buf, float32(x), float32(y), r, g, b, float32(a))
}

func (s *Shapes) Triangle(x0, y0, x1, y1, x2, y2 float64, col effects.RGB, a float64) {
	s.vertex(x0, y0, col, a)
	s.vertex(x1, y1, col, a)
	s.vertex(x2, y2, col, a)
}

// quad queues a rectangle with one colour per corner: tl, tr, br, bl.
func (s *Shapes) quad(x, y, w, h float64, tl, tr, br, bl effects.RGB, a float64) {
	s.vertex(x, y, tl, a)
	s.vertex(x+w, y, tr, a)
	s.vertex(x, y+h, bl, a)
	s.vertex(x+w, y, tr, a)
	s.vertex(x+w, y+h, br, a)
	s.vertex(x, y+h, bl, a)
}

func (s *Shapes) Rect(x, y, w, h float64, col effects.RGB, a float64) {
	if w <= 0 || h <= 0 {
		return
	}
	s.quad(x, y, w, h, col, col, col, col, a)
}

// GradientV blends top to bottom.
func (s *Shapes) GradientV(x, y, w, h float64, top, bottom effects.RGB) {
	if w <= 0 || h <= 0 {
		return
	}
	s.quad(x, y, w, h, top, top, bottom, bottom, 1)
}

// GradientH blends through three stops left to right.
func (s *Shapes) GradientH(x, y, w, h float64, stops [3]effects.RGB) {
	if w <= 0 || h <= 0 {
		return
	}
	half := w / 2
	s.quad(x, y, half, h, stops[0], stops[1], stops[1], stops[0], 1)
	s.quad(x+half, y, w-half, h, stops[1], stops[2], stops[2], stops[1], 1)
}

// Outline draws a rectangle border of thickness t inside the bounds.
func (s *Shapes) Outline(x, y, w, h, t float64, col effects.RGB) {
	s.Rect(x, y, w, t, col, 1)
	s.Rect(x, y+h-t, w, t, col, 1)
	s.Rect(x, y+t, t, h-2*t, col, 1)
	s.Rect(x+w-t, y+t, t, h-2*t, col, 1)
}

// Ellipse fills an ellipse centred at (cx, cy) rotated by rot radians.
func (s *Shapes) Ellipse(cx, cy, rx, ry, rot float64, col effects.RGB, a float64) {
	c, sn := math.Cos(rot), math.Sin(rot)
	px, py := cx+rx*c, cy+rx*sn
	for i := 1; i <= ellipseSegments; i++ {
		t := float64(i) / ellipseSegments * 2 * math.Pi
		lx, ly := rx*math.Cos(t), ry*math.Sin(t)
		nx, ny := cx+lx*c-ly*sn, cy+lx*sn+ly*c
		s.Triangle(cx, cy, px, py, nx, ny, col, a)
		px, py = nx, ny
	}
}

// Local maps a point in a body's rotated frame to world space.
func Local(cx, cy, rot, lx, ly float64) (float64, float64) {
	c, s := math.Cos(rot), math.Sin(rot)
	return cx + lx*c - ly*s, cy + lx*s + ly*c
}
