package game

import (
	"math"

	"github.com/brandonlouis96/brainrot-flappy/internal/effects"
	"github.com/brandonlouis96/brainrot-flappy/internal/sim"
)

type Camera struct {
	X, Y float64 // world-pixel space, camera centre
	Zoom float64 // screen pixels per world pixel

	effects.Shake
}

// EffectivePos returns camera position with shake applied.
func (c *Camera) EffectivePos() (float64, float64) {
	return c.X + c.OffX, c.Y + c.OffY
}

// FitPlayfield letterboxes the whole field into the framebuffer.
func (c *Camera) FitPlayfield(field sim.Playfield, fbW, fbH int) {
	if field.W <= 0 || field.H <= 0 || fbW <= 0 || fbH <= 0 {
		return
	}
	c.Zoom = math.Min(float64(fbW)/field.W, float64(fbH)/field.H)
	c.X = field.W / 2
	c.Y = field.H / 2
}

// WorldToScreen maps a world point into framebuffer pixels.
func (c Camera) WorldToScreen(wx, wy float64, fbW, fbH int) (float64, float64) {
	sx := (wx-c.X)*c.Zoom + float64(fbW)*0.5
	sy := (wy-c.Y)*c.Zoom + float64(fbH)*0.5
	return sx, sy
}
