package game

import (
	"fmt"

	"github.com/brandonlouis96/brainrot-flappy/internal/effects"
	"github.com/brandonlouis96/brainrot-flappy/internal/sim"
)

// RenderLabels queues world-anchored text (pipe memes, popups) through the
// shaking camera.
func RenderLabels(r *Renderer, labels []Label, cam Camera, fbW, fbH int) {
	for _, l := range labels {
		sx, sy := cam.WorldToScreen(l.X, l.Y, fbW, fbH)
		scale := float32(l.Scale * cam.Zoom)
		h := int(float32(FontCellH) * scale)
		r.DrawShadowed(l.Text, int(sx), int(sy)-h/2, scale, l.Col, float32(l.Alpha))
	}
}

// RenderHUD draws all screen-space UI. It uses the stable camera so the
// HUD never shakes.
func RenderHUD(r *Renderer, s *sim.Session, fx *effects.Effects, theme effects.ThemeConfig, cam Camera, fbW, fbH int) {
	white := effects.Palette.White
	yellow := effects.Palette.Yellow
	red := effects.Palette.Red

	u := float32(cam.Zoom)
	if u < 1 {
		u = 1
	}
	hs := func(v float32) float32 { return v * u }
	fieldLeft, _ := cam.WorldToScreen(0, 0, fbW, fbH)
	left := int(fieldLeft) + 8
	_, fieldBottom := cam.WorldToScreen(0, s.Playfield().H, fbW, fbH)
	right, _ := cam.WorldToScreen(s.Playfield().W, 0, fbW, fbH)
	cx := fbW / 2

	switch s.State() {
	case sim.StateStart:
		r.DrawShadowed("BRAINROT", cx, fbH/2-int(hs(130)), hs(4), effects.HSL(fx.Hue, 1, 0.6), 1)
		r.DrawShadowed("FLAPPY", cx, fbH/2-int(hs(80)), hs(4), effects.HSL(fx.Hue+120, 1, 0.6), 1)

		r.DrawShadowed("Press SPACE or click to start", cx, fbH/2, hs(1.5), white, 1)
		r.DrawShadowed(fmt.Sprintf("< MAP: %s >", theme.Name), cx, fbH/2+int(hs(40)), hs(1.5), yellow, 1)
		r.DrawShadowed("Reach 10 to unlock 6-7 mode", cx, fbH/2+int(hs(80)), hs(1.2), white, 0.8)

	case sim.StatePlaying:
		score := fmt.Sprintf("%d", s.Score())
		r.DrawShadowed(score, cx, int(hs(20)), hs(4), white, 1)

		hi := fmt.Sprintf("HI %d", s.HighScore())
		r.DrawShadowed(hi, int(right)-8-TextWidth(hi, hs(1.4))/2, 8, hs(1.4), yellow, 1)

		chaos := fmt.Sprintf("CHAOS %s%s", repeatChar('#', s.ChaosLevel()), repeatChar('.', sim.MaxChaosLevel-s.ChaosLevel()))
		chaosCol := white
		if s.ChaosLevel() >= sim.MaxChaosLevel {
			chaosCol = effects.HSL(fx.Hue*2, 1, 0.6)
		}
		r.DrawString(chaos, left, 8, hs(1.4), chaosCol)

		if s.Mode() == sim.ModeShooter {
			r.DrawShadowed("SPACE / CLICK = SHOOT", cx, int(fieldBottom)-int(hs(18)), hs(1.1), white, 0.7)
		}
		if fx.Banner != "" {
			a := float32(clampF(fx.BannerTimer/0.4, 0, 1))
			r.DrawShadowed(fx.Banner, cx, fbH/2-int(hs(60)), hs(3), effects.HSL(fx.Hue, 1, 0.55), a)
		}

	case sim.StateGameOver:
		r.DrawShadowed("GAME OVER", cx, fbH/2-int(hs(140)), hs(4), red, 1)
		r.DrawShadowed(fx.DeathMessage, cx, fbH/2-int(hs(80)), hs(1.6), yellow, 1)

		r.DrawShadowed(fmt.Sprintf("Score: %d", s.Score()), cx, fbH/2-int(hs(30)), hs(2), white, 1)
		best := fmt.Sprintf("Best: %d", s.HighScore())
		bestCol := white
		if s.Score() > 0 && s.Score() == s.HighScore() {
			best += "  NEW!"
			bestCol = effects.HSL(fx.Hue, 1, 0.6)
		}
		r.DrawShadowed(best, cx, fbH/2+int(hs(5)), hs(2), bestCol, 1)

		r.DrawShadowed("Press SPACE to restart", cx, fbH/2+int(hs(60)), hs(1.5), white, 1)
		r.DrawShadowed(fmt.Sprintf("< MAP: %s >", theme.Name), cx, fbH/2+int(hs(95)), hs(1.3), yellow, 1)
	}

	r.FlushText(fbW, fbH)
}

// repeatChar returns a string of n copies of ch.
func repeatChar(ch byte, n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ch
	}
	return string(b)
}
