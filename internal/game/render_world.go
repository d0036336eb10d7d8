package game

import (
	"math"

	"github.com/brandonlouis96/brainrot-flappy/internal/effects"
	"github.com/brandonlouis96/brainrot-flappy/internal/sim"
)

const (
	pipeCapOverhang = 5.0
	pipeCapHeight   = 30.0
	pipeStroke      = 3.0
	groundBand      = 5.0
	memeAboveGap    = 45.0
	memeBelowGap    = 50.0
	memeMinGapY     = 50.0
)

// Label is world-anchored text drawn in the text pass.
type Label struct {
	Text  string
	X, Y  float64 // centre
	Col   effects.RGB
	Scale float64
	Alpha float64
}

// Scene is one frame's worth of world geometry, split by draw program.
type Scene struct {
	Back    Shapes // sky, pipes, ground, bodies
	Discs   []float32
	Glow    []float32
	Overlay Shapes // colour flash and chaos tint
	Labels  []Label
}

func (sc *Scene) Reset() {
	sc.Back.Reset()
	sc.Overlay.Reset()
	sc.Discs = sc.Discs[:0]
	sc.Glow = sc.Glow[:0]
	sc.Labels = sc.Labels[:0]
}

func (sc *Scene) disc(x, y, d float64, col effects.RGB, a float64) {
	r, g, b := col.F32()
	sc.Discs = append(sc.Discs, float32(x), float32(y), float32(d), r, g, b, float32(a), 0)
}

func (sc *Scene) glow(x, y, d float64, col effects.RGB, k float64) {
	r, g, b := col.F32()
	kk := float32(k)
	sc.Glow = append(sc.Glow, float32(x), float32(y), float32(d), r*kk, g*kk, b*kk, 1, 0)
}

// BuildScene fills sc from the session and the presentation state. t is
// wall-clock seconds for idle animation.
func BuildScene(sc *Scene, s *sim.Session, theme effects.ThemeConfig, fx *effects.Effects, t float64) {
	sc.Reset()
	field := s.Playfield()

	drawSky(sc, field, theme)
	for _, p := range s.Pipes() {
		drawPipe(sc, p, field, theme)
	}
	drawGround(sc, field, theme)

	for _, e := range s.Enemies() {
		drawEnemy(sc, e, t)
	}
	for _, b := range s.Bullets() {
		sc.disc(b.X, b.Y, 8, effects.Palette.Bullet, 1)
		sc.glow(b.X, b.Y, 22, effects.Palette.Bullet, 0.55)
	}

	drawPlayer(sc, s.Player(), s.Mode(), fx.Hue, t)

	if fx.FlashTimer > 0 {
		sc.Overlay.Rect(0, 0, field.W, field.H, fx.FlashCol, fx.FlashAlpha())
	}
	if fx.TintOn {
		sc.Overlay.Rect(0, 0, field.W, field.H, fx.Tint, 0.2)
	}

	for _, p := range fx.Popups {
		if !p.Visible() {
			continue
		}
		x, y := p.Pos()
		sc.Labels = append(sc.Labels, Label{Text: p.Text, X: x, Y: y, Col: p.Col, Scale: p.Scale(), Alpha: p.Alpha()})
	}
}

// drawSky is a three-stop vertical gradient: top, bottom at 70%, ground colour at the floor.
func drawSky(sc *Scene, field sim.Playfield, theme effects.ThemeConfig) {
	split := field.H * 0.7
	sc.Back.GradientV(0, 0, field.W, split, theme.SkyTop, theme.SkyBottom)
	sc.Back.GradientV(0, split, field.W, field.H-split, theme.SkyBottom, theme.Ground)
}

func drawGround(sc *Scene, field sim.Playfield, theme effects.ThemeConfig) {
	floor := field.FloorY()
	sc.Back.Rect(0, floor, field.W, field.H-floor, theme.GroundDirt, 1)
	sc.Back.Rect(0, floor-groundBand, field.W, groundBand, theme.Ground, 1)
}

func drawPipe(sc *Scene, p sim.Pipe, field sim.Playfield, theme effects.ThemeConfig) {
	floor := field.FloorY()
	w := sim.PipeWidth

	// Bodies.
	sc.Back.GradientH(p.X, 0, w, p.GapY, theme.Pipe)
	sc.Back.Outline(p.X, -pipeStroke, w, p.GapY+pipeStroke, pipeStroke, theme.PipeStroke)
	sc.Back.GradientH(p.X, p.GapBottom(), w, floor-p.GapBottom(), theme.Pipe)
	sc.Back.Outline(p.X, p.GapBottom(), w, floor-p.GapBottom()+pipeStroke, pipeStroke, theme.PipeStroke)

	// Caps.
	cx, cw := p.X-pipeCapOverhang, w+2*pipeCapOverhang
	sc.Back.GradientH(cx, p.GapY-pipeCapHeight, cw, pipeCapHeight, theme.Pipe)
	sc.Back.Outline(cx, p.GapY-pipeCapHeight, cw, pipeCapHeight, pipeStroke, theme.PipeStroke)
	sc.Back.GradientH(cx, p.GapBottom(), cw, pipeCapHeight, theme.Pipe)
	sc.Back.Outline(cx, p.GapBottom(), cw, pipeCapHeight, pipeStroke, theme.PipeStroke)

	if theme.Neon {
		mid := p.X + w/2
		sc.glow(mid, p.GapY, w*1.6, theme.Pipe[0], 0.35)
		sc.glow(mid, p.GapBottom(), w*1.6, theme.Pipe[1], 0.35)
	}

	col := effects.ChaosColors[p.ColorIdx%len(effects.ChaosColors)]
	if p.Meme == "" {
		return
	}
	mid := p.X + w/2
	if p.GapY > memeMinGapY {
		sc.Labels = append(sc.Labels, Label{Text: p.Meme, X: mid, Y: p.GapY - memeAboveGap, Col: col, Scale: 1.5, Alpha: 1})
	}
	sc.Labels = append(sc.Labels, Label{Text: p.Meme, X: mid, Y: p.GapBottom() + memeBelowGap, Col: col, Scale: 1.5, Alpha: 1})
}

// drawPlayer is the rainbow bird: complementary outline, eye, beak. In
// the shooter stance it carries a barrel pointing up.
func drawPlayer(sc *Scene, p sim.Player, mode sim.ModeKind, hue, t float64) {
	cx, cy := p.Center()
	rot := p.Rotation * math.Pi / 180
	rx, ry := p.W/2, p.H/2

	body := effects.HSL(hue, 1, 0.5)
	stroke := effects.HSL(hue+180, 1, 0.5)
	beak := effects.HSL(hue+60, 1, 0.5)

	if mode == sim.ModeShooter {
		sc.Back.Rect(cx-3, p.Y-14, 6, 16, effects.Palette.Shadow, 1)
		sc.Back.Rect(cx-4, p.Y-16, 8, 4, stroke, 1)
	}

	sc.Back.Ellipse(cx, cy, rx+2, ry+2, rot, stroke, 1)
	sc.Back.Ellipse(cx, cy, rx, ry, rot, body, 1)

	// Wing flutter.
	wy := 4 + 3*math.Sin(t*18)
	w0x, w0y := Local(cx, cy, rot, -10, 0)
	w1x, w1y := Local(cx, cy, rot, 4, 0)
	w2x, w2y := Local(cx, cy, rot, -6, wy+6)
	sc.Back.Triangle(w0x, w0y, w1x, w1y, w2x, w2y, stroke, 0.85)

	b0x, b0y := Local(cx, cy, rot, rx-4, -2)
	b1x, b1y := Local(cx, cy, rot, rx+10, 3)
	b2x, b2y := Local(cx, cy, rot, rx-4, 8)
	sc.Back.Triangle(b0x, b0y, b1x, b1y, b2x, b2y, beak, 1)

	ex, ey := Local(cx, cy, rot, 8, -5)
	sc.disc(ex, ey, 16, effects.Palette.Eye, 1)
	px, py := Local(cx, cy, rot, 10, -5)
	sc.disc(px, py, 8, effects.Palette.Pupil, 1)
}

func enemyColor(b sim.Behavior) effects.RGB {
	switch b {
	case sim.BehaviorDiveTargeted:
		return effects.Palette.Enemy.Add(70, -10, -10)
	case sim.BehaviorDiveRandom:
		return effects.Palette.Enemy.Add(-20, -10, 30)
	}
	return effects.Palette.Enemy
}

// drawEnemy draws a dark bird facing its heading, wings beating.
func drawEnemy(sc *Scene, e sim.EnemyBird, t float64) {
	col := enemyColor(e.Behavior)
	rot := math.Atan2(e.VY, e.VX)
	flap := math.Sin(t*14+float64(e.ID)) * e.Size * 0.6

	l0x, l0y := Local(e.X, e.Y, rot, -e.Size*0.2, 0)
	l1x, l1y := Local(e.X, e.Y, rot, e.Size*0.3, 0)
	l2x, l2y := Local(e.X, e.Y, rot, -e.Size*0.4, -e.Size*0.9-flap)
	sc.Back.Triangle(l0x, l0y, l1x, l1y, l2x, l2y, col.Add(-20, -20, -20), 1)
	r2x, r2y := Local(e.X, e.Y, rot, -e.Size*0.4, e.Size*0.9+flap)
	sc.Back.Triangle(l0x, l0y, l1x, l1y, r2x, r2y, col.Add(-20, -20, -20), 1)

	sc.Back.Ellipse(e.X, e.Y, e.Size, e.Size*0.7, rot, col, 1)

	ex, ey := Local(e.X, e.Y, rot, e.Size*0.45, -e.Size*0.2)
	sc.disc(ex, ey, e.Size*0.45, effects.Palette.EnemyEye, 1)
	sc.glow(ex, ey, e.Size*1.2, effects.Palette.EnemyEye, 0.4)
}
