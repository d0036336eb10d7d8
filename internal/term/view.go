package term

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/brandonlouis96/brainrot-flappy/internal/effects"
	"github.com/brandonlouis96/brainrot-flappy/internal/sim"
)

const (
	memeAboveGap = 45.0
	memeBelowGap = 50.0
	memeMinGapY  = 50.0
	tintStrength = 0.2
)

// FieldForSize is the playfield a cols x rows terminal shows at one
// cell per CellW x CellH block.
func FieldForSize(cols, rows int) sim.Playfield {
	return sim.Playfield{W: float64(cols) * CellW, H: float64(rows) * CellH}
}

// View maps the session onto terminal cells. World coordinates are
// scaled to whatever the screen currently is, so a playfield that has
// not yet caught up with a resize still fills the terminal.
type View struct {
	cv     canvas
	sx, sy float64 // cells per logical pixel
	offX   float64 // shake, logical pixels
	offY   float64
}

func (v *View) cellX(x float64) int { return int((x + v.offX) * v.sx) }
func (v *View) cellY(y float64) int { return int((y + v.offY) * v.sy) }

// span converts a world range to a half-open cell range that is at
// least one cell wide.
func (v *View) span(lo, hi float64, cell func(float64) int) (int, int) {
	a, b := cell(lo), cell(hi)
	if b <= a {
		b = a + 1
	}
	return a, b
}

// Render composes one frame and shows it.
func (v *View) Render(screen tcell.Screen, s *sim.Session, fx *effects.Effects, particles *effects.ParticleSystem, shake *effects.Shake, theme effects.ThemeConfig) {
	cols, rows := screen.Size()
	v.Compose(cols, rows, s, fx, particles, shake, theme)
	v.cv.flush(screen)
}

// Compose draws the frame into the canvas without touching the screen.
func (v *View) Compose(cols, rows int, s *sim.Session, fx *effects.Effects, particles *effects.ParticleSystem, shake *effects.Shake, theme effects.ThemeConfig) {
	v.cv.resize(cols, rows)
	field := s.Playfield()
	v.sx = float64(cols) / field.W
	v.sy = float64(rows) / field.H
	v.offX, v.offY = 0, 0
	if shake != nil {
		v.offX, v.offY = shake.OffX, shake.OffY
	}

	v.drawSky(field, theme)
	for _, p := range s.Pipes() {
		v.drawPipe(p, field, theme)
	}
	v.drawGround(field, theme)

	for _, e := range s.Enemies() {
		v.drawEnemy(e)
	}
	for _, b := range s.Bullets() {
		v.cv.put(v.cellX(b.X), v.cellY(b.Y), '|', effects.Palette.Bullet)
	}
	v.drawPlayer(s.Player(), s.Mode(), fx.Hue)
	if particles != nil {
		v.drawParticles(particles)
	}

	if fx.FlashTimer > 0 {
		v.cv.blend(fx.FlashCol, fx.FlashAlpha())
	}
	if fx.TintOn {
		v.cv.blend(fx.Tint, tintStrength)
	}

	v.drawPopups(fx)

	// HUD ignores the shake.
	v.offX, v.offY = 0, 0
	v.drawHUD(s, fx, theme)
}

func (v *View) drawSky(field sim.Playfield, theme effects.ThemeConfig) {
	split := field.H * 0.7
	for y := 0; y < v.cv.rows; y++ {
		wy := (float64(y) + 0.5) / v.sy
		var bg effects.RGB
		if wy < split {
			bg = theme.SkyTop.Lerp(theme.SkyBottom, wy/split)
		} else {
			bg = theme.SkyBottom.Lerp(theme.Ground, (wy-split)/(field.H-split))
		}
		v.cv.fill(0, y, v.cv.cols, y+1, bg)
	}
}

func (v *View) drawGround(field sim.Playfield, theme effects.ThemeConfig) {
	top := v.cellY(field.FloorY())
	v.cv.fill(0, top, v.cv.cols, v.cv.rows, theme.GroundDirt)
	for x := 0; x < v.cv.cols; x++ {
		v.cv.put(x, top, '▀', theme.Ground)
	}
}

func (v *View) drawPipe(p sim.Pipe, field sim.Playfield, theme effects.ThemeConfig) {
	x0, x1 := v.span(p.X, p.X+sim.PipeWidth, v.cellX)
	gapTop := v.cellY(p.GapY)
	gapBottom := v.cellY(p.GapBottom())
	floor := v.cellY(field.FloorY())

	for x := x0; x < x1; x++ {
		col := theme.Pipe[1]
		switch {
		case x == x0:
			col = theme.Pipe[0]
		case x == x1-1:
			col = theme.Pipe[2]
		}
		v.cv.fill(x, 0, x+1, gapTop, col)
		v.cv.fill(x, gapBottom, x+1, floor, col)
	}
	// Caps.
	for x := x0 - 1; x <= x1; x++ {
		v.cv.put(x, gapTop-1, '▄', theme.PipeStroke)
		v.cv.put(x, gapBottom, '▀', theme.PipeStroke)
	}

	if p.Meme == "" {
		return
	}
	col := effects.ChaosColors[p.ColorIdx%len(effects.ChaosColors)]
	mid := (x0 + x1) / 2
	if p.GapY > memeMinGapY {
		v.cv.centered(mid, v.cellY(p.GapY-memeAboveGap), p.Meme, col)
	}
	v.cv.centered(mid, v.cellY(p.GapBottom()+memeBelowGap), p.Meme, col)
}

// drawPlayer fills the hitbox in the rainbow colour with an eye and a
// beak on the leading edge. The shooter stance shows a barrel.
func (v *View) drawPlayer(p sim.Player, mode sim.ModeKind, hue float64) {
	body := effects.HSL(hue, 1, 0.5)
	beak := effects.HSL(hue+60, 1, 0.5)
	x0, x1 := v.span(p.X, p.X+p.W, v.cellX)
	y0, y1 := v.span(p.Y, p.Y+p.H, v.cellY)

	v.cv.fill(x0, y0, x1, y1, body)
	v.cv.put(x1-1, y0, 'o', effects.Palette.Pupil)
	v.cv.put(x1, (y0+y1-1)/2, '>', beak)
	if mode == sim.ModeShooter {
		v.cv.put((x0+x1-1)/2, y0-1, '║', effects.HSL(hue+180, 1, 0.5))
	}
}

func (v *View) drawEnemy(e sim.EnemyBird) {
	ch := 'v'
	switch e.Behavior {
	case sim.BehaviorDiveTargeted:
		ch = 'V'
	case sim.BehaviorDiveRandom:
		ch = 'W'
	}
	x, y := v.cellX(e.X), v.cellY(e.Y)
	v.cv.put(x, y, ch, effects.Palette.Enemy.Add(120, 40, 40))
	if e.Size >= sim.EnemyMaxSize*0.75 {
		v.cv.put(x-1, y, '\\', effects.Palette.Enemy.Add(90, 30, 30))
		v.cv.put(x+1, y, '/', effects.Palette.Enemy.Add(90, 30, 30))
	}
}

func (v *View) drawParticles(ps *effects.ParticleSystem) {
	for i := range ps.P {
		p := &ps.P[i]
		if p.Life < 0 {
			continue
		}
		var ch rune
		switch p.Kind {
		case effects.ParticleSpark:
			ch = '*'
		case effects.ParticleFeather:
			ch = '~'
		case effects.ParticleSmoke:
			ch = '°'
		default:
			ch = '.'
		}
		v.cv.put(v.cellX(p.X), v.cellY(p.Y), ch, p.Col)
	}
}

func (v *View) drawPopups(fx *effects.Effects) {
	for _, p := range fx.Popups {
		if !p.Visible() || p.Alpha() < 0.2 {
			continue
		}
		x, y := p.Pos()
		text := p.Text
		if p.Large {
			text = strings.ToUpper(text)
		}
		v.cv.centered(v.cellX(x), v.cellY(y), text, p.Col)
	}
}

func (v *View) drawHUD(s *sim.Session, fx *effects.Effects, theme effects.ThemeConfig) {
	white := effects.Palette.White
	yellow := effects.Palette.Yellow
	cx := v.cv.cols / 2
	cy := v.cv.rows / 2
	mapLine := fmt.Sprintf("< MAP: %s >", theme.Name)

	switch s.State() {
	case sim.StateStart:
		v.cv.centered(cx, cy-4, "BRAINROT FLAPPY", effects.HSL(fx.Hue, 1, 0.6))
		v.cv.centered(cx, cy-1, "Press SPACE or click to start", white)
		v.cv.centered(cx, cy+1, mapLine, yellow)
		v.cv.centered(cx, cy+3, "Reach 10 to unlock 6-7 mode", white)

	case sim.StatePlaying:
		v.cv.centered(cx, 1, fmt.Sprintf("%d", s.Score()), white)
		hi := fmt.Sprintf("HI %d", s.HighScore())
		v.cv.text(v.cv.cols-len(hi)-1, 0, hi, yellow)

		chaos := "CHAOS " + strings.Repeat("#", s.ChaosLevel()) + strings.Repeat(".", sim.MaxChaosLevel-s.ChaosLevel())
		chaosCol := white
		if s.ChaosLevel() >= sim.MaxChaosLevel {
			chaosCol = effects.HSL(fx.Hue*2, 1, 0.6)
		}
		v.cv.text(1, 0, chaos, chaosCol)

		if s.Mode() == sim.ModeShooter {
			v.cv.centered(cx, v.cv.rows-1, "SPACE / CLICK = SHOOT", white)
		}
		if fx.Banner != "" {
			v.cv.centered(cx, cy-3, fx.Banner, effects.HSL(fx.Hue, 1, 0.55))
		}

	case sim.StateGameOver:
		v.cv.centered(cx, cy-5, "GAME OVER", effects.Palette.Red)
		v.cv.centered(cx, cy-3, fx.DeathMessage, yellow)
		v.cv.centered(cx, cy-1, fmt.Sprintf("Score: %d", s.Score()), white)
		best := fmt.Sprintf("Best: %d", s.HighScore())
		bestCol := white
		if s.Score() > 0 && s.Score() == s.HighScore() {
			best += "  NEW!"
			bestCol = effects.HSL(fx.Hue, 1, 0.6)
		}
		v.cv.centered(cx, cy, best, bestCol)
		v.cv.centered(cx, cy+2, "Press SPACE to restart", white)
		v.cv.centered(cx, cy+3, mapLine, yellow)
	}
}
