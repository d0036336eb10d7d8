package effects

import (
	"fmt"
	"math"

	"github.com/brandonlouis96/brainrot-flappy/internal/sim"
)

// DeathMessages is the pool the game-over screen picks from.
var DeathMessages = []string{
	"You lack sigma energy",
	"No rizz detected",
	"Ohio claimed another victim",
	"Skill issue (6/7)",
	"Fanum taxed your life",
	"Not bussin at all",
	"L + Ratio + No mewing",
	"Skibidi toilet flushed you",
	"Zero aura detected",
	"You forgot to mew",
}

// Popup positions were tuned on a 400x600 field and scale with it.
const (
	refFieldW = 400.0
	refFieldH = 600.0
)

// Popup is a floating meme label in world space.
type Popup struct {
	Text   string
	X, Y   float64
	DX, DY float64 // total travel over Life
	Col    RGB
	Large  bool
	Chaos  bool
	Age    float64 // negative = delayed start
	Life   float64
}

func (p Popup) Visible() bool { return p.Age >= 0 && p.Age < p.Life }

func (p Popup) progress() float64 { return clampF(p.Age/p.Life, 0, 1) }

// Pos is the eased current position.
func (p Popup) Pos() (float64, float64) {
	t := p.progress()
	e := 1 - (1-t)*(1-t)
	return p.X + p.DX*e, p.Y + p.DY*e
}

// Alpha fades the last 40% of life.
func (p Popup) Alpha() float64 {
	t := p.progress()
	if t < 0.6 {
		return 1
	}
	return clampF((1-t)/0.4, 0, 1)
}

// Scale is the text scale multiplier; chaos popups wobble.
func (p Popup) Scale() float64 {
	s := 2.0
	if p.Large {
		s = 3.0
	}
	t := p.progress()
	s *= 0.6 + 0.4*math.Min(t/0.15, 1)
	if p.Chaos {
		s *= 1 + 0.12*math.Sin(p.Age*40)
	}
	return s
}

// Effects turns simulation events into the presentation layer's chaos:
// popups, flashes, shake, debris. It never feeds back into the session.
type Effects struct {
	rng       sim.Source
	shake     *Shake
	particles *ParticleSystem
	field     sim.Playfield

	Popups       []Popup
	FlashCol     RGB
	FlashTimer   float64
	Tint         RGB
	TintOn       bool
	Banner       string
	BannerTimer  float64
	DeathMessage string
	Hue          float64 // player rainbow, degrees
	Chaos        int
}

func New(rng sim.Source, shake *Shake, particles *ParticleSystem) *Effects {
	return &Effects{
		rng:       rng,
		shake:     shake,
		particles: particles,
		field:     sim.DefaultPlayfield(),
		Chaos:     sim.DefaultChaosLevel,
	}
}

// Attach subscribes to every event the layer reacts to.
func (fx *Effects) Attach(bus *sim.EventBus) {
	for _, t := range []sim.EventType{
		sim.EventSessionStarted,
		sim.EventScoreChanged,
		sim.EventMilestone,
		sim.EventModeEntered,
		sim.EventGameOver,
		sim.EventEntityDestroyed,
		sim.EventFlap,
		sim.EventShot,
	} {
		bus.Subscribe(t, fx.Handle)
	}
}

// SetField keeps random placement inside the current playfield.
func (fx *Effects) SetField(f sim.Playfield) { fx.field = f }

func (fx *Effects) Handle(e sim.Event) {
	switch e.Type {
	case sim.EventSessionStarted:
		fx.reset()
	case sim.EventScoreChanged:
		fx.onScore(e)
	case sim.EventMilestone:
		fx.addPopup(refFieldW/2, 250, "6-7", true, true, 0)
		fx.shake.AddShake(ShakeIntense, ShakeIntenseTime)
	case sim.EventModeEntered:
		if e.Mode == sim.ModeShooter {
			fx.Banner = "SHOOTER MODE"
			fx.BannerTimer = BannerTime
			fx.shake.AddShake(ShakeIntense, ShakeIntenseTime)
			fx.flash()
		}
	case sim.EventGameOver:
		fx.onGameOver(e)
	case sim.EventEntityDestroyed:
		if e.Kind == sim.KindEnemy && e.Killed {
			fx.particles.SpawnKillBurst(e.X, e.Y, sim.EnemyMaxSize, Palette.Enemy)
			fx.Popups = append(fx.Popups, Popup{
				Text: fmt.Sprintf("+%d", sim.KillBonus),
				X:    e.X, Y: e.Y, DY: -40,
				Col:  Palette.Yellow, Life: PopupLife,
			})
		}
	case sim.EventFlap:
		fx.particles.SpawnFeathers(e.X, e.Y+sim.PlayerHeight/2, HSL(fx.Hue, 1, 0.5))
	case sim.EventShot:
		fx.particles.SpawnMuzzle(e.X, e.Y)
	}
}

func (fx *Effects) reset() {
	fx.Popups = fx.Popups[:0]
	fx.FlashTimer = 0
	fx.TintOn = false
	fx.Banner = ""
	fx.BannerTimer = 0
	fx.DeathMessage = ""
	fx.Chaos = sim.DefaultChaosLevel
	fx.particles.Clear()
}

func (fx *Effects) onScore(e sim.Event) {
	fx.Chaos = e.Chaos

	fx.addPopup(100+fx.rng.Float64()*200, 100+fx.rng.Float64()*300, fx.meme(), e.Chaos >= 2, e.Chaos >= 3, 0)

	if e.Chaos >= 2 {
		if e.Chaos >= 3 {
			fx.shake.AddShake(ShakeIntense, ShakeIntenseTime)
		} else {
			fx.shake.AddShake(ShakeSoft, ShakeSoftTime)
		}
		fx.flash()
		fx.addPopup(50+fx.rng.Float64()*300, 50+fx.rng.Float64()*400, fx.meme(), false, true, PopupStagger)
	}

	if e.Chaos >= 3 {
		fx.explode(e.X, e.Y, e.Score)
		for i := range 3 {
			fx.addPopup(fx.rng.Float64()*350, fx.rng.Float64()*500, fx.meme(), fx.rng.Float64() > 0.5, true, float64(i)*PopupStagger)
		}
	}
}

func (fx *Effects) onGameOver(e sim.Event) {
	fx.DeathMessage = DeathMessages[fx.rng.Intn(len(DeathMessages))]
	fx.shake.AddShake(ShakeIntense, ShakeIntenseTime)

	cx, cy := e.X+sim.PlayerWidth/2, e.Y+sim.PlayerHeight/2
	fx.explode(cx, cy, e.Score)
	fx.particles.SpawnCrash(cx, cy, HSL(fx.Hue, 1, 0.5))
	for i := range 5 {
		fx.addPopup(fx.rng.Float64()*350, fx.rng.Float64()*500, fx.meme(), true, true, float64(i)*PopupStagger)
	}
}

// explode radiates memes out from (x, y); more with a higher score.
func (fx *Effects) explode(x, y float64, score int) {
	n := ExplosionMinCount + score/3
	if n > ExplosionMaxCount {
		n = ExplosionMaxCount
	}
	for i := range n {
		ang := math.Pi * 2 / float64(n) * float64(i)
		d := 100 + fx.rng.Float64()*100
		fx.Popups = append(fx.Popups, Popup{
			Text: fx.meme(),
			X:    x, Y: y,
			DX:   math.Cos(ang) * d, DY: math.Sin(ang) * d,
			Col:  fx.color(),
			Life: PopupLife,
		})
	}
}

// addPopup places a popup using reference-field coordinates.
func (fx *Effects) addPopup(rx, ry float64, text string, large, chaos bool, delay float64) {
	fx.Popups = append(fx.Popups, Popup{
		Text:  text,
		X:     rx * fx.field.W / refFieldW,
		Y:     ry * fx.field.H / refFieldH,
		DY:    -30,
		Col:   fx.color(),
		Large: large,
		Chaos: chaos,
		Age:   -delay,
		Life:  PopupLife,
	})
}

func (fx *Effects) flash() {
	fx.FlashCol = fx.color()
	fx.FlashTimer = FlashTime
}

func (fx *Effects) meme() string { return sim.Memes[fx.rng.Intn(len(sim.Memes))] }

func (fx *Effects) color() RGB { return ChaosColors[fx.rng.Intn(len(ChaosColors))] }

// Update ages every timed effect by dt seconds.
func (fx *Effects) Update(dt float64) {
	kept := fx.Popups[:0]
	for _, p := range fx.Popups {
		p.Age += dt
		if p.Age >= p.Life {
			continue
		}
		kept = append(kept, p)
	}
	fx.Popups = kept

	if fx.FlashTimer > 0 {
		fx.FlashTimer = math.Max(0, fx.FlashTimer-dt)
	}
	if fx.BannerTimer > 0 {
		fx.BannerTimer = math.Max(0, fx.BannerTimer-dt)
		if fx.BannerTimer == 0 {
			fx.Banner = ""
		}
	}

	fx.Hue = math.Mod(fx.Hue+3*60*dt, 360)

	fx.TintOn = fx.Chaos >= sim.MaxChaosLevel && fx.rng.Float64() < ChaosTintChance
	if fx.TintOn {
		fx.Tint = fx.color()
	}

	fx.particles.Update(dt)
}

// FlashAlpha is the current overlay strength of the colour flash.
func (fx *Effects) FlashAlpha() float64 {
	return 0.5 * fx.FlashTimer / FlashTime
}
