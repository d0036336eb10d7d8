package term

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/brandonlouis96/brainrot-flappy/internal/audio"
	"github.com/brandonlouis96/brainrot-flappy/internal/config"
	"github.com/brandonlouis96/brainrot-flappy/internal/effects"
	"github.com/brandonlouis96/brainrot-flappy/internal/sim"
)

// Game is one terminal run: a session, its presentation state and the
// screen it draws to. All methods run on the frame loop goroutine.
type Game struct {
	screen tcell.Screen
	loop   *sim.Loop

	session   *sim.Session
	fx        *effects.Effects
	shake     effects.Shake
	particles *effects.ParticleSystem
	view      View
	snd       *audio.System

	themeIdx  int
	seed      uint64
	elapsed   float64
	mouseDown bool

	pendingField sim.Playfield
	hasPending   bool
}

// NewGame wires a session to screen. The playfield follows the terminal
// size; clock stamps every tick and action.
func NewGame(screen tcell.Screen, clock sim.Clock, cfg config.Settings, seed uint64, snd *audio.System) *Game {
	bus := sim.NewEventBus()
	g := &Game{
		screen:    screen,
		session:   sim.NewSession(sim.NewRand(seed), bus),
		particles: effects.NewParticleSystem(MaxParticles, seed^0xBEAD),
		snd:       snd,
		themeIdx:  effects.ThemeByName(cfg.Theme),
		seed:      seed,
	}
	g.loop = sim.NewLoop(clock, g.session, nil)
	g.fx = effects.New(sim.NewRand(seed^0xF00D), &g.shake, g.particles)
	g.fx.Attach(bus)
	snd.Attach(bus)

	g.resize()
	g.applyPendingField()
	g.session.Tick(clock.Now())
	return g
}

func (g *Game) Session() *sim.Session { return g.session }

// Theme is the currently selected map name.
func (g *Game) Theme() string { return effects.AllThemes[g.themeIdx].Name }

// HandleEvent reacts to one terminal event and reports whether the run
// should end.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev)
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !g.mouseDown {
			g.loop.Action()
		}
		g.mouseDown = down
	case *tcell.EventResize:
		g.resize()
		g.screen.Sync()
	}
	return false
}

func (g *Game) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		g.loop.Action()
	case tcell.KeyLeft:
		g.cycleTheme(-1)
	case tcell.KeyRight:
		g.cycleTheme(1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'w', 'W':
			g.loop.Action()
		case 'q', 'Q':
			return true
		}
	}
	return false
}

// cycleTheme only works off the playing state, like the desktop menus.
func (g *Game) cycleTheme(delta int) {
	if g.session.State() == sim.StatePlaying {
		return
	}
	g.themeIdx = effects.CycleTheme(g.themeIdx, delta)
	g.snd.Play(audio.SoundMenuSelect)
}

// resize records the geometry for the current terminal. It reaches the
// session only between play-throughs so a running game keeps its field.
func (g *Game) resize() {
	cols, rows := g.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	g.pendingField = FieldForSize(cols, rows)
	g.hasPending = true
}

func (g *Game) applyPendingField() {
	if !g.hasPending || g.session.State() == sim.StatePlaying {
		return
	}
	g.session.SetPlayfield(g.pendingField)
	g.hasPending = false
}

// Frame advances one tick and renders. dt is wall time since the last
// frame in seconds and only drives presentation.
func (g *Game) Frame(dt float64) {
	if dt > MaxFrameDT {
		dt = MaxFrameDT
	}
	g.elapsed += dt

	g.applyPendingField()
	g.loop.Step()

	g.fx.SetField(g.session.Playfield())
	g.fx.Update(dt)
	g.shake.UpdateShake(dt, g.seed^uint64(g.elapsed*1000))

	g.view.Render(g.screen, g.session, g.fx, g.particles, &g.shake, effects.AllThemes[g.themeIdx])
}

// Run polls input on its own goroutine and steps once per frame until
// Escape or q. It returns the map selected at exit.
func (g *Game) Run() string {
	events := make(chan tcell.Event, eventBuffer)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(FrameDuration)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if g.HandleEvent(ev) {
				return g.Theme()
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			g.Frame(dt)
		}
	}
}

// RunTerminal opens the terminal, plays until quit and restores it.
func RunTerminal(cfg config.Settings, seed uint64, snd *audio.System) (string, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return cfg.Theme, fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return cfg.Theme, fmt.Errorf("term: init: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.HideCursor()
	screen.EnableMouse()
	screen.Clear()

	cols, rows := screen.Size()
	log.Printf("term: %dx%d cells", cols, rows)

	g := NewGame(screen, sim.NewMonotonicClock(), cfg, seed, snd)
	return g.Run(), nil
}
