package effects

import (
	"testing"

	"github.com/brandonlouis96/brainrot-flappy/internal/sim"
)

// fixedSource returns the same draw every time.
type fixedSource struct {
	f float64
	i int
}

func (s fixedSource) Float64() float64 { return s.f }

func (s fixedSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.i % n
}

func newTestEffects(src sim.Source) (*Effects, *Shake) {
	sh := &Shake{}
	return New(src, sh, NewParticleSystem(256, 7)), sh
}

func countVisible(ps []Popup) int {
	n := 0
	for _, p := range ps {
		if p.Visible() {
			n++
		}
	}
	return n
}

func TestScorePopupAtMildChaos(t *testing.T) {
	fx, sh := newTestEffects(fixedSource{f: 0.5})

	fx.Handle(sim.Event{Type: sim.EventScoreChanged, Score: 1, Chaos: 1})

	if len(fx.Popups) != 1 {
		t.Fatalf("Expected one popup, got %d", len(fx.Popups))
	}
	p := fx.Popups[0]
	if p.Large || p.Chaos {
		t.Errorf("Expected plain popup at chaos 1, got %+v", p)
	}
	if p.X != 200 || p.Y != 250 {
		t.Errorf("Expected popup at (200,250), got (%v,%v)", p.X, p.Y)
	}
	if sh.Timer != 0 || fx.FlashTimer != 0 {
		t.Error("Expected no shake or flash at chaos 1")
	}
}

func TestScoreAtMediumChaosShakesAndFlashes(t *testing.T) {
	fx, sh := newTestEffects(fixedSource{f: 0.5, i: 2})

	fx.Handle(sim.Event{Type: sim.EventScoreChanged, Score: 6, Chaos: 2})

	if len(fx.Popups) != 2 {
		t.Fatalf("Expected two popups, got %d", len(fx.Popups))
	}
	if !fx.Popups[0].Large || fx.Popups[0].Chaos {
		t.Errorf("Expected large non-chaos main popup, got %+v", fx.Popups[0])
	}
	if countVisible(fx.Popups) != 1 {
		t.Errorf("Expected the extra popup to be delayed, %d visible", countVisible(fx.Popups))
	}
	if sh.Intensity != ShakeSoft {
		t.Errorf("Expected soft shake %v, got %v", ShakeSoft, sh.Intensity)
	}
	if fx.FlashTimer != FlashTime || fx.FlashCol != ChaosColors[2] {
		t.Errorf("Expected flash %v for %v, got %v for %v", ChaosColors[2], FlashTime, fx.FlashCol, fx.FlashTimer)
	}
}

func TestScoreAtMaxChaosExplodes(t *testing.T) {
	fx, sh := newTestEffects(fixedSource{f: 0.5})

	fx.Handle(sim.Event{Type: sim.EventScoreChanged, Score: 12, Chaos: 3, X: 100, Y: 300})

	explosion := ExplosionMinCount + 12/3
	want := 1 + 1 + explosion + 3
	if len(fx.Popups) != want {
		t.Fatalf("Expected %d popups, got %d", want, len(fx.Popups))
	}
	if sh.Intensity != ShakeIntense {
		t.Errorf("Expected intense shake, got %v", sh.Intensity)
	}

	radiating := 0
	for _, p := range fx.Popups {
		if p.X == 100 && p.Y == 300 && (p.DX != 0 || p.DY != 0) {
			radiating++
		}
	}
	if radiating != explosion {
		t.Errorf("Expected %d memes radiating from the score point, got %d", explosion, radiating)
	}
}

func TestExplosionIsCapped(t *testing.T) {
	fx, _ := newTestEffects(fixedSource{f: 0.5})
	fx.explode(0, 0, 300)
	if len(fx.Popups) != ExplosionMaxCount {
		t.Errorf("Expected %d memes, got %d", ExplosionMaxCount, len(fx.Popups))
	}
}

func TestMilestonePopup(t *testing.T) {
	fx, sh := newTestEffects(fixedSource{f: 0.5})

	fx.Handle(sim.Event{Type: sim.EventMilestone, Score: 3})

	if len(fx.Popups) != 1 || fx.Popups[0].Text != "6-7" {
		t.Fatalf("Expected a single 6-7 popup, got %+v", fx.Popups)
	}
	if !fx.Popups[0].Large || !fx.Popups[0].Chaos {
		t.Error("Expected milestone popup to be large and chaotic")
	}
	if sh.Intensity != ShakeIntense {
		t.Errorf("Expected intense shake, got %v", sh.Intensity)
	}
}

func TestGameOverPicksDeathMessage(t *testing.T) {
	fx, sh := newTestEffects(fixedSource{f: 0.5, i: 3})

	fx.Handle(sim.Event{Type: sim.EventGameOver, Score: 0, Reason: sim.ReasonFloor, X: 80, Y: 550})

	if fx.DeathMessage != DeathMessages[3] {
		t.Errorf("Expected %q, got %q", DeathMessages[3], fx.DeathMessage)
	}
	if want := ExplosionMinCount + 5; len(fx.Popups) != want {
		t.Errorf("Expected %d popups, got %d", want, len(fx.Popups))
	}
	if sh.Timer != ShakeIntenseTime {
		t.Errorf("Expected intense shake timer, got %v", sh.Timer)
	}
	if len(fx.particles.P) == 0 {
		t.Error("Expected crash debris")
	}
}

func TestSessionStartClearsEffects(t *testing.T) {
	fx, _ := newTestEffects(fixedSource{f: 0.5})
	fx.Handle(sim.Event{Type: sim.EventScoreChanged, Score: 12, Chaos: 3})
	fx.Handle(sim.Event{Type: sim.EventGameOver, Score: 12})

	fx.Handle(sim.Event{Type: sim.EventSessionStarted})

	if len(fx.Popups) != 0 || fx.DeathMessage != "" || fx.FlashTimer != 0 {
		t.Errorf("Expected a clean slate, got %d popups %q %v", len(fx.Popups), fx.DeathMessage, fx.FlashTimer)
	}
	if fx.Chaos != sim.DefaultChaosLevel {
		t.Errorf("Expected chaos reset, got %d", fx.Chaos)
	}
	if len(fx.particles.P) != 0 {
		t.Errorf("Expected particles cleared, got %d", len(fx.particles.P))
	}
}

func TestPopupsExpire(t *testing.T) {
	fx, _ := newTestEffects(fixedSource{f: 0.5})
	fx.Handle(sim.Event{Type: sim.EventScoreChanged, Score: 6, Chaos: 2})

	fx.Update(PopupStagger + 0.01)
	if countVisible(fx.Popups) != 2 {
		t.Errorf("Expected delayed popup visible after stagger, got %d", countVisible(fx.Popups))
	}

	fx.Update(PopupLife)
	if len(fx.Popups) != 0 {
		t.Errorf("Expected popups gone after their life, got %d", len(fx.Popups))
	}
	if fx.FlashTimer != 0 {
		t.Errorf("Expected flash finished, got %v", fx.FlashTimer)
	}
}

func TestChaosTintOnlyAtMaxLevel(t *testing.T) {
	fx, _ := newTestEffects(fixedSource{f: 0.01})

	fx.Update(1.0 / 60)
	if fx.TintOn {
		t.Error("Expected no tint at chaos 1")
	}

	fx.Chaos = sim.MaxChaosLevel
	fx.Update(1.0 / 60)
	if !fx.TintOn {
		t.Error("Expected tint at max chaos with a low roll")
	}
}

func TestKillSpawnsDebrisAndBonusLabel(t *testing.T) {
	fx, _ := newTestEffects(fixedSource{f: 0.5})

	fx.Handle(sim.Event{Type: sim.EventEntityDestroyed, Kind: sim.KindEnemy, Killed: true, X: 50, Y: 60})
	if len(fx.Popups) != 1 || fx.Popups[0].Text != "+3" {
		t.Errorf("Expected +3 label, got %+v", fx.Popups)
	}
	if len(fx.particles.P) == 0 {
		t.Error("Expected kill debris")
	}

	fx.Handle(sim.Event{Type: sim.EventEntityDestroyed, Kind: sim.KindEnemy, X: 50, Y: 700})
	if len(fx.Popups) != 1 {
		t.Error("Escaped enemies must not award a label")
	}
}

func TestShooterBanner(t *testing.T) {
	fx, _ := newTestEffects(fixedSource{f: 0.5})

	fx.Handle(sim.Event{Type: sim.EventModeEntered, Mode: sim.ModeFlyer})
	if fx.Banner != "" {
		t.Errorf("Expected no banner for flyer, got %q", fx.Banner)
	}

	fx.Handle(sim.Event{Type: sim.EventModeEntered, Mode: sim.ModeShooter})
	if fx.Banner == "" {
		t.Fatal("Expected shooter banner")
	}
	fx.Update(BannerTime)
	if fx.Banner != "" {
		t.Errorf("Expected banner cleared after %v, got %q", BannerTime, fx.Banner)
	}
}

func TestPopupPlacementScalesWithField(t *testing.T) {
	fx, _ := newTestEffects(fixedSource{f: 0.5})
	fx.SetField(sim.Playfield{W: 800, H: 1200})

	fx.Handle(sim.Event{Type: sim.EventMilestone})

	if p := fx.Popups[0]; p.X != 400 || p.Y != 500 {
		t.Errorf("Expected scaled position (400,500), got (%v,%v)", p.X, p.Y)
	}
}

func TestEffectsViaBus(t *testing.T) {
	bus := sim.NewEventBus()
	fx, _ := newTestEffects(fixedSource{f: 0.5})
	fx.Attach(bus)

	s := sim.NewSession(sim.NewRand(1), bus)
	s.Action(0)
	for i := 0; i < 400 && s.State() == sim.StatePlaying; i++ {
		s.Tick(0)
	}

	if s.State() != sim.StateGameOver {
		t.Fatalf("Expected the unflapped bird to crash, got %v", s.State())
	}
	if fx.DeathMessage == "" {
		t.Error("Expected a death message after game over")
	}
}
