package sim

import (
	"math"
	"testing"
	"time"
)

func TestShootSpawnsBulletAtPlayerTop(t *testing.T) {
	s, rec := shooterSession(t)

	s.Action(0)

	bullets := s.Bullets()
	if len(bullets) != 1 {
		t.Fatalf("Expected one bullet, got %d", len(bullets))
	}
	cx, _ := s.Player().Center()
	b := bullets[0]
	if b.X != cx || b.Y != s.Player().Y || b.VY != -BulletSpeed {
		t.Errorf("Unexpected bullet %+v", b)
	}
	if rec.count(EventShot) != 1 {
		t.Errorf("Expected one shot event, got %d", rec.count(EventShot))
	}

	s.Tick(0)
	b = s.Bullets()[0]
	if b.Y != s.Player().Y-BulletSpeed || b.Age != 1 {
		t.Errorf("Expected bullet to rise one step, got %+v", b)
	}
}

func TestFlyerActionNeverFires(t *testing.T) {
	s, rec := startedSession(t)
	s.Action(0)
	if s.Bullets() != nil || rec.count(EventShot) != 0 {
		t.Error("Expected no bullets while flying")
	}
}

func TestBulletLeavesTopOfField(t *testing.T) {
	s, rec := shooterSession(t)
	m := shooter(t, s)
	m.bullets = append(m.bullets, Bullet{X: 50, Y: 5, VY: -BulletSpeed})

	s.Tick(0)

	if len(s.Bullets()) != 0 {
		t.Errorf("Expected bullet removed, got %d", len(s.Bullets()))
	}
	e, ok := rec.last(EventEntityDestroyed)
	if !ok || e.Kind != KindBullet {
		t.Errorf("Expected bullet destroyed event, got %+v", e)
	}
}

func TestKillScoresOnceAndRemovesBoth(t *testing.T) {
	s, rec := shooterSession(t)
	m := shooter(t, s)
	m.enemies = append(m.enemies, EnemyBird{X: 200, Y: 400, Size: 16, Behavior: BehaviorDiveRandom})
	m.bullets = append(m.bullets, Bullet{X: 200, Y: 415, VY: -BulletSpeed})
	before := s.Score()
	kills := 0
	s.Bus().Subscribe(EventEntityDestroyed, func(e Event) {
		if e.Kind == KindEnemy && e.Killed {
			kills++
		}
	})

	s.Tick(0)
	s.Tick(0)

	if s.Score() != before+KillBonus {
		t.Errorf("Expected score %d, got %d", before+KillBonus, s.Score())
	}
	if len(s.Enemies()) != 0 || len(s.Bullets()) != 0 {
		t.Errorf("Expected both stores empty, got %d enemies %d bullets", len(s.Enemies()), len(s.Bullets()))
	}
	if kills != 1 {
		t.Errorf("Expected one kill event, got %d", kills)
	}
	if rec.count(EventScoreChanged) != 2 {
		t.Errorf("Expected the threshold pass plus one kill, got %d score events", rec.count(EventScoreChanged))
	}
}

func TestOneBulletKillsOneEnemy(t *testing.T) {
	s, _ := shooterSession(t)
	m := shooter(t, s)
	m.enemies = append(m.enemies,
		EnemyBird{ID: 1, X: 200, Y: 400, Size: 16, Behavior: BehaviorDiveRandom},
		EnemyBird{ID: 2, X: 206, Y: 400, Size: 16, Behavior: BehaviorDiveRandom},
	)
	m.bullets = append(m.bullets, Bullet{X: 200, Y: 410, VY: -BulletSpeed})

	s.Tick(0)

	enemies := s.Enemies()
	if len(enemies) != 1 || enemies[0].ID != 2 {
		t.Fatalf("Expected only the nearest enemy killed, got %+v", enemies)
	}
	if s.Score() != ShooterThreshold+KillBonus {
		t.Errorf("Expected one kill bonus, got score %d", s.Score())
	}
}

func TestEnemyAtHitboxEndsSession(t *testing.T) {
	s, rec := shooterSession(t)
	m := shooter(t, s)
	cx, cy := s.Player().Center()
	m.enemies = append(m.enemies, EnemyBird{X: cx, Y: cy, Size: 16, Behavior: BehaviorDiveRandom})

	s.Tick(0)

	if s.State() != StateGameOver || s.LastReason() != ReasonEnemy {
		t.Fatalf("Expected enemy game over, got %v/%v", s.State(), s.LastReason())
	}
	if s.HighScore() != ShooterThreshold {
		t.Errorf("Expected high score %d, got %d", ShooterThreshold, s.HighScore())
	}
	e, _ := rec.last(EventGameOver)
	if e.Mode != ModeShooter {
		t.Errorf("Expected game over reported in shooter mode, got %v", e.Mode)
	}
}

func TestBulletResolvesBeforeEnemyContact(t *testing.T) {
	s, _ := shooterSession(t)
	m := shooter(t, s)
	cx, cy := s.Player().Center()
	m.enemies = append(m.enemies, EnemyBird{X: cx, Y: cy - 20, Size: 16, Behavior: BehaviorDiveRandom})
	m.bullets = append(m.bullets, Bullet{X: cx, Y: cy - 10, VY: -BulletSpeed})

	s.Tick(0)

	if s.State() != StatePlaying {
		t.Fatalf("Expected the kill to save the player, got %v (%v)", s.State(), s.LastReason())
	}
	if s.Score() != ShooterThreshold+KillBonus {
		t.Errorf("Expected kill bonus, got %d", s.Score())
	}
}

func TestEnemySpawnsAfterInterval(t *testing.T) {
	s, rec := shooterSession(t)

	s.Tick(EnemyBaseInterval)
	if len(s.Enemies()) != 0 {
		t.Fatalf("Expected no enemy at exactly one interval, got %d", len(s.Enemies()))
	}
	s.Tick(EnemyBaseInterval + time.Millisecond)
	if len(s.Enemies()) != 1 {
		t.Fatalf("Expected one enemy, got %d", len(s.Enemies()))
	}
	if rec.count(EventEnemySpawned) != 1 {
		t.Errorf("Expected one spawn event, got %d", rec.count(EventEnemySpawned))
	}
}

func TestEnemySpawnBehaviors(t *testing.T) {
	tests := []struct {
		name  string
		draws []float64
		check func(t *testing.T, e EnemyBird, s *Session)
	}{
		{
			name:  "drift",
			draws: []float64{0.5, 0.5, 0.1, 0.9, 0, 0},
			check: func(t *testing.T, e EnemyBird, _ *Session) {
				if e.Behavior != BehaviorDrift {
					t.Fatalf("Expected drift, got %v", e.Behavior)
				}
				if e.VX != DriftMinVX || e.VY != DriftMinVY {
					t.Errorf("Expected velocity (%v,%v), got (%v,%v)", DriftMinVX, DriftMinVY, e.VX, e.VY)
				}
			},
		},
		{
			name:  "targeted",
			draws: []float64{0, 0, 0.6},
			check: func(t *testing.T, e EnemyBird, s *Session) {
				if e.Behavior != BehaviorDiveTargeted {
					t.Fatalf("Expected targeted dive, got %v", e.Behavior)
				}
				if got := math.Hypot(e.VX, e.VY); math.Abs(got-TargetSpeed) > 1e-9 {
					t.Errorf("Expected speed %v, got %v", TargetSpeed, got)
				}
				cx, cy := s.Player().Center()
				cross := e.VX*(cy-e.Y) - e.VY*(cx-e.X)
				if math.Abs(cross) > 1e-6 || e.VY <= 0 {
					t.Errorf("Expected velocity aimed at the player, got (%v,%v)", e.VX, e.VY)
				}
			},
		},
		{
			name:  "random dive",
			draws: []float64{0.5, 0.5, 0.95, 0.5, 1},
			check: func(t *testing.T, e EnemyBird, _ *Session) {
				if e.Behavior != BehaviorDiveRandom {
					t.Fatalf("Expected random dive, got %v", e.Behavior)
				}
				if e.VX != 0 || e.VY != DiveMaxVY {
					t.Errorf("Expected velocity (0,%v), got (%v,%v)", DiveMaxVY, e.VX, e.VY)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(&scriptSource{})
			s.Action(0)
			s.enterShooter(0)
			s.rng = &scriptSource{floats: tt.draws}
			m := shooter(t, s)

			m.spawn(s)

			e := m.enemies[0]
			if e.Size < EnemyMinSize || e.Size >= EnemyMaxSize {
				t.Errorf("Size %v outside [%v,%v)", e.Size, EnemyMinSize, EnemyMaxSize)
			}
			if e.Y != -e.Size {
				t.Errorf("Expected spawn just above the field, got y=%v", e.Y)
			}
			if e.X < e.Size || e.X > FieldWidth-e.Size {
				t.Errorf("Expected x inside the field, got %v", e.X)
			}
			tt.check(t, e, s)
		})
	}
}

func TestEnemyIDsAreMonotonic(t *testing.T) {
	s, _ := shooterSession(t)
	m := shooter(t, s)
	for i := 0; i < 5; i++ {
		m.spawn(s)
	}
	for i := 1; i < len(m.enemies); i++ {
		if m.enemies[i].ID <= m.enemies[i-1].ID {
			t.Fatalf("Expected increasing ids, got %d then %d", m.enemies[i-1].ID, m.enemies[i].ID)
		}
	}
}

func TestDriftBouncesOffWalls(t *testing.T) {
	field := DefaultPlayfield()
	e := EnemyBird{X: 20, Y: 100, VX: -5, VY: 1, Size: 16, Behavior: BehaviorDrift}

	e.advance(field)

	if e.X != e.Size || e.VX != 5 {
		t.Errorf("Expected bounce off the left wall, got x=%v vx=%v", e.X, e.VX)
	}

	e = EnemyBird{X: field.W - 20, Y: 100, VX: 5, VY: 1, Size: 16, Behavior: BehaviorDrift}
	e.advance(field)
	if e.X != field.W-e.Size || e.VX != -5 {
		t.Errorf("Expected bounce off the right wall, got x=%v vx=%v", e.X, e.VX)
	}

	d := EnemyBird{X: 20, Y: 100, VX: -5, VY: 1, Size: 16, Behavior: BehaviorDiveRandom}
	d.advance(field)
	if d.X != 15 || d.VX != -5 {
		t.Errorf("Expected diver to keep its heading, got x=%v vx=%v", d.X, d.VX)
	}
}

func TestEnemyRemovedBelowField(t *testing.T) {
	s, rec := shooterSession(t)
	m := shooter(t, s)
	m.enemies = append(m.enemies, EnemyBird{X: 20, Y: FieldHeight + 15, VY: 2, Size: 16, Behavior: BehaviorDiveRandom})

	s.Tick(0)

	if len(s.Enemies()) != 0 {
		t.Errorf("Expected enemy removed, got %d", len(s.Enemies()))
	}
	e, _ := rec.last(EventEntityDestroyed)
	if e.Kind != KindEnemy || e.Killed {
		t.Errorf("Expected unkilled enemy removal, got %+v", e)
	}
	if s.State() != StatePlaying {
		t.Errorf("Expected escape to be harmless, got %v", s.State())
	}
}
