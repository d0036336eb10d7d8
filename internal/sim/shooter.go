package sim

import (
	"math"
	"time"
)

// shooterMode is the ground phase: the player is pinned to the floor and
// fires upward at descending enemy birds.
type shooterMode struct {
	enemies        []EnemyBird
	bullets        []Bullet
	lastEnemySpawn time.Duration
	entryScore     int
}

func newShooterMode(now time.Duration, entryScore int) *shooterMode {
	return &shooterMode{lastEnemySpawn: now, entryScore: entryScore}
}

func (m *shooterMode) Kind() ModeKind { return ModeShooter }

// action fires a bullet from the top centre of the player.
func (m *shooterMode) action(s *Session, now time.Duration) {
	cx, _ := s.player.Center()
	b := Bullet{X: cx, Y: s.player.Y, VY: -BulletSpeed}
	m.bullets = append(m.bullets, b)
	s.emit(Event{Type: EventShot, X: b.X, Y: b.Y})
}

func (m *shooterMode) step(s *Session, now time.Duration) {
	s.pinPlayer()

	if now-m.lastEnemySpawn > EnemySpawnInterval(s.score, m.entryScore) {
		m.spawn(s)
		m.lastEnemySpawn = now
	}

	for i := range m.bullets {
		b := &m.bullets[i]
		b.Y += b.VY
		b.Age++
	}
	for i := range m.enemies {
		m.enemies[i].advance(s.field)
	}

	m.resolveHits(s)

	for i := range m.enemies {
		if enemyHitsPlayer(m.enemies[i], s.player) {
			s.gameOver(ReasonEnemy)
			return
		}
	}

	m.removeOffscreen(s)
}

// resolveHits credits at most one enemy per bullet. Each consumed bullet
// and killed enemy leaves its store before the next bullet is checked.
func (m *shooterMode) resolveHits(s *Session) {
	keptBullets := m.bullets[:0]
	for _, b := range m.bullets {
		idx := bulletTarget(b, m.enemies)
		if idx < 0 {
			keptBullets = append(keptBullets, b)
			continue
		}
		e := m.enemies[idx]
		m.enemies = append(m.enemies[:idx], m.enemies[idx+1:]...)
		s.emit(Event{Type: EventEntityDestroyed, Kind: KindBullet, X: b.X, Y: b.Y})
		s.emit(Event{Type: EventEntityDestroyed, Kind: KindEnemy, X: e.X, Y: e.Y, Killed: true})
		s.award(KillBonus, e.X, e.Y)
	}
	m.bullets = keptBullets
}

func (m *shooterMode) removeOffscreen(s *Session) {
	keptBullets := m.bullets[:0]
	for _, b := range m.bullets {
		if bulletOffscreen(b) {
			s.emit(Event{Type: EventEntityDestroyed, Kind: KindBullet, X: b.X, Y: b.Y})
			continue
		}
		keptBullets = append(keptBullets, b)
	}
	m.bullets = keptBullets

	keptEnemies := m.enemies[:0]
	for _, e := range m.enemies {
		if enemyOffscreen(e, s.field) {
			s.emit(Event{Type: EventEntityDestroyed, Kind: KindEnemy, X: e.X, Y: e.Y})
			continue
		}
		keptEnemies = append(keptEnemies, e)
	}
	m.enemies = keptEnemies
}

// spawn creates one enemy above the playfield with a weighted behaviour.
func (m *shooterMode) spawn(s *Session) {
	size := rangeF(s.rng, EnemyMinSize, EnemyMaxSize)
	e := EnemyBird{
		ID:   s.nextEnemyID,
		Size: size,
		X:    rangeF(s.rng, size, s.field.W-size),
		Y:    -size,
	}
	s.nextEnemyID++

	roll := s.rng.Float64()
	switch {
	case roll < WeightDrift:
		e.Behavior = BehaviorDrift
		e.VX = signF(s.rng) * rangeF(s.rng, DriftMinVX, DriftMaxVX)
		e.VY = rangeF(s.rng, DriftMinVY, DriftMaxVY)
	case roll < WeightDrift+WeightTarget:
		e.Behavior = BehaviorDiveTargeted
		cx, cy := s.player.Center()
		dx, dy := cx-e.X, cy-e.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			l = 1
			dy = 1
		}
		e.VX = dx / l * TargetSpeed
		e.VY = dy / l * TargetSpeed
	default:
		e.Behavior = BehaviorDiveRandom
		e.VX = rangeF(s.rng, -DiveMaxVX, DiveMaxVX)
		e.VY = rangeF(s.rng, DiveMinVY, DiveMaxVY)
	}

	m.enemies = append(m.enemies, e)
	s.emit(Event{Type: EventEnemySpawned, X: e.X, Y: e.Y})
}

// advance integrates one tick. Drifting birds bounce off the side walls;
// divers keep their spawn velocity.
func (e *EnemyBird) advance(field Playfield) {
	e.X += e.VX
	e.Y += e.VY
	if e.Behavior != BehaviorDrift {
		return
	}
	if e.X < e.Size && e.VX < 0 {
		e.X = e.Size
		e.VX = -e.VX
	} else if e.X > field.W-e.Size && e.VX > 0 {
		e.X = field.W - e.Size
		e.VX = -e.VX
	}
}
