package sim

// PipeCollides reports whether the player's box overlaps the pipe's
// horizontal span while sticking out of the gap.
func PipeCollides(p Player, pipe Pipe) bool {
	if p.X+p.W > pipe.X && p.X < pipe.X+PipeWidth {
		if p.Y < pipe.GapY || p.Y+p.H > pipe.GapBottom() {
			return true
		}
	}
	return false
}

// PipePassed reports whether the pipe's trailing edge is behind the player.
func PipePassed(p Player, pipe Pipe) bool {
	return pipe.X+PipeWidth < p.X
}

// CirclesOverlap is the shared proximity test for shooter entities.
func CirclesOverlap(ax, ay, ar, bx, by, br float64) bool {
	return dist(ax, ay, bx, by) < ar+br
}

// BoundaryHit returns the reason the flying player touched the floor or
// ceiling, or ReasonNone.
func BoundaryHit(p Player, field Playfield) GameOverReason {
	if p.Y+p.H > field.FloorY() {
		return ReasonFloor
	}
	if p.Y < 0 {
		return ReasonCeiling
	}
	return ReasonNone
}

func pipeOffscreen(pipe Pipe) bool {
	return pipe.X+PipeWidth < 0
}

func enemyOffscreen(e EnemyBird, field Playfield) bool {
	return e.Y-e.Size > field.H || e.X+e.Size < 0 || e.X-e.Size > field.W
}

func bulletOffscreen(b Bullet) bool {
	return b.Y < 0
}

// enemyHitsPlayer is the shooter-mode loss test.
func enemyHitsPlayer(e EnemyBird, p Player) bool {
	cx, cy := p.Center()
	return CirclesOverlap(e.X, e.Y, e.Size, cx, cy, HitboxRadius)
}

// bulletTarget picks the enemy a bullet hits this tick: the nearest
// overlapping centre, ties going to the earliest spawned. Returns -1 when
// nothing overlaps.
func bulletTarget(b Bullet, enemies []EnemyBird) int {
	best := -1
	bestD := 0.0
	for i := range enemies {
		e := &enemies[i]
		if !CirclesOverlap(b.X, b.Y, BulletHitRadius, e.X, e.Y, e.Size) {
			continue
		}
		d := dist(b.X, b.Y, e.X, e.Y)
		if best < 0 || d < bestD || (d == bestD && e.ID < enemies[best].ID) {
			best = i
			bestD = d
		}
	}
	return best
}
