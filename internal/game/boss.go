package game

import "math"

// --- Boss ---

// boss is the heavy cat. The Sim's pointer is the singleton guard: at most
// one lives at a time, and a nil pointer plus the score threshold is all
// it takes to spawn the next.
type boss struct {
	x, y       float64
	r          float64
	hp         int
	vx         float64 // px/s patrol velocity; sign flips at the edges
	shootTimer float64
}

func newBoss() *boss {
	return &boss{
		x:  screenW / 2,
		y:  bossSpawnY,
		r:  bossRadius,
		hp: bossStartHP,
		vx: bossPatrolSpeed,
	}
}

// step advances descent or patrol and reports whether a fan volley is due
// this frame. The boss holds fire while still descending.
func (b *boss) step(dt float64) bool {
	if b.y < bossPatrolY {
		b.y += bossDescendSpeed * dt
		return false
	}
	b.x += b.vx * dt
	if b.x < b.r || b.x > screenW-b.r {
		b.vx = -b.vx
		b.x = clamp(b.x, b.r, screenW-b.r)
	}
	b.shootTimer += dt
	if b.shootTimer < bossShootInterval {
		return false
	}
	b.shootTimer = 0
	return true
}

// fanVolley builds the five-round spread from the muzzle just inside the
// boss's bottom edge. Angle 0 points straight down at the player line.
func (b *boss) fanVolley() []*enemyBullet {
	out := make([]*enemyBullet, 0, len(bossFanAngles))
	for _, a := range bossFanAngles {
		out = append(out, &enemyBullet{
			x:  b.x,
			y:  b.y + b.r - bossMuzzleInset,
			dx: math.Sin(a) * bossBulletSpeed,
			dy: math.Cos(a) * bossBulletSpeed,
			r:  bossBulletRadius,
		})
	}
	return out
}
