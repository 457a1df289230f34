package game

import "math"

// --- Player bullets ---

// bullet is a player shot travelling straight up. (x, y) anchors the
// bottom-centre of its rect extent.
type bullet struct {
	x, y  float64
	spent bool // consumed by a hit this frame; compacted away after resolution
}

// step moves the bullet one frame.
func (b *bullet) step(dt float64) {
	b.y -= bulletSpeed * dt
}

// offscreen reports whether the bullet has left the top edge.
func (b *bullet) offscreen() bool {
	return b.y+bulletH < 0
}

// --- Enemy bullets ---

// enemyBullet is a round fired by an enemy or the boss, flying on a fixed
// velocity vector until it leaves the viewport or hits the player.
type enemyBullet struct {
	x, y   float64
	dx, dy float64 // px/s
	r      float64
	spent  bool
}

// step moves the round one frame.
func (eb *enemyBullet) step(dt float64) {
	eb.x += eb.dx * dt
	eb.y += eb.dy * dt
}

// offscreen reports whether the round has left the bottom edge or drifted
// past either side margin.
func (eb *enemyBullet) offscreen() bool {
	return eb.y-eb.r > screenH || eb.x < -offscreenMargin || eb.x > screenW+offscreenMargin
}

// aimedBullet builds an enemy round at (x, y) heading toward (tx, ty) at
// the given speed. A degenerate zero-length aim falls back to unit
// distance, leaving the round parked where it spawned.
func aimedBullet(x, y, tx, ty, speed, r float64) *enemyBullet {
	dx := tx - x
	dy := ty - y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dist = 1
	}
	return &enemyBullet{x: x, y: y, dx: dx / dist * speed, dy: dy / dist * speed, r: r}
}
