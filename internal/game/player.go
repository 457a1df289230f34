package game

// --- Player ---

// player is the ship pinned to the bottom of the viewport. It only ever
// moves horizontally; playerY is its centre line for the whole run.
// Owned exclusively by the Sim.
type player struct {
	x  float64
	vx float64 // px/s, set fresh from intent each frame

	// Active effects. A flag is never true with zero time left; pickup
	// restores the full duration, also when already active.
	rapidFire     bool
	rapidFireLeft float64
	spread        bool
	spreadLeft    float64
	shield        bool
	shieldLeft    float64

	cooldown float64 // seconds until the next shot is allowed
}

func newPlayer() player {
	return player{x: screenW / 2}
}

// move applies the frame's horizontal intent, scaled by difficulty, and
// keeps the full ship width on-screen.
func (p *player) move(dir, difficulty, dt float64) {
	p.vx = dir * playerSpeed * difficulty
	p.x = clamp(p.x+p.vx*dt, playerW/2, screenW-playerW/2)
}

// rect returns the hitbox: playerW x playerH centred on (x, playerY).
func (p *player) rect() (x, y, w, h float64) {
	return p.x - playerW/2, playerY - playerH/2, playerW, playerH
}
