package game

import "math"

// --- Enemy kinds ---

// EnemyKind tags the three movement behaviours.
type EnemyKind int

const (
	EnemyStraight EnemyKind = iota
	EnemySine
	EnemyZigzag
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyStraight:
		return "straight"
	case EnemySine:
		return "sine"
	case EnemyZigzag:
		return "zigzag"
	default:
		return "unknown"
	}
}

// movement is the horizontal behaviour attached to an enemy. Exactly one
// variant hangs off each enemy and owns that kind's parameters — a
// straight faller cannot carry sway settings. Vertical fall is shared by
// all kinds and lives in enemy.step.
type movement interface {
	kind() EnemyKind
	// steer updates the enemy's x for this frame.
	steer(e *enemy, dt, elapsed float64)
}

// straightMove falls without horizontal motion.
type straightMove struct{}

func (straightMove) kind() EnemyKind { return EnemyStraight }

func (straightMove) steer(*enemy, float64, float64) {}

// sineMove sways around a fixed base column. Phase runs on sim time from
// the moment of spawn, so a paused pump freezes the sway too.
type sineMove struct {
	baseX float64
	amp   float64 // px
	freq  float64 // Hz
}

func (sineMove) kind() EnemyKind { return EnemySine }

func (m sineMove) steer(e *enemy, _ float64, elapsed float64) {
	t := elapsed - e.spawnedAt
	e.x = clamp(m.baseX+math.Sin(t*m.freq*2*math.Pi)*m.amp, e.r, screenW-e.r)
}

// zigzagMove darts sideways, flipping direction when its switch timer
// elapses or the enemy touches either edge. Both flips reset the timer.
type zigzagMove struct {
	hspeed      float64 // px/s
	dir         float64 // -1 or +1
	switchEvery float64 // seconds between timed flips
	sinceSwitch float64
}

func (*zigzagMove) kind() EnemyKind { return EnemyZigzag }

func (m *zigzagMove) steer(e *enemy, dt, _ float64) {
	m.sinceSwitch += dt
	if m.sinceSwitch >= m.switchEvery {
		m.sinceSwitch = 0
		m.dir = -m.dir
	}
	e.x += m.dir * m.hspeed * dt
	if e.x < e.r {
		e.x = e.r
		m.dir = -m.dir
		m.sinceSwitch = 0
	}
	if e.x > screenW-e.r {
		e.x = screenW - e.r
		m.dir = -m.dir
		m.sinceSwitch = 0
	}
}

// --- Enemy ---

// enemy is one descending cat. Removed by a bullet, the player's shield,
// or falling off the bottom.
type enemy struct {
	x, y      float64
	r         float64
	speed     float64 // px/s fall speed before difficulty scaling
	move      movement
	spawnedAt float64 // sim elapsed at spawn; sine phase origin

	canShoot      bool
	shootTimer    float64
	shootInterval float64

	dead bool
}

// step advances fall and steering for one frame.
func (e *enemy) step(dt, elapsed, difficulty float64) {
	e.y += e.speed * difficulty * dt
	e.move.steer(e, dt, elapsed)
}

// tickShoot advances the shoot timer and reports whether a shot is due
// this frame. The timer resets on firing.
func (e *enemy) tickShoot(dt float64) bool {
	if !e.canShoot {
		return false
	}
	e.shootTimer += dt
	if e.shootTimer < e.shootInterval {
		return false
	}
	e.shootTimer = 0
	return true
}

// offscreen reports whether the enemy has fully left the bottom edge.
func (e *enemy) offscreen() bool {
	return e.y-e.r > screenH
}
