package game

import "math"

// --- Spawner ---

// spawner owns the procedural generation decisions: when the next enemy
// arrives, what it looks like, and whether a kill leaves a drop behind.
// It shares the Sim's random source so one seed reproduces a whole run.
type spawner struct {
	rng      Rand
	timer    float64
	interval float64
}

func newSpawner(rng Rand) *spawner {
	return &spawner{rng: rng, interval: spawnIntervalStart}
}

// reset returns the spawner to its fresh-game state.
func (sp *spawner) reset() {
	sp.timer = 0
	sp.interval = spawnIntervalStart
}

// tick advances the spawn clock and reports whether an enemy is due. The
// interval shrinks linearly with elapsed time, floored at the minimum, so
// the spawn rate only ever ramps up.
func (sp *spawner) tick(dt, elapsed float64) bool {
	sp.timer += dt
	sp.interval = math.Max(spawnIntervalMin, spawnIntervalStart-elapsed/difficultyRampSec)
	if sp.timer < sp.interval {
		return false
	}
	sp.timer = 0
	return true
}

// makeEnemy rolls a fresh descending cat just above the top edge. The
// draw order is fixed — size, column, speed, kind, kind parameters, shoot
// gate, shoot interval — so a seeded run reproduces exactly.
func (sp *spawner) makeEnemy(elapsed float64) *enemy {
	size := uniform(sp.rng, enemyMinDiameter, enemyMaxDiameter)
	r := size / 2
	e := &enemy{
		x:         uniform(sp.rng, r, screenW-r),
		y:         -size,
		r:         r,
		speed:     uniform(sp.rng, enemyMinSpeed, enemyMaxSpeed),
		spawnedAt: elapsed,
	}
	switch weighted3(sp.rng, weightStraight, weightSine, weightZigzag) {
	case 0:
		e.move = straightMove{}
	case 1:
		e.move = sineMove{
			baseX: e.x,
			amp:   uniform(sp.rng, sineAmpMin, sineAmpMax),
			freq:  uniform(sp.rng, sineFreqMin, sineFreqMax),
		}
	default:
		hspeed := uniform(sp.rng, zigzagSpeedMin, zigzagSpeedMax)
		dir := 1.0
		if chance(sp.rng, 0.5) {
			dir = -1.0
		}
		e.move = &zigzagMove{
			hspeed:      hspeed,
			dir:         dir,
			switchEvery: uniform(sp.rng, zigzagSwitchMin, zigzagSwitchMax),
		}
	}
	// Both draws are independent; past 30s the late draw only happens when
	// the base draw failed (short-circuit), so combined odds are ~0.675.
	e.canShoot = chance(sp.rng, shootChanceBase) ||
		(elapsed > shootChanceLateSec && chance(sp.rng, shootChanceLate))
	e.shootInterval = uniform(sp.rng, enemyShootIntervalMin, enemyShootIntervalMax)
	return e
}

// rollDrop decides whether a bullet kill at (x, y) leaves a power-up. The
// kind is uniform among the three.
func (sp *spawner) rollDrop(x, y float64) (*powerup, bool) {
	if !chance(sp.rng, powerupChance) {
		return nil, false
	}
	kind := PowerUpKind(int(sp.rng.Float64() * float64(powerUpKindCount)))
	return &powerup{x: x, y: y, kind: kind}, true
}
