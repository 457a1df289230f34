package game

// TestSim is a scripted harness used exclusively by tests and the
// headless report tool. The Sim itself is already headless; the harness
// adds held-input scripting, direct state injection and predicate-driven
// stepping on top of it.
type TestSim struct {
	*Sim
	Dt float64 // seconds per tick; defaults to one 60Hz frame

	fireHeld  bool
	moveLeft  bool
	moveRight bool
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // seed, rng, step, clock, score, player state
	simOptEntity                      // inject bullets, enemies, boss, pickups
)

// SimOption is a builder function applied to a TestSim during
// construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSeed replaces the random source with a fresh seeded one. The sim
// and its spawner share one source, so both are swapped together.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		rng := newRand(seed)
		ts.rng = rng
		ts.spawner.rng = rng
	}}
}

// WithRand installs an arbitrary random source, typically a scripted one
// that plays back a fixed sequence of draws.
func WithRand(rng Rand) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rng = rng
		ts.spawner.rng = rng
	}}
}

// WithStep sets the seconds simulated per tick.
func WithStep(dt float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Dt = dt
	}}
}

// WithScore starts the run at the given score.
func WithScore(v float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.score = v
	}}
}

// WithElapsed starts the run clock at the given seconds, which fixes the
// starting difficulty and spawn interval.
func WithElapsed(sec float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.elapsed = sec
	}}
}

// WithPlayerAt places the ship at the given x.
func WithPlayerAt(x float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.player.x = x
	}}
}

// WithShield starts the run with an active shield at full duration.
func WithShield() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.player.activate(PowerShield)
	}}
}

// WithRapidFire starts the run with rapid fire at full duration.
func WithRapidFire() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.player.activate(PowerRapid)
	}}
}

// WithSpread starts the run with spread shot at full duration.
func WithSpread() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.player.activate(PowerSpread)
	}}
}

// WithBulletAt injects a live player round.
func WithBulletAt(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.bullets = append(ts.bullets, &bullet{x: x, y: y})
	}}
}

// WithEnemyAt injects a parked straight-moving enemy of radius r that
// never shoots. Zero fall speed keeps it where collision tests put it.
func WithEnemyAt(x, y, r float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.enemies = append(ts.enemies, &enemy{x: x, y: y, r: r, move: straightMove{}})
	}}
}

// WithShootingEnemyAt injects a parked enemy that fires an aimed round
// every interval seconds.
func WithShootingEnemyAt(x, y, r, interval float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.enemies = append(ts.enemies, &enemy{
			x: x, y: y, r: r,
			move:          straightMove{},
			canShoot:      true,
			shootInterval: interval,
		})
	}}
}

// WithEnemyBulletAt injects a hostile round with the given velocity.
func WithEnemyBulletAt(x, y, dx, dy float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.enemyBullets = append(ts.enemyBullets, &enemyBullet{x: x, y: y, dx: dx, dy: dy, r: enemyBulletRadius})
	}}
}

// WithBossAt injects a live boss with the given health. Placed at or
// below the patrol line it starts patrolling immediately.
func WithBossAt(x, y float64, hp int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.boss = &boss{x: x, y: y, r: bossRadius, hp: hp, vx: bossPatrolSpeed}
	}}
}

// WithPowerUpAt injects a falling pickup of the given kind.
func WithPowerUpAt(x, y float64, kind PowerUpKind) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.powerups = append(ts.powerups, &powerup{x: x, y: y, kind: kind})
	}}
}

// NewTestSim constructs a harnessed sim from the given options in two
// ordered passes: infrastructure first (seed, clock, score, player
// state), then entity injection. Defaults: seed 1, 60Hz steps.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		Sim: NewSim(1),
		Dt:  1.0 / 60.0,
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(ts)
		}
	}
	return ts
}

// HoldFire scripts the fire trigger held (or released) for every
// subsequent tick.
func (ts *TestSim) HoldFire(held bool) {
	ts.fireHeld = held
}

// Move scripts the held movement keys for every subsequent tick.
func (ts *TestSim) Move(left, right bool) {
	ts.moveLeft = left
	ts.moveRight = right
}

// Step advances one tick under the scripted input and returns the
// frame's events: a held trigger fires first, then the sim advances by
// Dt, mirroring how the interactive loop drives it.
func (ts *TestSim) Step() []Event {
	var evs []Event
	if ts.fireHeld {
		evs = append(evs, ts.Fire()...)
	}
	evs = append(evs, ts.Advance(ts.Dt, Intent{MoveLeft: ts.moveLeft, MoveRight: ts.moveRight})...)
	return evs
}

// RunTicks advances the simulation n ticks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Step()
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early once
// the predicate holds. Returns the frame at which it was satisfied, or
// -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Step()
		if predicate(ts) {
			return ts.Frame()
		}
	}
	return -1
}
