package game

import "math"

// --- Simulation core ---

// Intent is the player's horizontal wish for one frame. Both flags set
// cancel out to a standstill, matching two opposing keys held at once.
type Intent struct {
	MoveLeft  bool
	MoveRight bool
}

// Sim holds one complete run of the game and advances it in discrete
// steps. It owns every entity, the score, the clock and the random
// source; the only inputs are Advance's dt+intent and Fire. Not safe for
// concurrent use — callers drive it from a single goroutine.
type Sim struct {
	rng     Rand
	spawner *spawner

	player       player
	bullets      []*bullet
	enemyBullets []*enemyBullet
	enemies      []*enemy
	powerups     []*powerup
	boss         *boss

	elapsed float64 // seconds of simulated time this run
	score   float64
	frame   int

	running  bool
	gameOver bool

	highscore int

	log     *EventLog
	pending []Event // events of the frame being advanced
}

// NewSim builds a fresh run. The seed fixes every random decision of the
// run — two sims with the same seed and the same inputs stay identical
// frame for frame.
func NewSim(seed int64) *Sim {
	rng := newRand(seed)
	return &Sim{
		rng:     rng,
		spawner: newSpawner(rng),
		player:  newPlayer(),
		running: true,
		log:     NewEventLog(),
	}
}

// Reset returns the sim to its initial state for a fresh run. The random
// source keeps rolling rather than replaying, so consecutive runs differ;
// the event log and highscore survive the way a session would expect —
// log emptied, highscore kept.
func (s *Sim) Reset() {
	s.spawner.reset()
	s.player = newPlayer()
	s.bullets = nil
	s.enemyBullets = nil
	s.enemies = nil
	s.powerups = nil
	s.boss = nil
	s.elapsed = 0
	s.score = 0
	s.frame = 0
	s.running = true
	s.gameOver = false
	s.log.Reset()
	s.pending = nil
}

// Advance steps the simulation by dt seconds under the given intent and
// returns the events of the frame. After a lethal hit the sim is
// terminal: Advance returns nil and changes nothing until Reset.
//
// Phase order within a frame is fixed: clock, spawning, boss trigger,
// player movement and timers, entity movement (enemies fire mid-move),
// boss movement and volley, collision resolution, passive score. A
// lethal hit stops the frame inside resolution — phases after it,
// passive score included, do not run that frame.
func (s *Sim) Advance(dt float64, in Intent) []Event {
	s.pending = nil
	if !s.running {
		return nil
	}
	if dt < 0 {
		dt = 0
	}

	s.frame++
	s.elapsed += dt
	difficulty := s.Difficulty()

	// Small enemies stop spawning for good once the boss threshold is
	// reached — from then on the pressure comes from boss chains.
	if s.boss == nil && s.score < bossScoreThreshold {
		if s.spawner.tick(dt, s.elapsed) {
			s.enemies = append(s.enemies, s.spawner.makeEnemy(s.elapsed))
		}
	}
	if s.boss == nil && s.score >= bossScoreThreshold {
		s.boss = newBoss()
	}

	s.player.move(moveDir(in), difficulty, dt)
	s.player.decayEffects(dt)
	s.player.cooldown = math.Max(0, s.player.cooldown-dt)

	s.stepBullets(dt)
	s.stepEnemyBullets(dt)
	s.stepEnemies(dt, difficulty)
	s.stepBoss(dt)

	if !s.resolveCollisions(dt) {
		return s.pending
	}

	s.score += dt * passiveScoreRate * difficulty
	return s.pending
}

// Fire requests a shot and returns the events it produced. Subject to the
// cooldown; a spread shot adds one round either side of the nose. Safe to
// call every frame — held triggers are the normal case.
func (s *Sim) Fire() []Event {
	s.pending = nil
	if !s.running || s.player.cooldown > 0 {
		return nil
	}
	cd := playerCooldown
	if s.player.rapidFire {
		cd *= rapidFireMul
	}
	s.player.cooldown = cd

	nose := playerY - playerH/2
	rounds := 1.0
	if s.player.spread {
		rounds = 3.0
		for _, off := range [...]float64{-spreadOffset, 0, spreadOffset} {
			s.bullets = append(s.bullets, &bullet{x: s.player.x + off, y: nose})
		}
	} else {
		s.bullets = append(s.bullets, &bullet{x: s.player.x, y: nose})
	}
	s.emit(Event{Kind: EventFired, X: s.player.x, Y: nose, Value: rounds})
	return s.pending
}

// --- Entity stepping ---

func (s *Sim) stepBullets(dt float64) {
	kept := s.bullets[:0]
	for _, b := range s.bullets {
		b.step(dt)
		if b.offscreen() {
			continue
		}
		kept = append(kept, b)
	}
	s.bullets = kept
}

func (s *Sim) stepEnemyBullets(dt float64) {
	kept := s.enemyBullets[:0]
	for _, eb := range s.enemyBullets {
		eb.step(dt)
		if eb.offscreen() {
			continue
		}
		kept = append(kept, eb)
	}
	s.enemyBullets = kept
}

// stepEnemies moves every enemy, lets the due ones fire, then culls those
// past the bottom edge. Firing comes before the cull, so an enemy leaving
// the screen this frame still gets its shot off.
func (s *Sim) stepEnemies(dt, difficulty float64) {
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		e.step(dt, s.elapsed, difficulty)
		if e.tickShoot(dt) {
			// Aim is taken from the body centre; the round itself leaves
			// from the chin, one radius lower.
			speed := enemyBulletBaseSpeed + uniform(s.rng, enemyBulletJitterLo, enemyBulletJitterHi)
			eb := aimedBullet(e.x, e.y, s.player.x, playerY, speed, enemyBulletRadius)
			eb.y += e.r
			s.enemyBullets = append(s.enemyBullets, eb)
		}
		if e.offscreen() {
			continue
		}
		kept = append(kept, e)
	}
	s.enemies = kept
}

func (s *Sim) stepBoss(dt float64) {
	if s.boss == nil {
		return
	}
	if s.boss.step(dt) {
		s.enemyBullets = append(s.enemyBullets, s.boss.fanVolley()...)
	}
}

// --- Terminal state & bookkeeping ---

// failRun flips the terminal state: running off, game over on, one event
// naming the cause. The frame in progress stops at the caller's return;
// only Reset restarts progress.
func (s *Sim) failRun(cause string, x, y float64) {
	s.running = false
	s.gameOver = true
	s.emit(Event{Kind: EventGameOver, Detail: cause, X: x, Y: y, Value: s.score})
}

// emit records an event in the frame's return slice and the run log.
func (s *Sim) emit(ev Event) {
	s.pending = append(s.pending, ev)
	s.log.Add(s.frame, ev)
}

// moveDir folds an intent to -1, 0 or +1.
func moveDir(in Intent) float64 {
	dir := 0.0
	if in.MoveLeft {
		dir -= 1
	}
	if in.MoveRight {
		dir += 1
	}
	return dir
}

// --- Read accessors ---

// Running reports whether the run still accepts progress.
func (s *Sim) Running() bool { return s.running }

// GameOver reports whether the run ended in a lethal hit.
func (s *Sim) GameOver() bool { return s.gameOver }

// CurrentScore returns the score truncated to whole points, the form
// shown and persisted.
func (s *Sim) CurrentScore() int { return int(s.score) }

// Highscore returns the best score the sim was told about.
func (s *Sim) Highscore() int { return s.highscore }

// SetHighscore installs a previously persisted best score for display.
func (s *Sim) SetHighscore(v int) { s.highscore = v }

// Elapsed returns the simulated seconds of the current run.
func (s *Sim) Elapsed() float64 { return s.elapsed }

// Frame returns the number of advanced frames this run.
func (s *Sim) Frame() int { return s.frame }

// Difficulty returns the current scale factor: 1.0 at the start, +1.0
// per minute, unbounded.
func (s *Sim) Difficulty() float64 {
	return 1 + s.elapsed/difficultyRampSec
}

// SpawnInterval returns the current seconds between enemy spawns.
func (s *Sim) SpawnInterval() float64 { return s.spawner.interval }

// Log returns the run's event log.
func (s *Sim) Log() *EventLog { return s.log }

// ViewportSize returns the fixed playfield dimensions in pixels.
func ViewportSize() (w, h float64) { return screenW, screenH }
