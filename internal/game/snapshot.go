package game

// --- Snapshots ---

// Snapshot is a deep copy of everything a renderer or report needs for
// one frame. Mutating it never touches the live sim, and holding one
// across Advance calls is safe.
type Snapshot struct {
	Elapsed       float64
	Score         float64
	Highscore     int
	Difficulty    float64
	SpawnInterval float64
	Running       bool
	GameOver      bool

	Player       PlayerSnapshot
	Bullets      []BulletSnapshot
	EnemyBullets []EnemyBulletSnapshot
	Enemies      []EnemySnapshot
	PowerUps     []PowerUpSnapshot
	Boss         *BossSnapshot // nil while no boss is live
}

// PlayerSnapshot is the ship's drawable state. X, Y locate the centre.
type PlayerSnapshot struct {
	X, Y     float64
	W, H     float64
	Cooldown float64

	RapidFire     bool
	RapidFireLeft float64
	Spread        bool
	SpreadLeft    float64
	Shield        bool
	ShieldLeft    float64
}

// BulletSnapshot is one player round; X, Y anchor the bottom-centre of
// its rect.
type BulletSnapshot struct {
	X, Y float64
	W, H float64
}

// EnemyBulletSnapshot is one hostile round, a circle at (X, Y).
type EnemyBulletSnapshot struct {
	X, Y float64
	R    float64
}

// EnemySnapshot is one descending cat, a circle at (X, Y).
type EnemySnapshot struct {
	X, Y     float64
	R        float64
	Kind     EnemyKind
	CanShoot bool
}

// PowerUpSnapshot is one falling pickup, a circle at (X, Y).
type PowerUpSnapshot struct {
	X, Y float64
	R    float64
	Kind PowerUpKind
}

// BossSnapshot is the heavy cat, a circle at (X, Y).
type BossSnapshot struct {
	X, Y float64
	R    float64
	HP   int
}

// Snapshot captures the current frame.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{
		Elapsed:       s.elapsed,
		Score:         s.score,
		Highscore:     s.highscore,
		Difficulty:    s.Difficulty(),
		SpawnInterval: s.spawner.interval,
		Running:       s.running,
		GameOver:      s.gameOver,
		Player: PlayerSnapshot{
			X:             s.player.x,
			Y:             playerY,
			W:             playerW,
			H:             playerH,
			Cooldown:      s.player.cooldown,
			RapidFire:     s.player.rapidFire,
			RapidFireLeft: s.player.rapidFireLeft,
			Spread:        s.player.spread,
			SpreadLeft:    s.player.spreadLeft,
			Shield:        s.player.shield,
			ShieldLeft:    s.player.shieldLeft,
		},
	}
	if n := len(s.bullets); n > 0 {
		snap.Bullets = make([]BulletSnapshot, 0, n)
		for _, b := range s.bullets {
			snap.Bullets = append(snap.Bullets, BulletSnapshot{X: b.x, Y: b.y, W: bulletW, H: bulletH})
		}
	}
	if n := len(s.enemyBullets); n > 0 {
		snap.EnemyBullets = make([]EnemyBulletSnapshot, 0, n)
		for _, eb := range s.enemyBullets {
			snap.EnemyBullets = append(snap.EnemyBullets, EnemyBulletSnapshot{X: eb.x, Y: eb.y, R: eb.r})
		}
	}
	if n := len(s.enemies); n > 0 {
		snap.Enemies = make([]EnemySnapshot, 0, n)
		for _, e := range s.enemies {
			snap.Enemies = append(snap.Enemies, EnemySnapshot{
				X: e.x, Y: e.y, R: e.r,
				Kind:     e.move.kind(),
				CanShoot: e.canShoot,
			})
		}
	}
	if n := len(s.powerups); n > 0 {
		snap.PowerUps = make([]PowerUpSnapshot, 0, n)
		for _, p := range s.powerups {
			snap.PowerUps = append(snap.PowerUps, PowerUpSnapshot{X: p.x, Y: p.y, R: powerupRadius, Kind: p.kind})
		}
	}
	if s.boss != nil {
		snap.Boss = &BossSnapshot{X: s.boss.x, Y: s.boss.y, R: s.boss.r, HP: s.boss.hp}
	}
	return snap
}
