package game

// --- Viewport ---

const (
	screenW = 480.0 // fixed playfield width, pixels
	screenH = 640.0 // fixed playfield height, pixels
)

// --- Player ---

const (
	playerSpeed    = 320.0        // px/s base horizontal speed (scaled by difficulty)
	playerW        = 36.0         // ship width; also the hitbox width
	playerH        = 24.0         // ship height
	playerY        = screenH - 64 // fixed vertical position of the ship centre
	playerCooldown = 0.22         // seconds between shots
	rapidFireMul   = 0.4          // cooldown multiplier while rapid fire is active
	spreadOffset   = 8.0          // px between the nose round and each side round
)

// --- Player bullets ---

const (
	bulletSpeed = 480.0 // px/s straight up
	bulletW     = 4.0   // rect extent, anchored bottom-centre at (x, y)
	bulletH     = 10.0
)

// --- Enemies ---

const (
	enemyMinSpeed    = 70.0 // px/s fall speed range
	enemyMaxSpeed    = 160.0
	enemyMinDiameter = 14.0 // spawn size range; radius is half
	enemyMaxDiameter = 38.0

	// Movement kind selection weights (straight / sine / zigzag).
	weightStraight = 45
	weightSine     = 35
	weightZigzag   = 20

	sineAmpMin  = 30.0 // px sway amplitude range
	sineAmpMax  = 90.0
	sineFreqMin = 0.8 // Hz sway frequency range
	sineFreqMax = 1.6

	zigzagSpeedMin  = 50.0 // px/s horizontal dart speed range
	zigzagSpeedMax  = 120.0
	zigzagSwitchMin = 0.35 // seconds between direction flips
	zigzagSwitchMax = 0.9

	// Shoot capability: a fresh 35% draw always, OR'd with an independent
	// 50% draw once the run is past 30s. The two draws are not merged into
	// one threshold — combined odds past 30s are ~0.675, not 0.5.
	shootChanceBase    = 0.35
	shootChanceLate    = 0.5
	shootChanceLateSec = 30.0

	enemyShootIntervalMin = 1.0 // seconds between aimed shots, per enemy
	enemyShootIntervalMax = 3.0
)

// --- Enemy bullets ---

const (
	enemyBulletRadius    = 5.0
	enemyBulletBaseSpeed = 180.0 // plus a per-shot jitter in [-30, 60)
	enemyBulletJitterLo  = -30.0
	enemyBulletJitterHi  = 60.0
	offscreenMargin      = 20.0 // side margin before an enemy bullet is culled
)

// --- Spawning & difficulty ---

const (
	spawnIntervalStart = 0.95 // seconds between enemy spawns at t=0
	spawnIntervalMin   = 0.35 // floor as the interval shrinks
	difficultyRampSec  = 60.0 // seconds for +1.0 difficulty (and -1.0s interval)
)

// --- Power-ups ---

const (
	powerupChance    = 0.04 // drop roll on each bullet kill
	powerupDuration  = 8.0  // seconds an effect lasts
	powerupRadius    = 10.0
	powerupFallSpeed = 90.0 // px/s, not difficulty-scaled
)

// --- Boss ---

const (
	bossScoreThreshold = 300.0 // score that triggers a boss while none is live
	bossSpawnY         = -80.0
	bossRadius         = 60.0
	bossStartHP        = 18
	bossPatrolSpeed    = 60.0 // px/s horizontal patrol
	bossDescendSpeed   = 40.0 // px/s while entering
	bossPatrolY        = 80.0 // altitude where descent stops and patrol begins
	bossShootInterval  = 1.0  // seconds between fan volleys
	bossBulletSpeed    = 200.0
	bossBulletRadius   = 4.0
	bossMuzzleInset    = 6.0 // fan origin sits this far inside the bottom edge
)

// bossFanAngles are the fixed angular offsets (radians from straight down)
// of the boss's five-bullet volley.
var bossFanAngles = [5]float64{-0.5, -0.25, 0, 0.25, 0.5}

// --- Scoring ---

const (
	scoreKillBase    = 10.0 // plus floor(enemy radius)
	scoreBossHit     = 15.0
	scoreBossKill    = 200.0 // on top of the hit that landed it
	scoreShieldKill  = 5.0   // enemy destroyed by shield contact
	passiveScoreRate = 5.0   // points/s, scaled by difficulty
)
