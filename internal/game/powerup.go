package game

// --- Power-ups ---

// PowerUpKind tags the three pickup effects.
type PowerUpKind int

const (
	PowerRapid PowerUpKind = iota
	PowerShield
	PowerSpread
	powerUpKindCount
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerRapid:
		return "rapid"
	case PowerShield:
		return "shield"
	case PowerSpread:
		return "spread"
	default:
		return "unknown"
	}
}

// powerup drifts straight down at a fixed speed (never difficulty-scaled)
// until collected or off the bottom edge.
type powerup struct {
	x, y float64
	kind PowerUpKind
	gone bool
}

// step advances the fall.
func (p *powerup) step(dt float64) {
	p.y += powerupFallSpeed * dt
}

// offscreen reports whether the pickup has left the bottom edge.
func (p *powerup) offscreen() bool {
	return p.y-powerupRadius > screenH
}
