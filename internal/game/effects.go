package game

// --- Active-effect timers ---

// decayEffects counts each active effect down. A countdown reaching zero
// drops its flag; the timer value stays unused until a fresh pickup.
func (p *player) decayEffects(dt float64) {
	if p.rapidFire {
		p.rapidFireLeft -= dt
		if p.rapidFireLeft <= 0 {
			p.rapidFire = false
		}
	}
	if p.spread {
		p.spreadLeft -= dt
		if p.spreadLeft <= 0 {
			p.spread = false
		}
	}
	if p.shield {
		p.shieldLeft -= dt
		if p.shieldLeft <= 0 {
			p.shield = false
		}
	}
}

// activate grants a power-up effect at full duration, restarting the
// countdown when the effect is already live.
func (p *player) activate(kind PowerUpKind) {
	switch kind {
	case PowerRapid:
		p.rapidFire = true
		p.rapidFireLeft = powerupDuration
	case PowerShield:
		p.shield = true
		p.shieldLeft = powerupDuration
	case PowerSpread:
		p.spread = true
		p.spreadLeft = powerupDuration
	}
}
