package game

import "math"

// --- Collision & combat resolution ---

// resolveCollisions runs the ordered contact rules for one frame. It
// reports false when a lethal hit ended the frame early — the caller must
// then skip everything after it, passive accrual included.
//
// Order: player bullets against enemies then the boss (one shared pass; a
// consumed bullet skips the boss), enemy bullets against the player,
// enemy contact against the player, pickups, pickup fall. Removal is
// two-phase throughout: hits mark, compaction follows the pass, so each
// bullet destroys at most one enemy however the collections are ordered.
func (s *Sim) resolveCollisions(dt float64) bool {
	s.resolveBulletHits()
	if !s.resolveEnemyBulletsVsPlayer() {
		return false
	}
	if !s.resolveEnemiesVsPlayer() {
		return false
	}
	s.resolvePickups()
	s.fallPowerups(dt)
	return true
}

func (s *Sim) resolveBulletHits() {
	for _, b := range s.bullets {
		if s.bulletHitsEnemy(b) {
			continue
		}
		s.bulletHitsBoss(b)
	}
	s.compactBullets()
	s.compactEnemies()
}

// bulletHitsEnemy consumes b against the first live overlapping enemy in
// collection order. The hit region is the enemy's bounding square grown
// by its radius — the classic generous arcade hitbox.
func (s *Sim) bulletHitsEnemy(b *bullet) bool {
	for _, e := range s.enemies {
		if e.dead {
			continue
		}
		if !circleRectOverlap(b.x, b.y, e.r, e.x-e.r, e.y-e.r, e.r*2, e.r*2) {
			continue
		}
		e.dead = true
		b.spent = true
		award := scoreKillBase + math.Floor(e.r)
		s.score += award
		s.emit(Event{Kind: EventEnemyDestroyed, Detail: "bullet", X: e.x, Y: e.y, Value: award})
		if p, ok := s.spawner.rollDrop(e.x, e.y); ok {
			s.powerups = append(s.powerups, p)
		}
		return true
	}
	return false
}

// bulletHitsBoss consumes b against the boss, point-in-circle. The kill
// bonus lands on the hit that empties the health pool, and the singleton
// clears immediately so later bullets this frame fly through.
func (s *Sim) bulletHitsBoss(b *bullet) {
	if s.boss == nil {
		return
	}
	if !pointInCircle(b.x, b.y, s.boss.x, s.boss.y, s.boss.r) {
		return
	}
	b.spent = true
	s.boss.hp--
	s.score += scoreBossHit
	s.emit(Event{Kind: EventBossHit, X: s.boss.x, Y: s.boss.y, Value: float64(s.boss.hp)})
	if s.boss.hp <= 0 {
		s.score += scoreBossKill
		s.emit(Event{Kind: EventBossDestroyed, X: s.boss.x, Y: s.boss.y, Value: scoreBossKill})
		s.boss = nil
	}
}

// resolveEnemyBulletsVsPlayer removes rounds that reach the player's
// hitbox. A shield eats the round and drops; without one, the first such
// round ends the run on the spot and the frame stops here.
func (s *Sim) resolveEnemyBulletsVsPlayer() bool {
	px, py, pw, ph := s.player.rect()
	for _, eb := range s.enemyBullets {
		if !circleRectOverlap(eb.x, eb.y, eb.r, px, py, pw, ph) {
			continue
		}
		eb.spent = true
		if s.player.shield {
			s.player.shield = false
			s.emit(Event{Kind: EventShieldAbsorb, X: eb.x, Y: eb.y})
			continue
		}
		s.failRun("enemyBullet", eb.x, eb.y)
		s.compactEnemyBullets()
		return false
	}
	s.compactEnemyBullets()
	return true
}

// resolveEnemiesVsPlayer handles body contact. A shielded player trades
// the shield for the enemy plus a small bounty and keeps going — the
// shield only eats the first contact, a second in the same frame is
// lethal. Unshielded contact ends the run with the same hard stop as a
// bullet hit.
func (s *Sim) resolveEnemiesVsPlayer() bool {
	px, py, pw, ph := s.player.rect()
	for _, e := range s.enemies {
		if !circleRectOverlap(e.x, e.y, e.r, px, py, pw, ph) {
			continue
		}
		if s.player.shield {
			s.player.shield = false
			e.dead = true
			s.score += scoreShieldKill
			s.emit(Event{Kind: EventEnemyDestroyed, Detail: "shield", X: e.x, Y: e.y, Value: scoreShieldKill})
			continue
		}
		s.failRun("contact", e.x, e.y)
		s.compactEnemies()
		return false
	}
	s.compactEnemies()
	return true
}

// resolvePickups collects touched power-ups: effect restored to full
// duration, pickup gone.
func (s *Sim) resolvePickups() {
	for _, p := range s.powerups {
		if !circlesOverlap(p.x, p.y, powerupRadius, s.player.x, playerY, playerW/2) {
			continue
		}
		p.gone = true
		s.player.activate(p.kind)
		s.emit(Event{Kind: EventPowerupCollected, Detail: p.kind.String(), X: p.x, Y: p.y, Value: powerupDuration})
	}
	s.compactPowerups()
}

// fallPowerups drops the remaining pickups and culls those past the
// bottom edge.
func (s *Sim) fallPowerups(dt float64) {
	kept := s.powerups[:0]
	for _, p := range s.powerups {
		p.step(dt)
		if p.offscreen() {
			continue
		}
		kept = append(kept, p)
	}
	s.powerups = kept
}

// --- Compaction ---

func (s *Sim) compactBullets() {
	kept := s.bullets[:0]
	for _, b := range s.bullets {
		if !b.spent {
			kept = append(kept, b)
		}
	}
	s.bullets = kept
}

func (s *Sim) compactEnemyBullets() {
	kept := s.enemyBullets[:0]
	for _, eb := range s.enemyBullets {
		if !eb.spent {
			kept = append(kept, eb)
		}
	}
	s.enemyBullets = kept
}

func (s *Sim) compactEnemies() {
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		if !e.dead {
			kept = append(kept, e)
		}
	}
	s.enemies = kept
}

func (s *Sim) compactPowerups() {
	kept := s.powerups[:0]
	for _, p := range s.powerups {
		if !p.gone {
			kept = append(kept, p)
		}
	}
	s.powerups = kept
}
