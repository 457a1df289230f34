package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// --- Run report ---

// RunReport is the tallied outcome of one run, built from the event log
// and a final snapshot.
type RunReport struct {
	Frames   int
	Elapsed  float64
	Score    int
	GameOver bool
	Cause    string // what ended the run; empty while alive

	ShotsFired    int
	BulletKills   int
	ShieldKills   int
	BossHits      int
	BossKills     int
	ShieldBlocks  int
	PickupsByKind map[PowerUpKind]int

	LiveEnemies      int
	LiveBullets      int
	LiveEnemyBullets int
	LivePowerUps     int
	BossAlive        bool
	BossHP           int
}

// BuildRunReport tallies a run from its log and final snapshot.
func BuildRunReport(log *EventLog, snap Snapshot) RunReport {
	r := RunReport{
		Elapsed:       snap.Elapsed,
		Score:         int(snap.Score),
		GameOver:      snap.GameOver,
		PickupsByKind: make(map[PowerUpKind]int),

		LiveEnemies:      len(snap.Enemies),
		LiveBullets:      len(snap.Bullets),
		LiveEnemyBullets: len(snap.EnemyBullets),
		LivePowerUps:     len(snap.PowerUps),
	}
	if snap.Boss != nil {
		r.BossAlive = true
		r.BossHP = snap.Boss.HP
	}
	for _, e := range log.Entries() {
		if e.Frame > r.Frames {
			r.Frames = e.Frame
		}
		switch e.Kind {
		case EventFired:
			r.ShotsFired++
		case EventEnemyDestroyed:
			if e.Detail == "shield" {
				r.ShieldKills++
			} else {
				r.BulletKills++
			}
		case EventBossHit:
			r.BossHits++
		case EventBossDestroyed:
			r.BossKills++
		case EventShieldAbsorb:
			r.ShieldBlocks++
		case EventPowerupCollected:
			for k := PowerUpKind(0); k < powerUpKindCount; k++ {
				if e.Detail == k.String() {
					r.PickupsByKind[k]++
				}
			}
		case EventGameOver:
			r.Cause = e.Detail
		}
	}
	return r
}

// Format returns the report as a human-readable multi-line string.
func (r RunReport) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Run Report (%.1fs, %d frames) ===\n", r.Elapsed, r.Frames)
	outcome := "alive"
	if r.GameOver {
		outcome = "game over (" + r.Cause + ")"
	}
	fmt.Fprintf(&sb, "score=%d  outcome=%s\n", r.Score, outcome)

	sb.WriteString("\n--- Combat ---\n")
	fmt.Fprintf(&sb, "  shots=%d  kills=%d (bullet=%d shield=%d)\n",
		r.ShotsFired, r.BulletKills+r.ShieldKills, r.BulletKills, r.ShieldKills)
	fmt.Fprintf(&sb, "  boss: hits=%d kills=%d", r.BossHits, r.BossKills)
	if r.BossAlive {
		fmt.Fprintf(&sb, "  (one live at hp=%d)", r.BossHP)
	}
	sb.WriteByte('\n')

	sb.WriteString("\n--- Power-ups ---\n")
	total := 0
	for k := PowerUpKind(0); k < powerUpKindCount; k++ {
		total += r.PickupsByKind[k]
	}
	fmt.Fprintf(&sb, "  collected=%d", total)
	for k := PowerUpKind(0); k < powerUpKindCount; k++ {
		if n := r.PickupsByKind[k]; n > 0 {
			fmt.Fprintf(&sb, "  %s=%d", k, n)
		}
	}
	fmt.Fprintf(&sb, "  shield_blocks=%d\n", r.ShieldBlocks)

	sb.WriteString("\n--- Field ---\n")
	fmt.Fprintf(&sb, "  enemies=%d  bullets=%d  enemy_bullets=%d  pickups=%d\n",
		r.LiveEnemies, r.LiveBullets, r.LiveEnemyBullets, r.LivePowerUps)
	return sb.String()
}

// FormatRunReport is the one-call form: tally and format in one go.
func FormatRunReport(log *EventLog, snap Snapshot) string {
	return BuildRunReport(log, snap).Format()
}

// CopyReport puts the formatted report on the system clipboard.
func CopyReport(log *EventLog, snap Snapshot) error {
	return clipboard.WriteAll(FormatRunReport(log, snap))
}
