package game

import (
	"math"
	"testing"
)

// dumpLog prints the full event log so it appears in `go test -v` output.
func dumpLog(t *testing.T, ts *TestSim) {
	t.Helper()
	entries := ts.Log().Entries()
	if len(entries) == 0 {
		t.Log("(no events)")
		return
	}
	for _, e := range entries {
		t.Log(e.String())
	}
}

// dumpSummary prints the per-kind totals and the formatted run report.
func dumpSummary(t *testing.T, ts *TestSim) {
	t.Helper()
	t.Log(ts.Log().Summary())
	t.Log(FormatRunReport(ts.Log(), ts.Snapshot()))
}

// --- Scenario: Bullet Kill ---

func TestScenario_BulletKillAwardsSizeBonus(t *testing.T) {
	t.Log("=== TestScenario_BulletKillAwardsSizeBonus ===")
	t.Log("--- Setup: parked r=10 enemy at (100,100), player round 5px below it ---")

	ts := NewTestSim(
		WithSeed(42),
		WithEnemyAt(100, 100, 10),
		WithBulletAt(100, 95),
	)
	ts.Step()
	dumpLog(t, ts)

	e, ok := ts.Log().LastOf(EventEnemyDestroyed)
	if !ok {
		t.Fatal("the round should have destroyed the enemy on frame 1")
	}
	if e.Detail != "bullet" || e.Value != 20 { // base 10 + floor(r 10)
		t.Fatalf("expected a bullet kill worth 20, got %q %.1f", e.Detail, e.Value)
	}
	if got := ts.CurrentScore(); got != 20 {
		t.Fatalf("expected score 20, got %d", got)
	}

	snap := ts.Snapshot()
	if len(snap.Enemies) != 0 {
		t.Fatal("the destroyed enemy should be gone")
	}
	if len(snap.Bullets) != 0 {
		t.Fatal("the round is consumed by the kill")
	}
}

// --- Scenario: Spread Shot ---

func TestScenario_SpreadFiresThreeRounds(t *testing.T) {
	t.Log("=== TestScenario_SpreadFiresThreeRounds ===")

	ts := NewTestSim(WithSeed(42), WithSpread())
	ts.HoldFire(true)
	evs := ts.Step()

	var fired *Event
	for i := range evs {
		if evs[i].Kind == EventFired {
			fired = &evs[i]
		}
	}
	if fired == nil {
		t.Fatal("holding the trigger on frame 1 should fire")
	}
	if fired.Value != 3 {
		t.Fatalf("a spread shot reports 3 rounds, got %.0f", fired.Value)
	}

	snap := ts.Snapshot()
	if len(snap.Bullets) != 3 {
		t.Fatalf("expected 3 live rounds, got %d", len(snap.Bullets))
	}
	centre := screenW / 2
	for i, want := range []float64{centre - spreadOffset, centre, centre + spreadOffset} {
		if snap.Bullets[i].X != want {
			t.Fatalf("round %d should fly the %g column, got %.1f", i, want, snap.Bullets[i].X)
		}
	}
}

// --- Scenario: Rapid Fire ---

func TestScenario_RapidFireRaisesShotRate(t *testing.T) {
	t.Log("=== TestScenario_RapidFireRaisesShotRate ===")
	t.Log("--- Setup: one second of held trigger, with and without rapid fire ---")

	base := NewTestSim(WithSeed(21))
	base.HoldFire(true)
	base.RunTicks(60)

	rapid := NewTestSim(WithSeed(21), WithRapidFire())
	rapid.HoldFire(true)
	rapid.RunTicks(60)

	// 0.22s cooldown refires every 14th tick at 60Hz; 0.088s every 6th.
	if got := base.Log().Count(EventFired); got != 5 {
		t.Fatalf("expected 5 shots in a plain second, got %d", got)
	}
	if got := rapid.Log().Count(EventFired); got != 10 {
		t.Fatalf("expected 10 shots in a rapid-fire second, got %d", got)
	}
}

// --- Scenario: Shield ---

func TestScenario_ShieldTradesContactForKill(t *testing.T) {
	t.Log("=== TestScenario_ShieldTradesContactForKill ===")
	t.Log("--- Setup: shielded player, parked enemy already inside the hitbox ---")

	ts := NewTestSim(
		WithSeed(42),
		WithShield(),
		WithEnemyAt(screenW/2, playerY, 12),
	)
	ts.Step()
	dumpLog(t, ts)

	if !ts.Running() {
		t.Fatal("a shielded contact must not end the run")
	}
	if ts.Snapshot().Player.Shield {
		t.Fatal("the contact should have spent the shield")
	}
	e, ok := ts.Log().LastOf(EventEnemyDestroyed)
	if !ok || e.Detail != "shield" || e.Value != scoreShieldKill {
		t.Fatalf("expected a shield kill worth %.0f, got %+v ok=%v", scoreShieldKill, e, ok)
	}
	if got := ts.CurrentScore(); got != 5 {
		t.Fatalf("expected score 5, got %d", got)
	}
	if len(ts.Snapshot().Enemies) != 0 {
		t.Fatal("the rammed enemy dies with the shield")
	}
}

func TestScenario_UnshieldedContactEndsRun(t *testing.T) {
	t.Log("=== TestScenario_UnshieldedContactEndsRun ===")

	ts := NewTestSim(WithSeed(42), WithEnemyAt(screenW/2, playerY, 12))
	ts.Step()
	dumpLog(t, ts)

	if !ts.GameOver() {
		t.Fatal("unshielded contact is lethal")
	}
	if e, _ := ts.Log().LastOf(EventGameOver); e.Detail != "contact" {
		t.Fatalf("expected death by contact, got %q", e.Detail)
	}
	if got := ts.CurrentScore(); got != 0 {
		t.Fatalf("the fatal frame accrues nothing, got %d", got)
	}
}

func TestScenario_ShieldSpentOnRoundLeavesContactLethal(t *testing.T) {
	t.Log("=== TestScenario_ShieldSpentOnRoundLeavesContactLethal ===")
	t.Log("--- Setup: one hostile round and one enemy both inside the hitbox ---")

	// Rounds resolve before body contact: the shield goes to the round,
	// so the contact in the same frame kills.
	ts := NewTestSim(
		WithSeed(42),
		WithShield(),
		WithEnemyBulletAt(screenW/2, playerY, 0, 0),
		WithEnemyAt(screenW/2, playerY, 12),
	)
	ts.Step()
	dumpLog(t, ts)

	if ts.Log().Count(EventShieldAbsorb) != 1 {
		t.Fatal("the round should have been absorbed first")
	}
	if !ts.GameOver() {
		t.Fatal("the follow-up contact should have been lethal")
	}
	if e, _ := ts.Log().LastOf(EventGameOver); e.Detail != "contact" {
		t.Fatalf("expected death by contact, got %q", e.Detail)
	}
}

// --- Scenario: Boss Fight ---

func TestScenario_BossHitsAndKillBonus(t *testing.T) {
	t.Log("=== TestScenario_BossHitsAndKillBonus ===")
	t.Log("--- Setup: hp=2 boss, two rounds arriving on the same frame ---")

	ts := NewTestSim(
		WithSeed(42),
		WithBossAt(screenW/2, 200, 2),
		WithBulletAt(screenW/2, 150),
		WithBulletAt(screenW/2, 190),
	)
	ts.Step()
	dumpLog(t, ts)

	if n := ts.Log().Count(EventBossHit); n != 2 {
		t.Fatalf("expected 2 boss hits, got %d", n)
	}
	if e, _ := ts.Log().LastOf(EventBossHit); e.Value != 0 {
		t.Fatalf("the last hit should report an empty pool, got %.0f", e.Value)
	}
	if n := ts.Log().Count(EventBossDestroyed); n != 1 {
		t.Fatalf("expected exactly one destroy, got %d", n)
	}
	if ts.Snapshot().Boss != nil {
		t.Fatal("the destroyed boss should clear the singleton")
	}
	if got := ts.CurrentScore(); got != 230 { // 2*15 + 200
		t.Fatalf("expected 230 from two hits and the kill bonus, got %d", got)
	}
}

func TestScenario_BossChainsWhileScoreHigh(t *testing.T) {
	t.Log("=== TestScenario_BossChainsWhileScoreHigh ===")
	t.Log("--- Setup: score past threshold, hp=1 boss dies on frame 1 ---")

	ts := NewTestSim(
		WithSeed(42),
		WithScore(bossScoreThreshold),
		WithBossAt(screenW/2, 200, 1),
		WithBulletAt(screenW/2, 195),
	)
	ts.Step()
	if ts.Snapshot().Boss != nil {
		t.Fatal("the hp=1 boss should be gone after frame 1")
	}
	if got := ts.CurrentScore(); got != 515 { // 300 + 15 + 200
		t.Fatalf("expected the hit and kill bonus to add 215, got %d", got)
	}

	ts.Step()
	snap := ts.Snapshot()
	if snap.Boss == nil {
		t.Fatal("with the score still past the threshold a fresh boss should enter")
	}
	if snap.Boss.HP != bossStartHP {
		t.Fatalf("the replacement enters at full health, got %d", snap.Boss.HP)
	}
	if snap.Boss.Y >= 0 {
		t.Fatalf("the replacement re-enters from above the screen, got y=%.1f", snap.Boss.Y)
	}
}

// --- Scenario: Power-ups ---

func TestScenario_PickupGrantsTimedEffect(t *testing.T) {
	t.Log("=== TestScenario_PickupGrantsTimedEffect ===")

	ts := NewTestSim(WithSeed(42), WithPowerUpAt(screenW/2, playerY-5, PowerRapid))
	ts.Step()
	dumpLog(t, ts)

	e, ok := ts.Log().LastOf(EventPowerupCollected)
	if !ok {
		t.Fatal("the pickup sits on the ship and should collect on frame 1")
	}
	if e.Detail != "rapid" || e.Value != powerupDuration {
		t.Fatalf("expected a rapid pickup at full duration, got %q %.1f", e.Detail, e.Value)
	}

	snap := ts.Snapshot()
	if !snap.Player.RapidFire {
		t.Fatal("the collected effect should be live")
	}
	if len(snap.PowerUps) != 0 {
		t.Fatal("a collected pickup leaves the field")
	}
}

func TestScenario_MissedPickupFallsAway(t *testing.T) {
	t.Log("=== TestScenario_MissedPickupFallsAway ===")

	ts := NewTestSim(WithSeed(42), WithPowerUpAt(50, screenH-10, PowerShield))
	ts.RunTicks(20) // 90 px/s covers the remaining edge distance well inside this

	if ts.Log().Count(EventPowerupCollected) != 0 {
		t.Fatal("a pickup far from the ship must not collect")
	}
	if len(ts.Snapshot().PowerUps) != 0 {
		t.Fatal("the missed pickup should have fallen off the bottom")
	}
	p := ts.Snapshot().Player
	if p.RapidFire || p.Spread || p.Shield {
		t.Fatal("no effect may appear without a collection")
	}
}

// --- Scenario: Enemy Fire ---

func TestScenario_EnemyAimsFromBodyFiresFromChin(t *testing.T) {
	t.Log("=== TestScenario_EnemyAimsFromBodyFiresFromChin ===")
	t.Log("--- Setup: parked shooter at (100,100) r=10, ship parked at centre ---")

	ts := NewTestSim(WithSeed(42), WithShootingEnemyAt(100, 100, 10, 0.5))
	frame := ts.RunUntil(func(ts *TestSim) bool {
		return len(ts.Snapshot().EnemyBullets) > 0
	}, 60)
	if frame < 0 {
		t.Fatal("the shooter never fired inside a second")
	}

	born := ts.Snapshot().EnemyBullets[0]
	if born.Y != 110 {
		t.Fatalf("the round leaves the chin one radius below centre, got y=%.2f", born.Y)
	}

	// One more frame of flight gives the velocity direction. The aim
	// vector runs from the body centre to the ship: slope 476/140 = 3.4.
	// A chin-origin aim would read 466/140 instead.
	ts.Step()
	moved := ts.Snapshot().EnemyBullets[0]
	dx := moved.X - born.X
	dy := moved.Y - born.Y
	if dx <= 0 || dy <= 0 {
		t.Fatalf("the round should head right and down toward the ship, moved (%.3f,%.3f)", dx, dy)
	}
	if slope := dy / dx; math.Abs(slope-3.4) > 1e-9 {
		t.Fatalf("expected the centre-aim slope 3.4, got %.6f", slope)
	}
}

// --- Scenario: Determinism ---

func TestScenario_SeededRunsReproduce(t *testing.T) {
	t.Log("=== TestScenario_SeededRunsReproduce ===")

	run := func() *TestSim {
		ts := NewTestSim(WithSeed(42))
		ts.HoldFire(true)
		ts.RunTicks(600)
		return ts
	}
	a, b := run(), run()

	if a.CurrentScore() != b.CurrentScore() {
		t.Fatalf("scores diverged: %d vs %d", a.CurrentScore(), b.CurrentScore())
	}
	if a.Frame() != b.Frame() {
		t.Fatalf("frame counts diverged: %d vs %d", a.Frame(), b.Frame())
	}
	ae, be := a.Log().Entries(), b.Log().Entries()
	if len(ae) != len(be) {
		t.Fatalf("event counts diverged: %d vs %d", len(ae), len(be))
	}
	for i := range ae {
		if ae[i] != be[i] {
			t.Fatalf("entry %d diverged:\n a: %s\n b: %s", i, ae[i], be[i])
		}
	}
	dumpSummary(t, a)
}
