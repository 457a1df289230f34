package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/offchance222/cat-game/internal/game"
)

// runStats is one headless run's tallied outcome plus its phase markers.
type runStats struct {
	runIndex int
	seed     int64

	report game.RunReport

	frames  int
	elapsed float64

	firstBossFrame    int // first frame a boss was live, -1 if never
	firstBossHitFrame int
	firstKillFrame    int
	deathFrame        int // -1 when the run survived the full duration
}

func main() {
	var runs int
	var seconds float64
	var seedBase int64
	var seedStep int64
	var fireEvery int
	var copyLast bool
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless runs")
	flag.Float64Var(&seconds, "seconds", 120, "simulated seconds per run (60 ticks each)")
	flag.Int64Var(&seedBase, "seed", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&fireEvery, "fire-every", 1, "hold fire on every Nth tick (1 = always)")
	flag.BoolVar(&copyLast, "copy", false, "copy the last run's report to the clipboard")
	flag.BoolVar(&verbose, "v", false, "print each run's full event log")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if seconds <= 0 {
		fmt.Println("error: -seconds must be > 0")
		return
	}
	if fireEvery <= 0 {
		fireEvery = 1
	}

	fmt.Printf("=== Headless Run Report ===\n")
	fmt.Printf("runs=%d seconds=%.0f seed=%d seed_step=%d fire_every=%d\n\n",
		runs, seconds, seedBase, seedStep, fireEvery)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, ts := runOnce(i+1, seed, seconds, fireEvery)
		all = append(all, stats)
		printRun(stats)
		if verbose {
			fmt.Print(ts.Log().Format())
			fmt.Println()
		}
		if copyLast && i == runs-1 {
			if err := game.CopyReport(ts.Log(), ts.Snapshot()); err != nil {
				fmt.Printf("clipboard copy failed: %v\n", err)
			} else {
				fmt.Println("(last run's report copied to clipboard)")
			}
		}
	}

	printAggregate(all)
}

// runOnce plays one seeded run under the sweep-and-shoot autopilot: the
// ship patrols between the side margins with the trigger held, which is
// enough to exercise spawning, combat, pickups and the boss.
func runOnce(runIndex int, seed int64, seconds float64, fireEvery int) (runStats, *game.TestSim) {
	ts := game.NewTestSim(game.WithSeed(seed))
	w, _ := game.ViewportSize()

	ticks := int(seconds * 60)
	dir := 1.0
	firstBoss := -1
	for i := 0; i < ticks; i++ {
		snap := ts.Snapshot()
		if !snap.Running {
			break
		}
		if firstBoss < 0 && snap.Boss != nil {
			firstBoss = ts.Frame()
		}
		if snap.Player.X > w-60 {
			dir = -1
		} else if snap.Player.X < 60 {
			dir = 1
		}
		ts.Move(dir < 0, dir > 0)
		ts.HoldFire(i%fireEvery == 0)
		ts.Step()
	}
	if firstBoss < 0 && ts.Snapshot().Boss != nil {
		firstBoss = ts.Frame()
	}

	log := ts.Log()
	stats := runStats{
		runIndex:          runIndex,
		seed:              seed,
		report:            game.BuildRunReport(log, ts.Snapshot()),
		frames:            ts.Frame(),
		elapsed:           ts.Elapsed(),
		firstBossFrame:    firstBoss,
		firstBossHitFrame: firstFrame(log, game.EventBossHit),
		firstKillFrame:    firstFrame(log, game.EventEnemyDestroyed),
		deathFrame:        firstFrame(log, game.EventGameOver),
	}
	return stats, ts
}

// firstFrame returns the frame of the earliest event of the given kind,
// or -1.
func firstFrame(log *game.EventLog, kind game.EventKind) int {
	if es := log.Filter(kind); len(es) > 0 {
		return es[0].Frame
	}
	return -1
}

func printRun(rs runStats) {
	r := rs.report
	outcome := "survived"
	if r.GameOver {
		outcome = "died:" + r.Cause
	}
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s score=%d frames=%d elapsed=%.1fs\n", outcome, r.Score, rs.frames, rs.elapsed)
	fmt.Printf("combat: shots=%d kills=%d (bullet=%d shield=%d) boss_hits=%d boss_kills=%d\n",
		r.ShotsFired, r.BulletKills+r.ShieldKills, r.BulletKills, r.ShieldKills, r.BossHits, r.BossKills)
	fmt.Printf("phase_markers: first_kill=%d first_boss=%d first_boss_hit=%d death=%d\n",
		rs.firstKillFrame, rs.firstBossFrame, rs.firstBossHitFrame, rs.deathFrame)
	pickups := 0
	for _, n := range r.PickupsByKind {
		pickups += n
	}
	fmt.Printf("pickups=%d shield_blocks=%d\n\n", pickups, r.ShieldBlocks)
}

func printAggregate(all []runStats) {
	scores := make([]int, 0, len(all))
	survival := make([]float64, 0, len(all))
	bossFrames := make([]int, 0, len(all))
	totalKills := 0
	totalBossKills := 0
	survived := 0
	causes := map[string]int{}

	for _, rs := range all {
		r := rs.report
		scores = append(scores, r.Score)
		survival = append(survival, rs.elapsed)
		if rs.firstBossFrame >= 0 {
			bossFrames = append(bossFrames, rs.firstBossFrame)
		}
		totalKills += r.BulletKills + r.ShieldKills
		totalBossKills += r.BossKills
		if r.GameOver {
			causes[r.Cause]++
		} else {
			survived++
		}
	}

	lo, hi := minMaxInt(scores)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d survived=%d\n", len(all), survived)
	fmt.Printf("score: avg=%.1f min=%d max=%d\n", avgInt(scores), lo, hi)
	fmt.Printf("survival_avg=%.1fs kills_avg=%.1f boss_kills_total=%d\n",
		avgFloat(survival), avg(totalKills, len(all)), totalBossKills)
	fmt.Printf("first_boss_avg_frame=%s\n", avgFrameString(bossFrames))
	fmt.Printf("death_causes: %s\n", formatCauses(causes))
}

func avg(total, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}

func avgInt(vs []int) float64 {
	total := 0
	for _, v := range vs {
		total += v
	}
	return avg(total, len(vs))
}

func avgFloat(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range vs {
		total += v
	}
	return total / float64(len(vs))
}

func minMaxInt(vs []int) (lo, hi int) {
	if len(vs) == 0 {
		return 0, 0
	}
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// avgFrameString formats the average of frame markers, "-" when no run
// reached the phase.
func avgFrameString(frames []int) string {
	if len(frames) == 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f", avgInt(frames))
}

func formatCauses(causes map[string]int) string {
	if len(causes) == 0 {
		return "(none)"
	}
	parts := make([]string, 0, len(causes))
	for _, cause := range []string{"enemyBullet", "contact"} {
		if n, ok := causes[cause]; ok {
			parts = append(parts, fmt.Sprintf("%s=%d", cause, n))
		}
	}
	return strings.Join(parts, " ")
}
