package main

import (
	"testing"

	"github.com/offchance222/cat-game/internal/game"
)

func TestMinMaxInt(t *testing.T) {
	lo, hi := minMaxInt([]int{310, 42, 887})
	if lo != 42 || hi != 887 {
		t.Fatalf("expected min=42 max=887, got min=%d max=%d", lo, hi)
	}
	lo, hi = minMaxInt(nil)
	if lo != 0 || hi != 0 {
		t.Fatalf("expected zeros for empty input, got min=%d max=%d", lo, hi)
	}
}

func TestAvgFrameString(t *testing.T) {
	if s := avgFrameString(nil); s != "-" {
		t.Fatalf("expected \"-\" for no markers, got %q", s)
	}
	if s := avgFrameString([]int{100, 200}); s != "150" {
		t.Fatalf("expected \"150\", got %q", s)
	}
}

func TestFormatCauses(t *testing.T) {
	if s := formatCauses(map[string]int{}); s != "(none)" {
		t.Fatalf("expected \"(none)\", got %q", s)
	}
	s := formatCauses(map[string]int{"contact": 2, "enemyBullet": 3})
	if s != "enemyBullet=3 contact=2" {
		t.Fatalf("unexpected cause formatting: %q", s)
	}
}

func TestRunOnce_ShortRunProducesCoherentStats(t *testing.T) {
	stats, ts := runOnce(1, 42, 3.0, 1)

	if stats.frames <= 0 {
		t.Fatalf("expected frames > 0, got %d", stats.frames)
	}
	if stats.report.Score < 0 {
		t.Fatalf("expected non-negative score, got %d", stats.report.Score)
	}
	if stats.report.ShotsFired == 0 {
		t.Fatal("autopilot held fire for 3s but no shots were recorded")
	}
	if !stats.report.GameOver && stats.frames != 180 {
		t.Fatalf("surviving run should span all 180 frames, got %d", stats.frames)
	}
	if got := firstFrame(ts.Log(), game.EventFired); got < 0 {
		t.Fatal("expected at least one fired event in the log")
	}
}
